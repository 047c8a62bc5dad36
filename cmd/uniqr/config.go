package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "UNIQR"

type config struct {
	Count      bool
	Decompress bool
	Verbose    bool
}

var configKeys = []string{"count", "decompress", "verbose"}

// loadConfig merges, in order of precedence, command line flags,
// environment variables, the config file and defaults.
func loadConfig(cmd *cobra.Command, file string) (cfg config, err error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range configKeys {
		v.SetDefault(key, false)
		if err = v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return cfg, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err = v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	cfg.Count = v.GetBool("count")
	cfg.Decompress = v.GetBool("decompress")
	cfg.Verbose = v.GetBool("verbose")
	return cfg, nil
}
