// A command line tool to collapse adjacent duplicate lines
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/fractalqb/uniqr/uniqrio"
)

// Set with -ldflags "-X main.version=…"
var version = "dev"

// process is replaced in tests
var process = uniq

func init() {
	rootCmd.RunE = runUniq
	rootCmd.Flags().BoolVarP(&rootCmd.count, "count", "c", false,
		"Prefix lines with the number of occurrences")
	rootCmd.Flags().BoolVarP(&rootCmd.decompress, "decompress", "z", false,
		"Decompress gzip or zstd compressed input files")
	rootCmd.Flags().BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Log debug information to stderr")
	rootCmd.Flags().StringVar(&rootCmd.cfgFile, "config", "",
		"Read settings from config file (yaml, toml or json)")
}

var rootCmd = struct {
	cobra.Command
	count      bool
	decompress bool
	verbose    bool
	cfgFile    string
}{
	Command: cobra.Command{
		Use:   "uniqr [input [output]]",
		Short: "Collapse runs of equal adjacent lines",
		Long: `Read lines from input and write them to output, collapsing each
run of adjacent equal lines into the first line of the run. Lines
are compared without their line terminators.

Input defaults to "-", the standard input. With --decompress, gzip and
zstd compressed input files are decompressed. Output defaults to the
standard output.

Settings can also be given as environment variables UNIQR_COUNT,
UNIQR_DECOMPRESS and UNIQR_VERBOSE or in a config file with keys
"count", "decompress" and "verbose".`,
		Example: `  uniqr -c access.log
  uniqr -z access.log.gz
  sort words.txt | uniqr - unique.txt`,
		Args: cobra.MaximumNArgs(2),
	},
}

func runUniq(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, rootCmd.cfgFile)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	inName, outName := uniqrio.Stdin, ""
	if len(args) > 0 {
		inName = args[0]
	}
	if len(args) > 1 {
		outName = args[1]
	}
	err = process(logger, cfg, inName, outName)
	if uniqrio.IsBrokenPipe(err) {
		logger.Debug("output closed by reader", "err", err)
		return nil
	}
	return err
}

func main() {
	if err := fang.Execute(
		context.Background(),
		&rootCmd.Command,
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}
