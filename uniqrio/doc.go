// Package uniqrio resolves the input and output names given to uniqr on
// the command line to readers and writers.
//
// The name "-" stands for the standard input when opening an input and
// for the standard output when creating an output. An empty output name
// also selects the standard output:
//
//	in, err := uniqrio.OpenInput("access.log.gz", true)
//	if err != nil {
//		return err
//	}
//	defer in.Close()
//	out, err := uniqrio.CreateOutput("")
//	if err != nil {
//		return err
//	}
//	defer out.Close()
//	err = (&uniqr.Deduplicator{}).Readers(in, out)
//
// On request, compressed input files (gzip and zstd) are recognized by
// their magic number and decompressed on the fly. Otherwise, and always
// for the standard input, bytes are passed through as they are.
package uniqrio
