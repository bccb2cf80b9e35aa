package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/collocation"
	"github.com/vippsas/corpusforge/corpusstream"
)

var (
	collocationsSplitSize string
	collocationsThreads   int

	collocationsCmd = &cobra.Command{
		Use:   "collocations FILE",
		Short: "Count word/context collocations over a paragraph-per-blank-line plaintext file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument FILE")
			}
			path := args[0]

			config, err := LoadConfig()
			if err != nil {
				return err
			}

			splitSizeStr := collocationsSplitSize
			if !cmd.Flags().Changed("max-chunk-size") && config.Collocation.DefaultChunkSize != "" {
				splitSizeStr = config.Collocation.DefaultChunkSize
			}
			splitSize, err := corpusstream.ParseByteSize(splitSizeStr)
			if err != nil {
				return err
			}
			threads := collocationsThreads
			if !cmd.Flags().Changed("threads") && config.Collocation.DefaultThreads != 0 {
				threads = config.Collocation.DefaultThreads
			}

			runLog := log.WithFields(logFields("collocations"))
			opt := collocation.Options{
				SplitSize: splitSize,
				Threads:   threads,
				TempDir:   os.TempDir(),
			}
			return collocation.Run(path, opt, os.Stdout, runLog)
		},
	}
)

func init() {
	collocationsCmd.Flags().StringVarP(&collocationsSplitSize, "max-chunk-size", "m", "64m", "approximate per-worker split size, advanced forward to the next paragraph boundary")
	collocationsCmd.Flags().IntVarP(&collocationsThreads, "threads", "t", 4, "number of split/merge worker goroutines")
	rootCmd.AddCommand(collocationsCmd)
}
