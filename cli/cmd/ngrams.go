package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/corpusstream"
	"github.com/vippsas/corpusforge/ngram"
)

var (
	ngramsN            int
	ngramsMaxChunkSize string

	ngramsCmd = &cobra.Command{
		Use:   "ngrams",
		Short: "Count n-grams over sentence-per-line tokenized text read on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}

			n := ngramsN
			if !cmd.Flags().Changed("n") && config.Ngram.DefaultN != 0 {
				n = config.Ngram.DefaultN
			}
			chunkSizeStr := ngramsMaxChunkSize
			if !cmd.Flags().Changed("max-chunk-size") && config.Ngram.DefaultChunkSize != "" {
				chunkSizeStr = config.Ngram.DefaultChunkSize
			}
			maxChunkSize, err := corpusstream.ParseByteSize(chunkSizeStr)
			if err != nil {
				return err
			}

			runLog := log.WithFields(logFields("ngrams"))
			opt := ngram.Options{
				N:            n,
				MaxChunkSize: maxChunkSize,
				TempDir:      os.TempDir(),
				Verbose:      verbose,
			}
			return ngram.RunStream(os.Stdin, os.Stdout, opt, runLog)
		},
	}
)

func init() {
	ngramsCmd.Flags().IntVarP(&ngramsN, "n", "n", 2, "size of n-grams to count")
	ngramsCmd.Flags().StringVarP(&ngramsMaxChunkSize, "max-chunk-size", "m", "64m", "approximate in-memory chunk size before spilling to a temp file, e.g. 64m, 1g")
	rootCmd.AddCommand(ngramsCmd)
}
