package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/sentence"
)

var (
	sentencesCmd = &cobra.Command{
		Use:   "sentences",
		Short: "Split plaintext read on stdin into one sentence per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := sentence.New()
			return sentence.RunStream(os.Stdin, os.Stdout, e)
		},
	}
)

func init() {
	rootCmd.AddCommand(sentencesCmd)
}
