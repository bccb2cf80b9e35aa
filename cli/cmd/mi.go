package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/mutualinfo"
)

var (
	miUnigramsFile string
	miCountCutoff  uint64

	miCmd = &cobra.Command{
		Use:   "mi",
		Short: "Score a sorted collocation stream read on stdin by mutual information against a unigram count file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if miUnigramsFile == "" {
				_ = cmd.Help()
				return errors.New("need to specify --unigrams FILE")
			}

			f, err := os.Open(miUnigramsFile)
			if err != nil {
				return err
			}
			defer f.Close()

			return mutualinfo.RunStream(f, os.Stdin, os.Stdout, mutualinfo.Options{
				CountCutoff: miCountCutoff,
			})
		},
	}
)

func init() {
	miCmd.Flags().StringVar(&miUnigramsFile, "unigrams", "", "unigram count file (count<TAB>word records with a header total)")
	miCmd.Flags().Uint64Var(&miCountCutoff, "ct", 0, "minimum unigram count for a center or context word to be scored")
	rootCmd.AddCommand(miCmd)
}
