package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/tokenize"
)

var (
	tokenizeKeep   string
	tokenizeParens bool

	tokenizeCmd = &cobra.Command{
		Use:   "tokenize",
		Short: "Split sentence-per-line plaintext read on stdin into lowercased, space-delimited tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}

			keep := tokenizeKeep
			if !cmd.Flags().Changed("keep") {
				keep = config.Tokenizer.Keep
			}

			t := tokenize.New(tokenize.Options{
				Parens: tokenizeParens,
				Keep:   runeSet(keep),
			})
			return tokenize.RunStream(os.Stdin, os.Stdout, t)
		},
	}
)

func runeSet(s string) map[rune]bool {
	set := map[rune]bool{}
	for _, r := range s {
		set[r] = true
	}
	return set
}

func init() {
	tokenizeCmd.Flags().StringVar(&tokenizeKeep, "keep", "", "punctuation characters to emit (surrounded by spaces) instead of dropping")
	tokenizeCmd.Flags().BoolVar(&tokenizeParens, "parens", false, "emit content inside parenthesized spans instead of discarding it")
	rootCmd.AddCommand(tokenizeCmd)
}
