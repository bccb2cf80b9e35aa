package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/countfilter"
)

var (
	filterThreshold uint64

	filterCmd = &cobra.Command{
		Use:   "filter",
		Short: "Drop count records below a threshold from a header-prefixed count stream read on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}

			threshold := filterThreshold
			if !cmd.Flags().Changed("threshold") && config.Filter.DefaultThreshold != 0 {
				threshold = config.Filter.DefaultThreshold
			}

			return countfilter.RunStream(os.Stdin, os.Stdout, countfilter.Options{Threshold: threshold})
		},
	}
)

func init() {
	filterCmd.Flags().Uint64VarP(&filterThreshold, "threshold", "t", countfilter.DefaultThreshold, "minimum count for a record to be retained")
	rootCmd.AddCommand(filterCmd)
}
