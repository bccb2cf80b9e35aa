package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "corpusforge",
		Short:        "corpusforge",
		SilenceUsage: true,
		Long:         `corpusforge extracts plain-text sentence, ngram, and collocation corpora from MediaWiki-style dumps, one pipeline stage per subcommand.`,
	}

	configPath string
	verbose    bool

	log = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "corpusforge.yaml", "optional config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug-level) logging")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
	return rootCmd.Execute()
}
