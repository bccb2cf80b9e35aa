package cmd

import (
	"os"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/textify"
)

var (
	textifyIgnoreHeadings bool
	textifyDebugState     bool

	textifyCmd = &cobra.Command{
		Use:   "textify",
		Short: "Strip MediaWiki markup from article text read on stdin, writing plaintext to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			runLog := log.WithFields(logFields("textify"))

			t := textify.New(textify.Options{
				IgnoreHeadings: textifyIgnoreHeadings,
				DebugState:     textifyDebugState,
				Log:            runLog,
			})
			return textify.RunStream(os.Stdin, os.Stdout, t, runLog)
		},
	}
)

func init() {
	textifyCmd.Flags().BoolVarP(&textifyIgnoreHeadings, "ignore-headings", "h", false, "drop heading markup spans entirely instead of emitting the heading text")
	textifyCmd.Flags().BoolVar(&textifyDebugState, "debug-state", false, "log a repr dump of recursion depth and output length on every top-level and nested call")
	_ = textifyCmd.Flags().MarkHidden("debug-state")
	rootCmd.AddCommand(textifyCmd)
}

func logFields(stage string) map[string]interface{} {
	return map[string]interface{}{
		"stage":  stage,
		"run_id": uuid.Must(uuid.NewV4()).String(),
	}
}
