package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/corpusforge/corpusstream"
	"github.com/vippsas/corpusforge/merge"
)

var (
	mergeCmd = &cobra.Command{
		Use:   "merge FILE1 FILE2",
		Short: "Merge two header-prefixed sorted count files, summing counts for shared keys, to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_ = cmd.Help()
				return errors.New("need to specify arguments FILE1 FILE2")
			}

			fa, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fa.Close()
			fb, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer fb.Close()

			ra := bufio.NewReader(fa)
			rb := bufio.NewReader(fb)
			if _, err := corpusstream.ReadHeader(ra); err != nil {
				return err
			}
			if _, err := corpusstream.ReadHeader(rb); err != nil {
				return err
			}

			runLog := log.WithFields(logFields("merge"))
			var merged bytes.Buffer
			total, err := merge.Two(ra, rb, &merged, runLog)
			if err != nil {
				return err
			}

			if err := corpusstream.WriteHeader(os.Stdout, total); err != nil {
				return err
			}
			_, err = os.Stdout.Write(merged.Bytes())
			return err
		},
	}
)

func init() {
	rootCmd.AddCommand(mergeCmd)
}
