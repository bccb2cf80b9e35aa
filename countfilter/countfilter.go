// Package countfilter implements the CountFilter pipeline stage: a
// threshold filter over a header-prefixed count stream, dropping
// records whose count falls below a configurable minimum while
// preserving input order. Present in original_source as a standalone
// filtering utility over NGramCounter output; here it is a pipeline
// stage in its own right, with the same header-prefixed stream contract
// as the other count-producing stages.
package countfilter

import (
	"bufio"
	"io"
	"strings"

	"github.com/vippsas/corpusforge/corpusstream"
)

// DefaultThreshold is the threshold applied when the CLI's -t flag is
// left unset.
const DefaultThreshold = 5

// Options configures a filter run.
type Options struct {
	Threshold uint64
}

// RunStream reads a header-prefixed count stream from r, drops records
// whose count is below opt.Threshold, and writes the surviving records
// to w with a header equal to the sum of their counts, preserving the
// original record order.
func RunStream(r io.Reader, w io.Writer, opt Options) error {
	br := bufio.NewReaderSize(r, 64*1024)
	if _, err := corpusstream.ReadHeader(br); err != nil {
		return err
	}

	var kept []corpusstream.CountRecord
	var total uint64
	for {
		line, readErr := br.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if trimmed != "" {
			if rec, err := corpusstream.ParseRecord(trimmed); err == nil {
				if rec.Count >= opt.Threshold {
					kept = append(kept, rec)
					total += rec.Count
				}
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return readErr
		}
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	if err := corpusstream.WriteHeader(bw, total); err != nil {
		return err
	}
	for _, rec := range kept {
		if err := corpusstream.WriteRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
