// Package merge implements the two-way sorted count-file merge shared by
// NGramCounter and CollocationCounter: both are external sort/merge
// pipelines that repeatedly fold pairs of sorted chunk files into one,
// and this is the fold.
package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vippsas/corpusforge/corpusstream"
)

// Two reads two count-record streams, both sorted ascending by key with
// unique keys (no header line), and writes their merge to w: identical
// keys have their counts summed, others pass through in key order.
// Malformed records are skipped with a warning via log. The total of all
// emitted counts is returned.
//
// EOF on both inputs is required to end the merge; an input that errors
// before being fully drained is reported as-is.
func Two(a, b io.Reader, w io.Writer, log logrus.FieldLogger) (uint64, error) {
	ra := bufio.NewReaderSize(a, 64*1024)
	rb := bufio.NewReaderSize(b, 64*1024)
	bw := bufio.NewWriterSize(w, 64*1024)

	curA, okA, err := nextRecord(ra, log)
	if err != nil {
		return 0, err
	}
	curB, okB, err := nextRecord(rb, log)
	if err != nil {
		return 0, err
	}

	var total uint64
	emit := func(r corpusstream.CountRecord) error {
		total += r.Count
		return corpusstream.WriteRecord(bw, r)
	}

	for okA && okB {
		switch {
		case curA.Key < curB.Key:
			if err := emit(curA); err != nil {
				return 0, err
			}
			curA, okA, err = nextRecord(ra, log)
		case curA.Key > curB.Key:
			if err := emit(curB); err != nil {
				return 0, err
			}
			curB, okB, err = nextRecord(rb, log)
		default:
			merged := corpusstream.CountRecord{Key: curA.Key, Count: curA.Count + curB.Count}
			if err := emit(merged); err != nil {
				return 0, err
			}
			curA, okA, err = nextRecord(ra, log)
			if err != nil {
				return 0, err
			}
			curB, okB, err = nextRecord(rb, log)
		}
		if err != nil {
			return 0, err
		}
	}
	for okA {
		if err := emit(curA); err != nil {
			return 0, err
		}
		curA, okA, err = nextRecord(ra, log)
		if err != nil {
			return 0, err
		}
	}
	for okB {
		if err := emit(curB); err != nil {
			return 0, err
		}
		curB, okB, err = nextRecord(rb, log)
		if err != nil {
			return 0, err
		}
	}

	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return total, nil
}

// nextRecord reads and parses the next well-formed record from r, skipping
// malformed lines with a logged warning. ok is false once r is exhausted.
func nextRecord(r *bufio.Reader, log logrus.FieldLogger) (corpusstream.CountRecord, bool, error) {
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return corpusstream.CountRecord{}, false, nil
			}
			return corpusstream.CountRecord{}, false, err
		}
		trimmed := line
		if n := len(trimmed); n > 0 && trimmed[n-1] == '\n' {
			trimmed = trimmed[:n-1]
		}
		rec, parseErr := corpusstream.ParseRecord(trimmed)
		if parseErr != nil {
			if log != nil {
				log.Warnf("skipping malformed count record: %v", parseErr)
			}
		} else {
			if err == io.EOF {
				return rec, true, nil
			}
			return rec, true, nil
		}
		if err == io.EOF {
			return corpusstream.CountRecord{}, false, nil
		}
	}
}

// Files opens two file paths, merges them into w, and returns the total.
func Files(pathA, pathB string, w io.Writer, log logrus.FieldLogger) (uint64, error) {
	fa, err := os.Open(pathA)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", pathA, err)
	}
	defer fa.Close()
	fb, err := os.Open(pathB)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", pathB, err)
	}
	defer fb.Close()
	return Two(fa, fb, w, log)
}
