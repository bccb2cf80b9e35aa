// Package mutualinfo implements the MutualInformation pipeline stage:
// given unigram counts and a stream of collocation counts grouped by
// center word, it scores each (w, v) pair and emits per-center-word
// normalized and raw mutual information.
//
// Grounded on original_source's MutualInformation.cpp: the scoring
// formula, the per-center-word normalization by mi(w,w), the count
// cutoff, and the streaming group-by-first-word consumption of an
// already-sorted collocation stream are all carried over verbatim.
package mutualinfo

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vippsas/corpusforge/corpusstream"
)

// Options configures a scoring run.
type Options struct {
	// CountCutoff excludes any word (center or context) whose unigram
	// count falls below this threshold.
	CountCutoff uint64
}

// LoadUnigrams reads a unigram count file (header total, then
// `count<TAB>word` records) into a lookup table, returning the header
// total alongside it.
func LoadUnigrams(r io.Reader) (counts map[string]uint64, total uint64, err error) {
	br := bufio.NewReaderSize(r, 64*1024)
	total, err = corpusstream.ReadHeader(br)
	if err != nil {
		return nil, 0, fmt.Errorf("reading unigram header: %w", err)
	}
	counts = make(map[string]uint64)
	for {
		line, readErr := br.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if trimmed != "" {
			rec, parseErr := corpusstream.ParseRecord(trimmed)
			if parseErr == nil {
				counts[rec.Key] += rec.Count
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, 0, readErr
		}
	}
	return counts, total, nil
}

// pair is one (w, v) collocation count awaiting scoring.
type pair struct {
	v     string
	count uint64
}

// scored is a pair with its raw mutual information score attached.
type scored struct {
	pair
	mi float64
}

// Score consumes a collocation-count stream, sorted ascending and
// grouped by first word, and writes per-collocation MI scores to w:
// `normalized_mi<TAB>raw_mi<TAB>count<TAB>w<TAB>v`, sorted within each
// group by descending raw mi. Words (center or context) with a unigram
// count below opt.CountCutoff, or absent from unigrams entirely, are
// dropped from scoring.
func Score(r io.Reader, w io.Writer, unigrams map[string]uint64, totalUnigrams uint64, opt Options) error {
	br := bufio.NewReaderSize(r, 64*1024)
	bw := bufio.NewWriterSize(w, 64*1024)

	var currentWord string
	var pairs []pair
	haveCurrent := false

	flush := func() error {
		if !haveCurrent {
			return nil
		}
		return emitGroup(bw, currentWord, pairs, unigrams, totalUnigrams, opt)
	}

	for {
		line, readErr := br.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if trimmed != "" {
			rec, parseErr := corpusstream.ParseRecord(trimmed)
			if parseErr == nil {
				wordAndV := strings.SplitN(rec.Key, " ", 2)
				if len(wordAndV) == 2 {
					wWord, vWord := wordAndV[0], wordAndV[1]
					if wWord != currentWord {
						if err := flush(); err != nil {
							return err
						}
						currentWord = wWord
						pairs = nil
						haveCurrent = true
					}
					pairs = append(pairs, pair{v: vWord, count: rec.Count})
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
	if err := flush(); err != nil {
		return err
	}
	return bw.Flush()
}

// mi computes C(w,v)*N^2 / (C(w)^2 * C(v)).
func mi(cwv, cw, cv, n float64) float64 {
	return cwv * n * n / (cw * cw * cv)
}

func emitGroup(bw *bufio.Writer, w string, pairs []pair, unigrams map[string]uint64, n uint64, opt Options) error {
	cw, ok := unigrams[w]
	if !ok || cw < opt.CountCutoff {
		return nil
	}

	scoredPairs := make([]scored, 0, len(pairs))
	var norm float64
	for _, p := range pairs {
		cv, ok := unigrams[p.v]
		if !ok || cv < opt.CountCutoff {
			continue
		}
		s := scored{pair: p, mi: mi(float64(p.count), float64(cw), float64(cv), float64(n))}
		scoredPairs = append(scoredPairs, s)
		if p.v == w {
			norm = s.mi
		}
	}

	sort.SliceStable(scoredPairs, func(i, j int) bool { return scoredPairs[i].mi > scoredPairs[j].mi })

	for _, s := range scoredPairs {
		normalized := s.mi / norm
		if _, err := fmt.Fprintf(bw, "%g\t%g\t%d\t%s\t%s\n", normalized, s.mi, s.count, w, s.v); err != nil {
			return err
		}
	}
	return nil
}
