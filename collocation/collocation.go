// Package collocation implements the CollocationCounter pipeline stage:
// a multi-threaded counter over paragraph-aligned splits of a
// sentence-per-line input file, counting how often each word w
// co-occurs with each word v in the three-sentence context (previous,
// current, next) surrounding the sentence w appears in.
//
// Grounded on original_source's Collocations.cpp for the per-paragraph
// counting shape (sentinel-bounded sliding window, deduplicated context
// set, non-deduplicated center-word occurrences) — redesigned to include
// the center sentence itself in the context set, where the original
// counted only the immediate neighbours. The worker-pool / bounded-queue
// orchestration is new: the original is single-threaded; this package
// runs two worker pools (split and merge) sharing bounded queues, built
// with goroutines and a mutex-guarded queue instead of the original's
// absent concurrency.
package collocation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vippsas/corpusforge/corpusstream"
	"github.com/vippsas/corpusforge/merge"
)

// Options configures a collocation run.
type Options struct {
	// SplitSize is the approximate byte size of each paragraph-aligned
	// split.
	SplitSize uint64
	// Threads is the number of split workers and the number of merge
	// workers.
	Threads int
	// TempDir is where split and merge chunk files are created.
	TempDir string
}

// mergeQueuePauseThreshold is the "pending merges exceed five" back-
// pressure rule split workers obey before producing more chunks.
const mergeQueuePauseThreshold = 5

const pollInterval = 2 * time.Millisecond

// Run counts collocations over the file at path and writes the sorted
// result stream to w.
func Run(path string, opt Options, w io.Writer, log logrus.FieldLogger) error {
	if opt.Threads <= 0 {
		opt.Threads = 4
	}
	splits, err := computeSplits(path, opt.SplitSize)
	if err != nil {
		return err
	}

	splitCh := make(chan [2]int64, len(splits))
	for _, s := range splits {
		splitCh <- s
	}
	close(splitCh)

	q := &chunkQueue{}
	var splitsRemaining int64 = int64(len(splits))
	var mu sync.Mutex
	var firstErr error
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	hasErr := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	var wg sync.WaitGroup
	for i := 0; i < opt.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rng := range splitCh {
				if hasErr() {
					q.decrementPending(&splitsRemaining)
					continue
				}
				for q.len() > mergeQueuePauseThreshold {
					time.Sleep(pollInterval)
				}
				chunk, err := processSplit(path, rng[0], rng[1], opt.TempDir, log)
				if err != nil {
					setErr(err)
					q.decrementPending(&splitsRemaining)
					continue
				}
				if chunk != "" {
					q.push(chunk)
				}
				q.decrementPending(&splitsRemaining)
			}
		}()
	}

	for i := 0; i < opt.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if hasErr() {
					return
				}
				a, b, ok := q.popPair()
				if ok {
					merged, err := mergeChunkFiles(a, b, opt.TempDir, log)
					if err != nil {
						setErr(err)
						return
					}
					q.push(merged)
					continue
				}
				if splitsDone(&splitsRemaining) && q.len() <= 1 {
					return
				}
				time.Sleep(pollInterval)
			}
		}()
	}

	wg.Wait()
	if firstErr != nil {
		q.cleanup()
		return firstErr
	}

	switch q.len() {
	case 0:
		return nil
	case 1:
		f, err := os.Open(q.items[0])
		if err != nil {
			return err
		}
		defer f.Close()
		defer os.Remove(q.items[0])
		_, err = io.Copy(w, f)
		return err
	default:
		q.cleanup()
		return fmt.Errorf("merge queue did not converge to one file: %d remaining", q.len())
	}
}

func splitsDone(remaining *int64) bool {
	return atomic.LoadInt64(remaining) == 0
}

// chunkQueue is the shared merge queue: a mutex-guarded slice of
// temporary chunk-file paths. The shared mutable queue is deliberate
// here, not an artifact to be designed away.
type chunkQueue struct {
	mu    sync.Mutex
	items []string
}

func (q *chunkQueue) push(path string) {
	q.mu.Lock()
	q.items = append(q.items, path)
	q.mu.Unlock()
}

func (q *chunkQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *chunkQueue) popPair() (string, string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) < 2 {
		return "", "", false
	}
	a, b := q.items[0], q.items[1]
	q.items = q.items[2:]
	return a, b, true
}

func (q *chunkQueue) cleanup() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, p := range q.items {
		os.Remove(p)
	}
	q.items = nil
}

func (q *chunkQueue) decrementPending(remaining *int64) {
	atomic.AddInt64(remaining, -1)
}

func mergeChunkFiles(a, b string, tmpDir string, log logrus.FieldLogger) (string, error) {
	out, err := corpusstream.CreateTempFile(tmpDir, "collocation-chunk-")
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := merge.Files(a, b, out, log); err != nil {
		return "", err
	}
	os.Remove(a)
	os.Remove(b)
	return out.Name(), nil
}

// computeSplits divides the file at path into paragraph-aligned byte
// ranges, each approximately opt.SplitSize bytes.
func computeSplits(path string, splitSize uint64) ([][2]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, nil
	}
	if splitSize == 0 {
		splitSize = 4 << 20
	}
	numSplits := int(math.Ceil(float64(size) / float64(splitSize)))
	if numSplits < 1 {
		numSplits = 1
	}

	boundarySet := map[int64]bool{0: true, size: true}
	for i := 1; i < numSplits; i++ {
		approx := int64(i) * size / int64(numSplits)
		adj, err := advanceToParagraphBoundary(f, approx, size)
		if err != nil {
			return nil, err
		}
		boundarySet[adj] = true
	}

	boundaries := make([]int64, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })

	ranges := make([][2]int64, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		if boundaries[i] == boundaries[i+1] {
			continue
		}
		ranges = append(ranges, [2]int64{boundaries[i], boundaries[i+1]})
	}
	return ranges, nil
}

// advanceToParagraphBoundary scans forward from pos until it finds a
// blank line (the byte offset right after it), or reaches EOF. A pos that
// falls inside a line, or on the '\n' ending it, first skips the rest of
// that line.
func advanceToParagraphBoundary(f *os.File, pos, size int64) (int64, error) {
	if pos >= size {
		return size, nil
	}
	atLineStart := pos == 0
	if !atLineStart {
		var prev [1]byte
		if _, err := f.ReadAt(prev[:], pos-1); err != nil {
			return size, err
		}
		atLineStart = prev[0] == '\n'
	}
	r := bufio.NewReaderSize(io.NewSectionReader(f, pos, size-pos), 64*1024)
	offset := pos
	for {
		line, err := r.ReadString('\n')
		offset += int64(len(line))
		if atLineStart && strings.TrimRight(line, "\n") == "" && len(line) > 0 {
			return offset, nil
		}
		atLineStart = true
		if err != nil {
			return size, nil
		}
	}
}

// processSplit counts collocations within one byte range of path and
// writes the result as a sorted chunk file, returning its path. An
// empty split (no sentences) returns an empty path and no error.
func processSplit(path string, start, end int64, tmpDir string, log logrus.FieldLogger) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return "", err
	}
	r := bufio.NewReaderSize(f, 64*1024)

	counts := make(map[string]map[string]uint64)
	var paragraph []string
	pos := start

	flushParagraph := func() {
		countParagraph(paragraph, counts)
		paragraph = paragraph[:0]
	}

	for pos < end {
		line, err := r.ReadString('\n')
		pos += int64(len(line))
		trimmed := strings.TrimRight(line, "\n")
		if trimmed == corpusstream.ArticleSeparator {
			flushParagraph()
		} else if trimmed == "" {
			flushParagraph()
		} else {
			paragraph = append(paragraph, trimmed)
		}
		if err != nil {
			break
		}
	}
	flushParagraph()

	if len(counts) == 0 {
		return "", nil
	}

	out, err := corpusstream.CreateTempFile(tmpDir, "collocation-chunk-")
	if err != nil {
		return "", err
	}
	defer out.Close()

	ws := make([]string, 0, len(counts))
	for w := range counts {
		ws = append(ws, w)
	}
	sort.Strings(ws)

	bw := bufio.NewWriterSize(out, 64*1024)
	for _, w := range ws {
		vs := make([]string, 0, len(counts[w]))
		for v := range counts[w] {
			vs = append(vs, v)
		}
		sort.Strings(vs)
		for _, v := range vs {
			rec := corpusstream.CountRecord{Count: counts[w][v], Key: w + " " + v}
			if err := corpusstream.WriteRecord(bw, rec); err != nil {
				return "", err
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return out.Name(), nil
}

// countParagraph counts word/context pairs within one paragraph, using a
// three-sentence sliding window with empty sentinel sentences before the
// first and after the last sentence.
func countParagraph(paragraph []string, counts map[string]map[string]uint64) {
	if len(paragraph) == 0 {
		return
	}
	for i, cur := range paragraph {
		var prev, next string
		if i > 0 {
			prev = paragraph[i-1]
		}
		if i < len(paragraph)-1 {
			next = paragraph[i+1]
		}

		ctx := make(map[string]bool)
		for _, w := range words(prev) {
			ctx[w] = true
		}
		for _, w := range words(cur) {
			ctx[w] = true
		}
		for _, w := range words(next) {
			ctx[w] = true
		}

		for _, w := range words(cur) {
			inner := counts[w]
			if inner == nil {
				inner = make(map[string]uint64)
				counts[w] = inner
			}
			for v := range ctx {
				inner[v]++
			}
		}
	}
}

func words(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
