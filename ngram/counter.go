// Package ngram implements the NGramCounter pipeline stage: an external-memory sort/merge counter over tokenized sentence
// lines, producing a single globally sorted, header-prefixed count
// stream.
//
// The in-memory accumulator spills to anonymous temporary files once it
// grows past a configured size, and those chunk files are folded back
// together with the two-way merge from the merge package, the same one
// CollocationCounter uses to fold split outputs.
package ngram

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/corpusforge/corpusstream"
	"github.com/vippsas/corpusforge/merge"
)

const startSentinel = "<s>"
const endSentinel = "</s>"

// Options configures a Counter.
type Options struct {
	// N is the ngram length. Must be >= 1.
	N int
	// MaxChunkSize is the approximate in-memory byte budget of the
	// accumulator. New converts it to a threshold on the summed raw input
	// line lengths, past which the accumulator spills to a chunk file.
	MaxChunkSize uint64
	// TempDir is where chunk files are created; empty uses the OS default.
	TempDir string
	// Verbose logs a chunk-boundary debug line on every flush.
	Verbose bool
}

// chunkBoundary is what gets repr-dumped on a verbose chunk flush.
type chunkBoundary struct {
	OpenChunks    int
	FlushedKeys   int
	LineLengthSum uint64
}

// Counter accumulates ngram counts and externalizes them to sorted chunk
// files once the in-memory accumulator grows too large.
type Counter struct {
	opt            Options
	log            logrus.FieldLogger
	counts         map[string]uint64
	lineLengthSum  uint64
	maxChunkLength uint64
	chunks         []string // paths, oldest first
	total          uint64
}

// New creates a Counter. maxChunkLength is derived from opt.MaxChunkSize
// via `4*maxChunkSize/(2n+8)`, the empirical approximation accounting for
// key duplication across the count map and eight bytes per counter
//.
func New(opt Options, log logrus.FieldLogger) *Counter {
	if opt.N <= 0 {
		opt.N = 2
	}
	maxChunkSize := opt.MaxChunkSize
	if maxChunkSize == 0 {
		maxChunkSize = 64 << 20
	}
	return &Counter{
		opt:            opt,
		log:            log,
		counts:         make(map[string]uint64),
		maxChunkLength: 4 * maxChunkSize / uint64(2*opt.N+8),
	}
}

// AddLine ingests one tokenized sentence line, forming all n-length
// sentinel-padded windows and incrementing their counts.
func (c *Counter) AddLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	n := c.opt.N
	padded := make([]string, 0, len(tokens)+n)
	for i := 0; i < n-1; i++ {
		padded = append(padded, startSentinel)
	}
	padded = append(padded, tokens...)
	padded = append(padded, endSentinel)

	for i := 0; i+n <= len(padded); i++ {
		key := strings.Join(padded[i:i+n], " ")
		c.counts[key]++
		c.total++
	}

	c.lineLengthSum += uint64(len(line))
	if c.maxChunkLength > 0 && c.lineLengthSum >= c.maxChunkLength {
		if err := c.flush(); err != nil {
			return err
		}
	}
	return nil
}

// flush spills the current accumulator to a new sorted chunk file, then
// compacts if three chunks are now open.
func (c *Counter) flush() error {
	if len(c.counts) == 0 {
		return nil
	}
	if c.opt.Verbose && c.log != nil {
		c.log.Debugf("flushing chunk: %s", repr.String(chunkBoundary{
			OpenChunks:    len(c.chunks),
			FlushedKeys:   len(c.counts),
			LineLengthSum: c.lineLengthSum,
		}))
	}
	path, err := c.writeChunk(c.counts)
	if err != nil {
		return err
	}
	c.chunks = append(c.chunks, path)
	c.counts = make(map[string]uint64)
	c.lineLengthSum = 0

	if len(c.chunks) >= 3 {
		return c.compactOldest()
	}
	return nil
}

// compactOldest merges the two oldest open chunks into one, bounding the
// number of simultaneously open temporary files to three.
func (c *Counter) compactOldest() error {
	merged, err := c.mergeChunks(c.chunks[0], c.chunks[1])
	if err != nil {
		return err
	}
	c.chunks = append([]string{merged}, c.chunks[2:]...)
	return nil
}

func (c *Counter) writeChunk(counts map[string]uint64) (string, error) {
	f, err := corpusstream.CreateTempFile(c.opt.TempDir, "ngram-chunk-")
	if err != nil {
		return "", err
	}
	defer f.Close()

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bw := bufio.NewWriterSize(f, 64*1024)
	for _, k := range keys {
		if err := corpusstream.WriteRecord(bw, corpusstream.CountRecord{Count: counts[k], Key: k}); err != nil {
			return "", err
		}
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func (c *Counter) mergeChunks(pathA, pathB string) (string, error) {
	out, err := corpusstream.CreateTempFile(c.opt.TempDir, "ngram-chunk-")
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := merge.Files(pathA, pathB, out, c.log); err != nil {
		return "", err
	}
	os.Remove(pathA)
	os.Remove(pathB)
	return out.Name(), nil
}

// Close flushes any remaining accumulator state, folds all chunks down to
// one sorted stream, and writes the header-prefixed result to w. It
// removes every temporary chunk file it created, on both success and
// failure.
func (c *Counter) Close(w io.Writer) (err error) {
	if ferr := c.flush(); ferr != nil {
		return ferr
	}
	defer func() {
		for _, p := range c.chunks {
			os.Remove(p)
		}
		c.chunks = nil
	}()

	switch len(c.chunks) {
	case 0:
		return corpusstream.WriteHeader(w, 0)
	case 1:
		if err := corpusstream.WriteHeader(w, c.total); err != nil {
			return err
		}
		f, err := os.Open(c.chunks[0])
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}

	for len(c.chunks) > 2 {
		var next []string
		i := 0
		for i+1 < len(c.chunks) {
			merged, err := c.mergeChunks(c.chunks[i], c.chunks[i+1])
			if err != nil {
				return err
			}
			next = append(next, merged)
			i += 2
		}
		if i < len(c.chunks) {
			next = append(next, c.chunks[i])
		}
		c.chunks = next
	}

	if err := corpusstream.WriteHeader(w, c.total); err != nil {
		return err
	}
	fa, err := os.Open(c.chunks[0])
	if err != nil {
		return err
	}
	defer fa.Close()
	fb, err := os.Open(c.chunks[1])
	if err != nil {
		return err
	}
	defer fb.Close()

	emitted, err := merge.Two(fa, fb, w, c.log)
	if err != nil {
		return err
	}
	if emitted != c.total && c.log != nil {
		c.log.Warnf("ngram count mismatch: header total %d, emitted %d", c.total, emitted)
	}
	return nil
}
