package corpusstream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ArticleSeparator is the line-on-its-own-line that delimits articles in a
// Textifier/SentenceExtractor stream.
const ArticleSeparator = "\f"

// Sep is the tab byte separating count from key in a count record. Words
// inside a key (ngram tokens, or w and v of a collocation pair) are
// separated by a single space instead.
const Sep = '\t'

// CountRecord is one `count<TAB>key\n` line: a non-negative count and the
// ngram or collocation-pair key it was observed under.
type CountRecord struct {
	Count uint64
	Key   string
}

// FormatRecord renders a CountRecord in wire form, without the trailing
// newline.
func FormatRecord(r CountRecord) string {
	return strconv.FormatUint(r.Count, 10) + string(Sep) + r.Key
}

// WriteRecord writes one count record line, LF-terminated.
func WriteRecord(w io.Writer, r CountRecord) error {
	_, err := fmt.Fprintf(w, "%d\t%s\n", r.Count, r.Key)
	return err
}

// WriteHeader writes the leading total-count header line shared by
// NGramCounter, CollocationCounter's MI consumer, and CountFilter.
func WriteHeader(w io.Writer, total uint64) error {
	_, err := fmt.Fprintf(w, "%d\n", total)
	return err
}

// ParseRecord parses one `count<TAB>key` line (no trailing newline). A
// malformed line is a *record parse warning*: callers log and
// skip it rather than treating it as fatal.
func ParseRecord(line string) (CountRecord, error) {
	idx := strings.IndexByte(line, Sep)
	if idx < 0 {
		return CountRecord{}, fmt.Errorf("count record missing tab separator: %q", line)
	}
	count, err := strconv.ParseUint(line[:idx], 10, 64)
	if err != nil {
		return CountRecord{}, fmt.Errorf("count record has non-numeric count: %q", line)
	}
	return CountRecord{Count: count, Key: line[idx+1:]}, nil
}

// ReadHeader reads and parses the single total-count header line a count
// stream begins with.
func ReadHeader(r *bufio.Reader) (uint64, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	line = strings.TrimRight(line, "\n")
	total, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed count stream header %q: %w", line, err)
	}
	return total, nil
}
