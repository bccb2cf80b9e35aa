// Package sentence implements the SentenceExtractor pipeline stage: it
// turns a plaintext buffer into one sentence per line, with paragraphs
// separated by exactly one blank line.
//
// Grounded directly on original_source's SentenceExtractor.cpp: a
// single-pass scanner over the input, tracking the last written output
// character, with abbreviation detection guarding sentence-terminator
// newlines. The original kept an `if (false)` dead branch for a "short
// abbreviation" special case alongside its narrower inline regex; here
// only the regex path (corpusstream.AbbrevPattern) is implemented.
package sentence

import (
	"bytes"

	"github.com/vippsas/corpusforge/corpusstream"
)

// Extractor converts plaintext to one-sentence-per-line output.
type Extractor struct {
	// SeparateParagraphs controls whether a blank input line starts a new
	// paragraph (emits a blank line) or is folded into a single space.
	SeparateParagraphs bool
}

// New creates an Extractor with paragraph separation enabled, matching the
// Textifier's paragraph convention.
func New() *Extractor {
	return &Extractor{SeparateParagraphs: true}
}

// Extract converts one plaintext article buffer into sentence-per-line
// output. The caller is responsible for the \f article separator.
func (e *Extractor) Extract(input []byte) string {
	var out bytes.Buffer
	pos := 0

	peek := func() byte {
		if pos+1 >= len(input) {
			return 0
		}
		return input[pos+1]
	}
	isLastWrittenOneOf := func(chars string) bool {
		if out.Len() == 0 {
			return false
		}
		last := out.Bytes()[out.Len()-1]
		return bytes.IndexByte([]byte(chars), last) >= 0
	}
	newline := func(count int) {
		if out.Len() == 0 {
			return
		}
		b := out.Bytes()
		have := 0
		for have < len(b) && b[len(b)-1-have] == '\n' {
			have++
		}
		for ; have < count; have++ {
			out.WriteByte('\n')
		}
	}

	for pos < len(input) {
		if loc := corpusstream.AbbrevPattern.FindIndex(input[pos:]); loc != nil {
			abbrv := input[pos : pos+loc[1]]
			out.Write(abbrv)
			pos += len(abbrv)
			if pos < len(input) && isUpper(input[pos]) {
				for isLastWrittenOneOf(" \t") {
					out.Truncate(out.Len() - 1)
				}
				newline(1)
			}
			continue
		}

		ch := input[pos]
		switch ch {
		case '\n':
			if peek() == '\n' && e.SeparateParagraphs {
				newline(2)
				pos++
			} else if !isLastWrittenOneOf(" \t\n") && out.Len() > 0 {
				out.WriteByte(' ')
			}

		case '.', '?', '!':
			out.WriteByte(ch)
			if ch == '.' {
				nxt := peek()
				if isWhitespace(nxt) || nxt == '"' || nxt == '\'' {
					if nxt == '"' || nxt == '\'' {
						out.WriteByte(nxt)
						pos++
					}
					newline(1)
				}
			} else {
				newline(1)
			}

		case ' ', '\t':
			if out.Len() > 0 && !isLastWrittenOneOf(" \t\r\n") {
				out.WriteByte(ch)
			}

		default:
			out.WriteByte(ch)
		}
		pos++
	}

	newline(2)
	return out.String()
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}
