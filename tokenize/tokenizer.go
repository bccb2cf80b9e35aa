// Package tokenize implements the Tokenizer pipeline stage: it turns
// sentence-per-line plaintext into a lowercased, space-delimited word
// stream.
//
// Rune classification (what counts as a "word" character versus
// punctuation to strip) is grounded on sqlparser/scanner.go's use of
// xid.Start/xid.Continue to recognize identifier runes; here the same
// functions (together with unicode.IsLetter/IsDigit) decide whether a
// rune outside the recognised punctuation set is lowercased and emitted
// as a word character or dropped.
package tokenize

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"github.com/vippsas/corpusforge/corpusstream"
)

// Options configures a Tokenizer.
type Options struct {
	// Parens, when true, emits content inside parenthesized spans instead
	// of discarding it.
	Parens bool
	// Keep is the set of punctuation runes that, despite being in the
	// recognised punctuation set, are emitted (surrounded by single
	// spaces) rather than dropped.
	Keep map[rune]bool
}

// Tokenizer converts sentence lines into lowercased, space-delimited
// token streams.
type Tokenizer struct {
	opt Options
}

// New creates a Tokenizer with the given options.
func New(opt Options) *Tokenizer {
	if opt.Keep == nil {
		opt.Keep = map[rune]bool{}
	}
	return &Tokenizer{opt: opt}
}

// punctuation is the recognised punctuation set: dropped unless kept,
// except for the apostrophe-after-whitespace and digit-comma exceptions
// below.
var punctuation = map[rune]bool{
	'.': true, ',': true, '!': true, '?': true, '(': true, ')': true,
	'&': true, '@': true, '[': true, ']': true, '{': true, '}': true,
	'/': true, '\\': true, '"': true, '\'': true, '#': true, ':': true,
	';': true, '<': true, '>': true, '^': true,
	'‘': true, '’': true, // ‘ ’
	'“': true, '”': true, // “ ”
	'–': true, '—': true, // – —
}

// TokenizeLine converts one sentence line (no embedded newline) into its
// tokenized form, without the trailing "\n" that the caller appends.
func (t *Tokenizer) TokenizeLine(line []byte) string {
	var out bytes.Buffer
	depth := 0
	runes := []rune(string(line))

	lastOut := func() rune {
		if out.Len() == 0 {
			return 0
		}
		r, _ := utf8.DecodeLastRune(out.Bytes())
		return r
	}
	emitSpace := func() {
		if out.Len() > 0 && lastOut() != ' ' {
			out.WriteByte(' ')
		}
	}

	for i := 0; i < len(runes); i++ {
		if loc := corpusstream.AbbrevPattern.FindIndex([]byte(string(runes[i:]))); loc != nil {
			abbrv := string(runes[i:])[:loc[1]]
			if depth == 0 || t.opt.Parens {
				out.WriteString(strings.ToLower(abbrv))
			}
			i += len([]rune(abbrv)) - 1
			continue
		}

		r := runes[i]

		if r == '(' {
			depth++
			if !t.opt.Parens {
				continue
			}
		}
		if r == ')' {
			if depth > 0 {
				depth--
			}
			if !t.opt.Parens {
				continue
			}
		}
		if depth > 0 && !t.opt.Parens {
			continue
		}

		if unicode.IsSpace(r) {
			emitSpace()
			continue
		}

		if punctuation[r] {
			prevWasSpace := i == 0 || unicode.IsSpace(runes[i-1])
			if r == '\'' && !prevWasSpace {
				out.WriteRune('\'')
				continue
			}
			if r == ',' && i > 0 && i+1 < len(runes) &&
				unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				out.WriteRune(',')
				continue
			}
			if t.opt.Keep[r] {
				emitSpace()
				out.WriteRune(r)
				out.WriteByte(' ')
				continue
			}
			continue
		}

		if xid.Start(r) || xid.Continue(r) || unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(unicode.ToLower(r))
			continue
		}

		// Anything else unrecognised is dropped like punctuation.
	}

	return strings.TrimRight(out.String(), " ")
}

// TokenizeLines tokenizes every line of input, one per output line.
func (t *Tokenizer) TokenizeLines(input []byte) string {
	lines := bytes.Split(input, []byte("\n"))
	var out bytes.Buffer
	for i, line := range lines {
		if i == len(lines)-1 && len(line) == 0 {
			continue
		}
		out.WriteString(t.TokenizeLine(line))
		out.WriteByte('\n')
	}
	return out.String()
}
