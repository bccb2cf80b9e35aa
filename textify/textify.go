// Package textify converts MediaWiki article markup to plaintext. It is a
// recursive-descent, best-effort stripper (not a faithful renderer): links,
// templates, headings, comments, HTML tags, lists, and emphasis markers are
// removed or flattened, tolerating malformed input by reporting a position
// and letting the caller skip the offending article.
//
// The scanner-and-recursive-handler shape here follows a
// sqlparser.Scanner-style recursive-descent parser: a cursor over a byte
// slice, dispatched on lookahead, with handlers that recurse into
// sub-slices for nested constructs instead of an explicit state stack.
package textify

import (
	"bytes"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/vippsas/corpusforge/corpusstream"
)

// Options configures a Textifier.
type Options struct {
	// IgnoreHeadings drops heading markup spans entirely instead of
	// emitting the heading text.
	IgnoreHeadings bool
	// DebugState logs a repr dump of the recursion depth and output
	// length on every textifyInto call, top-level and nested, behind the CLI's hidden
	// --debug-state flag.
	DebugState bool
	// Log receives DebugState dumps and is otherwise unused.
	Log logrus.FieldLogger
}

// recursionState is what gets repr-dumped on a debug-state nested call.
type recursionState struct {
	Depth     int
	MarkupLen int
	OutLen    int
}

// Textifier converts MediaWiki markup to plaintext. It is stateless aside
// from Options and is safe to reuse across articles and to share between
// goroutines (each call operates on its own markup/output).
type Textifier struct {
	opt Options
}

// New creates a Textifier with the given options.
func New(opt Options) *Textifier {
	return &Textifier{opt: opt}
}

// Textify strips MediaWiki markup from article and returns the plaintext
// rendering. On a parse error the returned error is a corpusstream.Error
// carrying the line and column at which the failure was detected, counted
// within the markup slice being scanned at that point (for a nested
// construct, the link label or list item body); the caller
// (textify.RunStream) is responsible for skipping the article.
func (t *Textifier) Textify(article []byte) (string, error) {
	var out bytes.Buffer
	if err := t.textifyInto(article, &out, 0); err != nil {
		return "", err
	}
	return out.String(), nil
}

// textifyInto dispatches over markup, appending plaintext to out. It is
// called both at top level and recursively for nested constructs (a link
// label, a list item body); depth is the recursion depth, the native-stack
// replacement for an explicit state stack.
func (t *Textifier) textifyInto(markup []byte, out *bytes.Buffer, depth int) error {
	if t.opt.DebugState && t.opt.Log != nil {
		t.opt.Log.Debugf("textify state: %s", repr.String(recursionState{
			Depth: depth, MarkupLen: len(markup), OutLen: out.Len(),
		}))
	}
	pos := 0
	for pos < len(markup) {
		b := markup[pos]
		// Meta-pipe's "line start" is judged against the *input* markup
		// (mirrors the original's atLineStart(markup, pos)); list and the
		// bare ':' skip are judged against the *output* written so far
		// (mirrors atLineStart(out, pos_out)); the two call sites disagree on
		// which buffer is "relevant", and both are preserved rather than
		// unified.
		atLineStartIn := corpusstream.AtLineStart(markup[:pos])
		atLineStartOut := corpusstream.AtLineStart(out.Bytes())

		switch {
		case b == '[':
			next, err := t.link(markup, pos, out, depth)
			if err == errUnbalancedBracket {
				out.WriteByte(markup[pos])
				pos++
				continue
			}
			if err != nil {
				return err
			}
			pos = next

		case hasPrefixAt(markup, pos, "<!--"):
			next, err := t.comment(markup, pos)
			if err != nil {
				return err
			}
			pos = next

		case b == '<':
			next, err := t.tag(markup, pos, out)
			if err != nil {
				return err
			}
			pos = next

		case hasPrefixAt(markup, pos, "{{") || hasPrefixAt(markup, pos, "{|"):
			next, err := t.metaBox(markup, pos)
			if err != nil {
				return err
			}
			pos = next

		case b == '|' && atLineStartIn:
			pos = t.metaPipe(markup, pos)

		case (b == '*' || b == '-') && atLineStartOut:
			next, err := t.list(markup, pos, out, depth)
			if err != nil {
				return err
			}
			pos = next

		case b == ':' && atLineStartOut:
			pos++

		case b == '=':
			next, truncated := t.heading(markup, pos, out)
			pos = next
			if truncated {
				return nil
			}

		case b == '\'' && apostropheRun(markup, pos) >= 2:
			pos = t.format(markup, pos)

		default:
			out.WriteByte(b)
			pos++
		}
	}
	return nil
}

func hasPrefixAt(b []byte, pos int, prefix string) bool {
	if pos+len(prefix) > len(b) {
		return false
	}
	return string(b[pos:pos+len(prefix)]) == prefix
}

func apostropheRun(b []byte, pos int) int {
	n := 0
	for pos+n < len(b) && b[pos+n] == '\'' {
		n++
	}
	return n
}

func (t *Textifier) format(markup []byte, pos int) int {
	return pos + apostropheRun(markup, pos)
}

func (t *Textifier) metaPipe(markup []byte, pos int) int {
	idx := bytes.IndexByte(markup[pos:], '\n')
	if idx < 0 {
		return len(markup)
	}
	return pos + idx + 1
}
