package textify

import (
	"bytes"
	"regexp"

	"github.com/vippsas/corpusforge/corpusstream"
)

// headingPattern matches `=+ text =+` with the same run length of '=' on
// both sides, e.g. "== References ==". Group 1 is the '=' run, group 2 the
// trimmed heading text.
var headingPattern = regexp.MustCompile(`^(=+)\s*(.+?)\s*(=+)`)

// truncatingHeadings are headings after which the rest of the article is
// boilerplate (reference lists, "see also" sections) rather than prose, and
// is dropped.
var truncatingHeadings = map[string]bool{
	"References":      true,
	"Footnotes":       true,
	"Related pages":   true,
	"Further reading": true,
}

// heading handles a construct starting at markup[pos] == '='. truncated
// reports whether the heading matched was a truncating heading: the caller
// stops processing the current markup slice entirely. A '=' that does not
// turn out to open a matched heading is not a parse error: like an
// unbalanced link bracket, it is copied through verbatim.
func (t *Textifier) heading(markup []byte, pos int, out *bytes.Buffer) (next int, truncated bool) {
	m := headingPattern.FindSubmatchIndex(markup[pos:])
	if m == nil {
		out.WriteByte(markup[pos])
		return pos + 1, false
	}
	open := markup[pos+m[2] : pos+m[3]]
	text := markup[pos+m[4] : pos+m[5]]
	closeRun := markup[pos+m[6] : pos+m[7]]
	if len(open) != len(closeRun) {
		out.WriteByte(markup[pos])
		return pos + 1, false
	}
	matchEnd := pos + m[1]

	if truncatingHeadings[string(text)] {
		return len(markup), true
	}

	if t.opt.IgnoreHeadings {
		return matchEnd, false
	}

	out.Write(text)
	corpusstream.EnsureTrailingNewlines(out, 2)
	return matchEnd, false
}
