package textify

import (
	"bytes"

	"github.com/vippsas/corpusforge/corpusstream"
)

// list handles a construct starting at markup[pos] with '*' or '-' at the
// start of a line. It skips the bullet run, recursively textifies the rest
// of the line (up to a newline, a comment, or end of input) as the item
// body, and brackets it with blank-line breaks.
func (t *Textifier) list(markup []byte, pos int, out *bytes.Buffer, depth int) (next int, err error) {
	corpusstream.EnsureTrailingNewlines(out, 2)

	i := pos
	for i < len(markup) {
		switch markup[i] {
		case '*', '-', ' ', '\t':
			i++
			continue
		}
		break
	}

	end := len(markup)
	if idx := bytes.IndexByte(markup[i:], '\n'); idx >= 0 {
		end = i + idx
	}
	if idx := bytes.Index(markup[i:end], []byte("<!--")); idx >= 0 {
		end = i + idx
	}

	if err := t.textifyInto(markup[i:end], out, depth+1); err != nil {
		return pos, err
	}
	corpusstream.EnsureTrailingNewlines(out, 2)
	return end, nil
}
