package textify

import "bytes"

// tag handles a construct starting at markup[pos] == '<' that is not a
// comment. It scans char by char, counting '<' as +1 and '>' as -1 nesting
// level, and considers the tag closed once it has seen a '/' while at level
// 1 (i.e. inside what looks like the matching closing tag) and the level
// has returned to 0. The whole span is discarded, except that <br>, <br/>,
// and <br /> emit a newline.
//
// This intentionally matches original_source's char-by-char state
// machine rather than a name-aware open/close tag matcher: a bare
// unclosed "<br>" (no trailing slash) never sets the closed flag, so the
// scan runs on until it happens across a subsequent "</...>"; that quirk
// is preserved rather than fixed.
func (t *Textifier) tag(markup []byte, pos int, out *bytes.Buffer) (next int, err error) {
	level := 0
	closed := false
	i := pos
	for i < len(markup) {
		switch markup[i] {
		case '<':
			level++
		case '>':
			level--
		case '/':
			closed = level == 1
		}
		i++
		if !(level > 0 || !closed) {
			break
		}
	}

	span := markup[pos:i]
	if bytes.Equal(span, []byte("<br>")) || bytes.Equal(span, []byte("<br/>")) || bytes.Equal(span, []byte("<br />")) {
		out.WriteByte('\n')
	}
	return i, nil
}
