package textify

import "github.com/vippsas/corpusforge/corpusstream"

// metaBox handles a construct starting at markup[pos] with "{{" (a
// template invocation) or "{|" (a table). Both are balanced-nested `{...}`
// spans and are fully discarded.
func (t *Textifier) metaBox(markup []byte, pos int) (next int, err error) {
	level := 0
	i := pos
	for ; i < len(markup); i++ {
		switch markup[i] {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				return i + 1, nil
			}
		}
	}
	return pos, corpusstream.Error{
		Pos:     corpusstream.PosFromOffset(markup, pos),
		Message: "unterminated template or table",
	}
}
