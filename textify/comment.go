package textify

import "github.com/vippsas/corpusforge/corpusstream"

// comment handles a construct starting at markup[pos] with "<!--" and
// skips to the matching "-->". Unlike tag, a comment has no nested form.
func (t *Textifier) comment(markup []byte, pos int) (next int, err error) {
	for i := pos + 4; i+3 <= len(markup); i++ {
		if markup[i] == '-' && markup[i+1] == '-' && markup[i+2] == '>' {
			return i + 3, nil
		}
	}
	return pos, corpusstream.Error{
		Pos:     corpusstream.PosFromOffset(markup, pos),
		Message: "unterminated comment",
	}
}
