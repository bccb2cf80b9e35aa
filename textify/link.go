package textify

import (
	"bytes"
	"errors"
	"strings"

	"github.com/vippsas/corpusforge/corpusstream"
)

// errUnbalancedBracket signals that markup[pos] starts a '[' with no
// matching close; the dispatcher copies one byte verbatim and continues
//.
var errUnbalancedBracket = errors.New("unbalanced [")

// link handles a construct starting at markup[pos] == '['. It scans the
// bracket nesting to find the enclosed content, splits off the visible
// label (the text after the last '|' at the content's top nesting level),
// recursively textifies the label into out, and elides the whole thing if
// the label turns out to be an interlanguage link (it contains a colon
// after textifying).
func (t *Textifier) link(markup []byte, pos int, out *bytes.Buffer, depth int) (next int, err error) {
	openCount := 0
	i := pos
	for i < len(markup) && markup[i] == '[' {
		openCount++
		i++
	}
	contentStart := i

	level := 0
	closeStart := -1
	for j := i; j < len(markup); j++ {
		switch markup[j] {
		case '[':
			level++
		case ']':
			if level == 0 {
				closeStart = j
			} else {
				level--
			}
		}
		if closeStart >= 0 {
			break
		}
	}
	if closeStart < 0 {
		return pos, errUnbalancedBracket
	}

	closeCount := 0
	k := closeStart
	for k < len(markup) && markup[k] == ']' && closeCount < openCount {
		closeCount++
		k++
	}
	content := markup[contentStart:closeStart]
	next = k

	// Find the last '|' at the content's own top nesting level: it
	// separates the link target/namespace prefix from the visible label.
	pipeIdx := -1
	lvl := 0
	for idx := 0; idx < len(content); idx++ {
		switch content[idx] {
		case '[':
			lvl++
		case ']':
			lvl--
		case '|':
			if lvl == 0 {
				pipeIdx = idx
			}
		}
	}

	var target, label []byte
	if pipeIdx >= 0 {
		target = content[:pipeIdx]
		label = content[pipeIdx+1:]
	} else {
		target = content
		label = content
	}

	isFileLink := containsFold(target, "File:") || containsFold(target, "Image:")
	if isFileLink {
		corpusstream.EnsureTrailingNewlines(out, 2)
	}

	preLen := out.Len()
	if err := t.textifyInto(label, out, depth+1); err != nil {
		return next, err
	}
	emitted := out.Bytes()[preLen:]
	if bytes.ContainsRune(emitted, ':') {
		// Interlanguage link ([[fr:Paris]]): elide entirely.
		out.Truncate(preLen)
	}

	if isFileLink {
		corpusstream.EnsureTrailingNewlines(out, 2)
	}

	return next, nil
}

func containsFold(b []byte, substr string) bool {
	return strings.Contains(strings.ToLower(string(b)), strings.ToLower(substr))
}
