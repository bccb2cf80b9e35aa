package corpusstream

import "bytes"

// EnsureTrailingNewlines implements the newline(k) policy used by both
// Textifier and SentenceExtractor: it ensures buf ends
// with at least k '\n' bytes, appending the shortfall. It is a no-op if buf
// is empty, and a no-op if buf already ends with k or more newlines.
func EnsureTrailingNewlines(buf *bytes.Buffer, k int) {
	if buf.Len() == 0 {
		return
	}
	b := buf.Bytes()
	have := 0
	for have < len(b) && b[len(b)-1-have] == '\n' {
		have++
	}
	for ; have < k; have++ {
		buf.WriteByte('\n')
	}
}

// TrailingNonSpace returns the last byte written to buf that is not a space,
// tab, or carriage return, or 0 if buf contains only such bytes (or is
// empty). Used by "at line start" detection.
func TrailingNonSpace(buf []byte) byte {
	for i := len(buf) - 1; i >= 0; i-- {
		switch buf[i] {
		case ' ', '\t', '\r':
			continue
		default:
			return buf[i]
		}
	}
	return 0
}

// AtLineStart reports whether the next byte written to buf would start a
// new line: buf is empty, or the last non-space/tab/CR byte is '\n'.
func AtLineStart(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	return TrailingNonSpace(buf) == '\n'
}
