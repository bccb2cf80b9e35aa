package corpusstream

import "regexp"

// AbbrevPattern recognizes an abbreviation like "e.g.", "i.e.", or "U.S." so
// that SentenceExtractor does not split a sentence there, and so Tokenizer
// emits it unchanged except for case folding: a run of single-letter-dot
// or Capital-lower-dot groups, optionally followed by one more word-dot
// pair.
var AbbrevPattern = regexp.MustCompile(`^((\w\.)|([A-Z][a-z]\.))+(\s*\w\.?)?(\s|$)+`)

// IsAbbreviation reports whether tail (typically the output tail immediately
// before a candidate sentence-terminating '.') matches an abbreviation
// pattern, or is a short token (fewer than 5 characters) ending in '.'.
func IsAbbreviation(tail string) bool {
	if AbbrevPattern.MatchString(tail) {
		return true
	}
	if len(tail) > 0 && len(tail) < 5 && tail[len(tail)-1] == '.' {
		return true
	}
	return false
}
