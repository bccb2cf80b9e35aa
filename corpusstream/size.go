package corpusstream

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseByteSize parses the `-m LIMIT` argument shared by NGramCounter and
// CollocationCounter: a decimal number with an optional unit suffix
// b|k|m|g (block=512, KiB, MiB, GiB).
func ParseByteSize(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	unit := uint64(1)
	numeric := s
	switch s[len(s)-1] {
	case 'b', 'B':
		unit = 512
		numeric = s[:len(s)-1]
	case 'k', 'K':
		unit = 1024
		numeric = s[:len(s)-1]
	case 'm', 'M':
		unit = 1024 * 1024
		numeric = s[:len(s)-1]
	case 'g', 'G':
		unit = 1024 * 1024 * 1024
		numeric = s[:len(s)-1]
	}
	numeric = strings.TrimSpace(numeric)
	n, err := strconv.ParseUint(numeric, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n * unit, nil
}
