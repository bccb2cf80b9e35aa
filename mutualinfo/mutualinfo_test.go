package mutualinfo

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fields struct {
	normalized, raw float64
	count           uint64
	w, v            string
}

func parseLines(t *testing.T, out string) []fields {
	t.Helper()
	var result []fields
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		require.Len(t, parts, 5)
		norm, err := strconv.ParseFloat(parts[0], 64)
		require.NoError(t, err)
		raw, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		count, err := strconv.ParseUint(parts[2], 10, 64)
		require.NoError(t, err)
		result = append(result, fields{norm, raw, count, parts[3], parts[4]})
	}
	return result
}

func TestScoringAndNormalization(t *testing.T) {
	unigrams := strings.NewReader("100\n10\tthe\n5\tcat\n3\tdog\n")
	collocations := strings.NewReader("4\tthe cat\n2\tthe dog\n1\tthe the\n")

	var out bytes.Buffer
	err := RunStream(unigrams, collocations, &out, Options{})
	require.NoError(t, err)

	rows := parseLines(t, out.String())
	require.Len(t, rows, 3)

	// Sorted descending by raw mi: cat (80), dog (~66.667), the (10, the norm).
	require.Equal(t, "cat", rows[0].v)
	require.InDelta(t, 80.0, rows[0].raw, 1e-6)
	require.InDelta(t, 8.0, rows[0].normalized, 1e-6)
	require.Equal(t, uint64(4), rows[0].count)

	require.Equal(t, "dog", rows[1].v)
	require.InDelta(t, 200.0/3.0, rows[1].raw, 1e-6)

	require.Equal(t, "the", rows[2].v)
	require.InDelta(t, 10.0, rows[2].raw, 1e-6)
	require.InDelta(t, 1.0, rows[2].normalized, 1e-6)

	for _, r := range rows {
		require.Equal(t, "the", r.w)
	}
}

func TestCountCutoffExcludesWords(t *testing.T) {
	unigrams := strings.NewReader("100\n10\tthe\n5\tcat\n1\trare\n")
	collocations := strings.NewReader("4\tthe cat\n1\tthe rare\n")

	var out bytes.Buffer
	err := RunStream(unigrams, collocations, &out, Options{CountCutoff: 2})
	require.NoError(t, err)

	rows := parseLines(t, out.String())
	require.Len(t, rows, 1)
	require.Equal(t, "cat", rows[0].v)
}

func TestUnknownCenterWordProducesNoOutput(t *testing.T) {
	unigrams := strings.NewReader("10\n5\tcat\n")
	collocations := strings.NewReader("1\tghost cat\n")

	var out bytes.Buffer
	err := RunStream(unigrams, collocations, &out, Options{})
	require.NoError(t, err)
	require.Empty(t, out.String())
}
