package ngram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLog() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(bytes.NewBuffer(nil))
	return l
}

func TestBigramOnRepeatingSequence(t *testing.T) {
	var out bytes.Buffer
	err := RunStream(strings.NewReader("a b a b a\n"), &out, Options{N: 2}, quietLog())
	require.NoError(t, err)
	want := "6\n" +
		"1\t<s> a\n" +
		"1\ta </s>\n" +
		"2\ta b\n" +
		"2\tb a\n"
	require.Equal(t, want, out.String())
}

func TestEmptyInputEmitsZeroHeader(t *testing.T) {
	var out bytes.Buffer
	err := RunStream(strings.NewReader(""), &out, Options{N: 2}, quietLog())
	require.NoError(t, err)
	require.Equal(t, "0\n", out.String())
}

func TestOutputStrictlyIncreasingKeys(t *testing.T) {
	var out bytes.Buffer
	err := RunStream(strings.NewReader("the cat sat on the mat\nthe dog sat on the rug\n"), &out, Options{N: 2}, quietLog())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	var prevKey string
	for _, line := range lines[1:] {
		idx := strings.IndexByte(line, '\t')
		require.True(t, idx >= 0)
		key := line[idx+1:]
		require.True(t, prevKey < key, "keys must be strictly increasing: %q then %q", prevKey, key)
		prevKey = key
	}
}

func TestSmallChunkSizeForcesSpill(t *testing.T) {
	// A tiny MaxChunkSize forces the accumulator to spill after nearly
	// every line, exercising the chunk-file merge path instead of the
	// single-chunk shortcut.
	var direct, chunked bytes.Buffer
	input := "a b a b a\nc d c d c\ne f e f e\n"
	require.NoError(t, RunStream(strings.NewReader(input), &direct, Options{N: 2}, quietLog()))
	require.NoError(t, RunStream(strings.NewReader(input), &chunked, Options{N: 2, MaxChunkSize: 3}, quietLog()))
	require.Equal(t, direct.String(), chunked.String())
}
