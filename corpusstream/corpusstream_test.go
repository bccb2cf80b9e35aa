package corpusstream

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAndParseRecordRoundTrip(t *testing.T) {
	r := CountRecord{Count: 42, Key: "foo bar"}
	line := FormatRecord(r)
	require.Equal(t, "42\tfoo bar", line)

	parsed, err := ParseRecord(line)
	require.NoError(t, err)
	require.Equal(t, r, parsed)
}

func TestParseRecordRejectsMissingSeparator(t *testing.T) {
	_, err := ParseRecord("no-tab-here")
	require.Error(t, err)
}

func TestParseRecordRejectsNonNumericCount(t *testing.T) {
	_, err := ParseRecord("abc\tkey")
	require.Error(t, err)
}

func TestWriteAndReadHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, 123))
	require.Equal(t, "123\n", buf.String())

	total, err := ReadHeader(bufio.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, uint64(123), total)
}

func TestParseByteSizeSuffixes(t *testing.T) {
	cases := map[string]uint64{
		"10":  10,
		"10b": 10 * 512,
		"4k":  4 * 1024,
		"64m": 64 * 1024 * 1024,
		"1g":  1024 * 1024 * 1024,
	}
	for in, want := range cases {
		got, err := ParseByteSize(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseByteSizeRejectsEmpty(t *testing.T) {
	_, err := ParseByteSize("")
	require.Error(t, err)
}

func TestEnsureTrailingNewlinesAppendsShortfall(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("hello\n")
	EnsureTrailingNewlines(&buf, 2)
	require.Equal(t, "hello\n\n", buf.String())
}

func TestEnsureTrailingNewlinesNoopOnEmpty(t *testing.T) {
	var buf bytes.Buffer
	EnsureTrailingNewlines(&buf, 2)
	require.Equal(t, "", buf.String())
}

func TestEnsureTrailingNewlinesNoopWhenAlreadySatisfied(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("hello\n\n\n")
	EnsureTrailingNewlines(&buf, 2)
	require.Equal(t, "hello\n\n\n", buf.String())
}

func TestAtLineStart(t *testing.T) {
	require.True(t, AtLineStart(nil))
	require.True(t, AtLineStart([]byte("abc\n")))
	require.True(t, AtLineStart([]byte("abc\n  \t")))
	require.False(t, AtLineStart([]byte("abc")))
}

func TestPosFromOffset(t *testing.T) {
	buf := []byte("ab\ncd\nef")
	require.Equal(t, Pos{Line: 1, Col: 1}, PosFromOffset(buf, 0))
	require.Equal(t, Pos{Line: 2, Col: 1}, PosFromOffset(buf, 3))
	require.Equal(t, Pos{Line: 3, Col: 2}, PosFromOffset(buf, 7))
}

func TestErrorsRendersOneLinePerError(t *testing.T) {
	errs := Errors{Errors: []Error{
		{Pos: Pos{Line: 1, Col: 1}, Message: "first"},
		{Pos: Pos{Line: 2, Col: 3}, Message: "second"},
	}}
	rendered := errs.Error()
	require.True(t, strings.Contains(rendered, "first"))
	require.True(t, strings.Contains(rendered, "second"))
	require.True(t, strings.Contains(rendered, "2 article(s)"))
}

func TestIsAbbreviation(t *testing.T) {
	require.True(t, IsAbbreviation("U.S."))
	require.True(t, IsAbbreviation("e.g."))
	require.True(t, IsAbbreviation("Mr."))
	require.False(t, IsAbbreviation("hello"))
}
