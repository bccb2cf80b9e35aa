package collocation

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
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

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parseRecords(t *testing.T, out string) map[string]uint64 {
	t.Helper()
	result := make(map[string]uint64)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, '\t')
		require.True(t, idx >= 0, "malformed record: %q", line)
		n, err := strconv.ParseUint(line[:idx], 10, 64)
		require.NoError(t, err)
		result[line[idx+1:]] = n
	}
	return result
}

func TestSingleParagraphContextWindow(t *testing.T) {
	path := writeTempFile(t, "the cat sat\nthe dog ran\n")
	var out bytes.Buffer
	err := Run(path, Options{SplitSize: 1 << 20, Threads: 2}, &out, quietLog())
	require.NoError(t, err)

	records := parseRecords(t, out.String())
	require.Equal(t, uint64(2), records["the the"])
	require.Equal(t, uint64(2), records["the dog"])
	require.Equal(t, uint64(1), records["cat sat"])
	require.Equal(t, uint64(1), records["dog ran"])

	var total uint64
	for _, n := range records {
		total += n
	}
	require.Equal(t, uint64(30), total)
}

func TestMultipleSplitsConvergeToSameCounts(t *testing.T) {
	var paragraphs []string
	for i := 0; i < 40; i++ {
		paragraphs = append(paragraphs, "alpha beta gamma\ndelta epsilon zeta\n")
	}
	content := strings.Join(paragraphs, "\n")

	path := writeTempFile(t, content)

	var whole bytes.Buffer
	require.NoError(t, Run(path, Options{SplitSize: 1 << 20, Threads: 1}, &whole, quietLog()))

	var split bytes.Buffer
	require.NoError(t, Run(path, Options{SplitSize: 64, Threads: 3}, &split, quietLog()))

	require.Equal(t, parseRecords(t, whole.String()), parseRecords(t, split.String()))
}

func TestEmptyFileProducesNoRecords(t *testing.T) {
	path := writeTempFile(t, "")
	var out bytes.Buffer
	err := Run(path, Options{SplitSize: 1 << 20, Threads: 2}, &out, quietLog())
	require.NoError(t, err)
	require.Empty(t, out.String())
}
