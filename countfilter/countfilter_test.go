package countfilter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterDropsBelowThresholdAndPreservesOrder(t *testing.T) {
	in := strings.NewReader("100\n2\tapple\n10\tbanana\n1\tcherry\n7\tdate\n")
	var out bytes.Buffer
	err := RunStream(in, &out, Options{Threshold: 5})
	require.NoError(t, err)
	require.Equal(t, "17\n10\tbanana\n7\tdate\n", out.String())
}

func TestFilterZeroThresholdKeepsAll(t *testing.T) {
	in := strings.NewReader("3\n1\ta\n1\tb\n1\tc\n")
	var out bytes.Buffer
	err := RunStream(in, &out, Options{Threshold: 0})
	require.NoError(t, err)
	require.Equal(t, "3\n1\ta\n1\tb\n1\tc\n", out.String())
}

func TestFilterMalformedRecordSkipped(t *testing.T) {
	in := strings.NewReader("5\nnot-a-record\n5\tgood\n")
	var out bytes.Buffer
	err := RunStream(in, &out, Options{Threshold: 1})
	require.NoError(t, err)
	require.Equal(t, "5\n5\tgood\n", out.String())
}
