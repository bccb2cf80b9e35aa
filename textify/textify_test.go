package textify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterlanguageLinkElided(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("[[fr:Paris]]"))
	require.NoError(t, err)
	require.Empty(t, strings.TrimSpace(out))
}

func TestNestedLinkLabel(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("[[File:foo.png|see [[bar]] here]]"))
	require.NoError(t, err)
	trimmed := strings.Trim(out, "\n")
	require.Equal(t, "see bar here", trimmed)
	// The leading blank-line break is a no-op here because it is the very
	// first thing written to an empty buffer is
	// defined as a no-op on empty output); the trailing break is not.
	require.True(t, strings.HasSuffix(out, "\n\n"))
}

func TestHeadingCutsReferences(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("foo\n== References ==\nbar"))
	require.NoError(t, err)
	require.Equal(t, "foo", strings.TrimRight(out, "\n"))
}

func TestHeadingKept(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("== History ==\nSome text."))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "History\n\n"))
	require.Contains(t, out, "Some text.")
}

func TestIgnoreHeadingsSkipsSpan(t *testing.T) {
	tf := New(Options{IgnoreHeadings: true})
	out, err := tf.Textify([]byte("== History ==\nSome text."))
	require.NoError(t, err)
	require.NotContains(t, out, "History")
	require.Contains(t, out, "Some text.")
}

func TestCommentStripped(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("a<!-- hidden -->b"))
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestBrTagEmitsNewline(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("a<br/>b"))
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestGenericTagDiscarded(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("a<ref name=\"x\">cite</ref>b"))
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestTemplateDiscarded(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("a{{cite web|url=x}}b"))
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestFormatMarkersErased(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("''italic'' and '''bold'''"))
	require.NoError(t, err)
	require.Equal(t, "italic and bold", out)
}

func TestMetaPipeDropsLine(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("a\n|style=x\nb"))
	require.NoError(t, err)
	require.Equal(t, "a\nb", out)
}

func TestListItemBracketed(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("* item one\nrest"))
	require.NoError(t, err)
	require.Contains(t, out, "item one")
}

func TestUnbalancedLinkCopiesByte(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("a [not closed"))
	require.NoError(t, err)
	require.Equal(t, "a [not closed", out)
}

func TestUnmatchedHeadingEqualsCopiesByte(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte("= unterminated heading"))
	require.NoError(t, err)
	require.Equal(t, "= unterminated heading", out)
}

func TestColonAtLineStartSkipsOneByte(t *testing.T) {
	tf := New(Options{})
	out, err := tf.Textify([]byte(":indented text"))
	require.NoError(t, err)
	require.Equal(t, "indented text", out)
}
