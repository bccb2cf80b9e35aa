package tokenize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowercaseAndPunctuationDropped(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "hello world", tk.TokenizeLine([]byte("Hello, World!")))
}

func TestContractionApostropheKept(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "don't", tk.TokenizeLine([]byte("don't")))
}

func TestDigitCommaPreserved(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "1,234,567", tk.TokenizeLine([]byte("1,234,567")))
}

func TestApostropheAfterWhitespaceIsPunctuation(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "the quoted' word", tk.TokenizeLine([]byte("the 'quoted' word")))
}

func TestAbbreviationPassesThroughLowercased(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "u.s. is big", tk.TokenizeLine([]byte("U.S. is big")))
}

func TestKeptPunctuationSurroundedBySpaces(t *testing.T) {
	tk := New(Options{Keep: map[rune]bool{'?': true}})
	require.Equal(t, "really ?", tk.TokenizeLine([]byte("really?")))
}

func TestParensDroppedByDefault(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "a b", tk.TokenizeLine([]byte("a (ignored stuff) b")))
}

func TestParensKeptWhenRequested(t *testing.T) {
	tk := New(Options{Parens: true})
	require.Equal(t, "a ignored stuff b", tk.TokenizeLine([]byte("a (ignored stuff) b")))
}

func TestRunsOfWhitespaceCollapseToOneSpace(t *testing.T) {
	tk := New(Options{})
	require.Equal(t, "a b", tk.TokenizeLine([]byte("a   b")))
}
