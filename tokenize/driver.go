package tokenize

import (
	"bufio"
	"io"
	"strings"

	"github.com/vippsas/corpusforge/corpusstream"
)

// RunStream reads \f-delimited sentence-per-line articles from r, tokenizes
// each line, and writes the result (\f-delimited) to w.
func RunStream(r io.Reader, w io.Writer, t *Tokenizer) error {
	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		line, readErr := reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if trimmed == corpusstream.ArticleSeparator {
			if _, err := io.WriteString(w, corpusstream.ArticleSeparator+"\n"); err != nil {
				return err
			}
		} else if line != "" {
			if _, err := io.WriteString(w, t.TokenizeLine([]byte(trimmed))+"\n"); err != nil {
				return err
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return readErr
		}
	}
	return nil
}
