package sentence

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/vippsas/corpusforge/corpusstream"
)

// RunStream reads \f-delimited plaintext articles from r, extracts
// sentences from each, and writes the result (\f-delimited) to w.
func RunStream(r io.Reader, w io.Writer, e *Extractor) error {
	reader := bufio.NewReaderSize(r, 64*1024)
	var article bytes.Buffer

	flush := func() error {
		if article.Len() == 0 {
			return nil
		}
		text := e.Extract(article.Bytes())
		article.Reset()
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		_, err := io.WriteString(w, corpusstream.ArticleSeparator+"\n")
		return err
	}

	for {
		line, readErr := reader.ReadString('\n')
		if strings.TrimRight(line, "\n") == corpusstream.ArticleSeparator {
			if err := flush(); err != nil {
				return err
			}
		} else if line != "" {
			article.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				article.WriteByte('\n')
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return readErr
		}
	}
	return flush()
}
