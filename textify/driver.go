package textify

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/corpusforge/corpusstream"
)

// RunStream reads \f-delimited MediaWiki articles from r, textifies each,
// and writes plaintext articles (each terminated by a line consisting
// solely of \f) to w. A parse error is fatal to the offending article only:
// it is logged and the article is dropped.
func RunStream(r io.Reader, w io.Writer, t *Textifier, log logrus.FieldLogger) error {
	reader := bufio.NewReaderSize(r, 64*1024)
	var article bytes.Buffer
	articleIndex := 0

	flush := func() error {
		if article.Len() == 0 {
			return nil
		}
		articleIndex++
		text, err := t.Textify(article.Bytes())
		article.Reset()
		if err != nil {
			var perr corpusstream.Error
			if errors.As(err, &perr) {
				log.WithField("article", articleIndex).WithField("pos", perr.Pos.String()).
					Warnf("skipping article: %s", perr.Message)
			} else {
				log.WithField("article", articleIndex).WithError(err).Warn("skipping article")
			}
			return nil
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		if !strings.HasSuffix(text, "\n") {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, corpusstream.ArticleSeparator+"\n")
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
