package ngram

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"
)

// RunStream reads tokenized lines from r and writes the header-prefixed,
// globally sorted ngram-count stream to w.
func RunStream(r io.Reader, w io.Writer, opt Options, log logrus.FieldLogger) error {
	c := New(opt, log)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := c.AddLine(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return c.Close(w)
}
