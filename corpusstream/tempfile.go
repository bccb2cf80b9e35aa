package corpusstream

import (
	"os"

	"github.com/gofrs/uuid"
)

// CreateTempFile creates an anonymous chunk file named with a v4 UUID
// rather than os.CreateTemp's counter-based suffix, so that concurrent
// collocation split/merge workers never collide on a name without
// sharing a counter.
func CreateTempFile(dir, prefix string) (*os.File, error) {
	return os.CreateTemp(dir, prefix+uuid.Must(uuid.NewV4()).String()+"-*")
}
