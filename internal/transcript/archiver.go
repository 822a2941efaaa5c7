package transcript

import (
	"os"
	"path/filepath"

	"github.com/spec-kit/ticket-bot/internal/domain"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util/errorutil"
)

// Archiver writes finished transcript documents to the durable sink.
type Archiver interface {
	Save(doc domain.ArchivedTranscript) (string, error)
}

type fileArchiver struct {
	dir string
}

// NewArchiver stores transcript documents under dir.
func NewArchiver(dir string) Archiver {
	return &fileArchiver{dir: dir}
}

// Save renders the document and writes it once; the file is never rewritten.
func (a *fileArchiver) Save(doc domain.ArchivedTranscript) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", apperrors.NewArchiveFailure("unable to create transcript directory", err)
	}
	path := filepath.Join(a.dir, doc.FileName())
	if err := os.WriteFile(path, []byte(doc.Render()), 0o644); err != nil {
		return "", apperrors.NewArchiveFailure("unable to write transcript document", err)
	}
	return path, nil
}
