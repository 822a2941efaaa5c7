// Package transcript captures ticket conversations: a per-channel raw log
// appended as messages arrive, and the archived document produced at close.
package transcript

import (
	"os"
	"path/filepath"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

// Recorder maintains append-only raw logs keyed by channel identity. The raw
// log is an optimization over full-history replay at close time; absence of a
// log for a channel is never an error.
type Recorder interface {
	Create(channelID string) error
	Append(channelID string, entry domain.TranscriptEntry) error
	Read(channelID string) (string, error)
	Remove(channelID string) error
	Has(channelID string) bool
}

type fileRecorder struct {
	dir string
}

// NewRecorder stores raw logs under dir, one UTF-8 text file per channel.
func NewRecorder(dir string) Recorder {
	return &fileRecorder{dir: dir}
}

// Create starts an empty raw log for a channel.
func (r *fileRecorder) Create(channelID string) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(r.logPath(channelID), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Append writes one rendered line to the channel's raw log.
func (r *fileRecorder) Append(channelID string, entry domain.TranscriptEntry) error {
	f, err := os.OpenFile(r.logPath(channelID), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(entry.Line() + "\n"); err != nil {
		return err
	}
	return nil
}

// Read returns the raw log verbatim.
func (r *fileRecorder) Read(channelID string) (string, error) {
	data, err := os.ReadFile(r.logPath(channelID))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Remove deletes the raw log once it has been folded into an archive.
func (r *fileRecorder) Remove(channelID string) error {
	err := os.Remove(r.logPath(channelID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Has reports whether a raw log exists for the channel.
func (r *fileRecorder) Has(channelID string) bool {
	_, err := os.Stat(r.logPath(channelID))
	return err == nil
}

func (r *fileRecorder) logPath(channelID string) string {
	return filepath.Join(r.dir, channelID)
}
