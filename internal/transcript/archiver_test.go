package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

func TestArchiverSave(t *testing.T) {
	dir := t.TempDir()
	a := NewArchiver(dir)

	doc := domain.ArchivedTranscript{
		ChannelName: "ticket-someuser",
		ChannelID:   "111",
		GuildName:   "Test Guild",
		GuildID:     "222",
		ClosedByTag: "closer",
		ClosedByID:  "333",
		ClosedAt:    time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
		Body:        "line\n",
	}

	path, err := a.Save(doc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, doc.FileName()), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Render(), string(data))
}

func TestArchiverSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "transcripts")
	a := NewArchiver(dir)

	_, err := a.Save(domain.ArchivedTranscript{
		ChannelName: "ticket-x",
		ChannelID:   "1",
		ClosedAt:    time.Now(),
	})
	require.NoError(t, err)
}
