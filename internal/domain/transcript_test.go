package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptEntryLine(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	t.Run("renders timestamp, author and content", func(t *testing.T) {
		entry := TranscriptEntry{Timestamp: ts, Author: "someuser", Content: "hello there"}
		assert.Equal(t, "[2024-05-01T12:30:00Z] someuser: hello there", entry.Line())
	})

	t.Run("appends attachment references", func(t *testing.T) {
		entry := TranscriptEntry{
			Timestamp:   ts,
			Author:      "someuser",
			Content:     "see attached",
			Attachments: []string{"https://cdn.example/a.png", "https://cdn.example/b.png"},
		}
		assert.Equal(t,
			"[2024-05-01T12:30:00Z] someuser: see attached [https://cdn.example/a.png https://cdn.example/b.png]",
			entry.Line())
	})
}

func TestRenderEntries(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	body := RenderEntries([]TranscriptEntry{
		{Timestamp: ts, Author: "a", Content: "first"},
		{Timestamp: ts.Add(time.Minute), Author: "b", Content: "second"},
	})
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestArchivedTranscript(t *testing.T) {
	doc := ArchivedTranscript{
		ChannelName: "ticket-someuser",
		ChannelID:   "111",
		GuildName:   "Test Guild",
		GuildID:     "222",
		ClosedByTag: "closer",
		ClosedByID:  "333",
		ClosedAt:    time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
		Body:        "[2024-05-01T12:30:00Z] someuser: hello there\n",
	}

	t.Run("render contains the fixed header block and the body", func(t *testing.T) {
		out := doc.Render()
		assert.Contains(t, out, "Transcript for #ticket-someuser (111)")
		assert.Contains(t, out, "Guild: Test Guild (222)")
		assert.Contains(t, out, "Closed by: closer (333)")
		assert.Contains(t, out, "Closed at: 2024-05-01T13:00:00Z")
		assert.True(t, strings.HasSuffix(out, "someuser: hello there\n"))
	})

	t.Run("filename derives from safe name, channel id and close time", func(t *testing.T) {
		assert.Equal(t, "transcript_ticket-someuser_111_1714568400.txt", doc.FileName())
	})
}
