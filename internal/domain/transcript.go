package domain

import (
	"fmt"
	"strings"
	"time"
)

// TranscriptEntry is one observed message in a ticket channel.
type TranscriptEntry struct {
	Timestamp   time.Time
	Author      string
	Content     string
	Attachments []string
}

// Line renders the entry as a single transcript line.
func (e TranscriptEntry) Line() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString("] ")
	b.WriteString(e.Author)
	b.WriteString(": ")
	b.WriteString(e.Content)
	if len(e.Attachments) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Attachments, " "))
		b.WriteString("]")
	}
	return b.String()
}

// RenderEntries renders entries in order, one line each.
func RenderEntries(entries []TranscriptEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// ArchivedTranscript is the final transcript document produced at close time.
// It is created once and immutable thereafter.
type ArchivedTranscript struct {
	ChannelName string
	ChannelID   string
	GuildName   string
	GuildID     string
	ClosedByTag string
	ClosedByID  string
	ClosedAt    time.Time
	Body        string
}

// Render produces the full document: a fixed header block followed by the body.
func (t ArchivedTranscript) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript for #%s (%s)\n", t.ChannelName, t.ChannelID)
	fmt.Fprintf(&b, "Guild: %s (%s)\n", t.GuildName, t.GuildID)
	fmt.Fprintf(&b, "Closed by: %s (%s)\n", t.ClosedByTag, t.ClosedByID)
	fmt.Fprintf(&b, "Closed at: %s\n", t.ClosedAt.UTC().Format(time.RFC3339))
	b.WriteString(strings.Repeat("-", 40))
	b.WriteByte('\n')
	b.WriteString(t.Body)
	return b.String()
}

// FileName derives the durable filename for the document.
func (t ArchivedTranscript) FileName() string {
	return fmt.Sprintf("transcript_%s_%s_%d.txt", SafeName(t.ChannelName), t.ChannelID, t.ClosedAt.Unix())
}
