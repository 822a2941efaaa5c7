package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketOpened       EventType = "ticket_opened"
	EventTicketClosed       EventType = "ticket_closed"
	EventTranscriptArchived EventType = "transcript_archived"
	EventPanelPosted        EventType = "panel_posted"
	EventWelcomeUpdated     EventType = "welcome_updated"
)

// Event represents a workflow event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	GuildID   string      `json:"guild_id"`
	ChannelID string      `json:"channel_id,omitempty"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	ChannelName string `json:"channel_name"`
	UserID      string `json:"user_id"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	ChannelName string `json:"channel_name"`
	CloserID    string `json:"closer_id"`
	UsedRawLog  bool   `json:"used_raw_log"`
}

// TranscriptArchivedPayload payload.
type TranscriptArchivedPayload struct {
	ChannelName string `json:"channel_name"`
	Path        string `json:"path"`
	Uploaded    bool   `json:"uploaded"`
}

// PanelPostedPayload payload.
type PanelPostedPayload struct {
	ChannelID string `json:"channel_id"`
}

// WelcomeUpdatedPayload payload.
type WelcomeUpdatedPayload struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}
