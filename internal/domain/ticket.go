package domain

import (
	"strings"
	"time"
)

// TicketState enumerates lifecycle states for tickets.
type TicketState string

const (
	TicketStateOpen    TicketState = "OPEN"
	TicketStateClosing TicketState = "CLOSING"
)

// TicketChannelPrefix marks channels backing a ticket.
const TicketChannelPrefix = "ticket-"

// Ticket is the conceptual entity backing one private support channel.
// It is derived from channel existence and the naming convention rather
// than stored as a standalone record.
type Ticket struct {
	GuildID     string
	UserID      string
	ChannelID   string
	ChannelName string
	State       TicketState
	OpenedAt    time.Time
}

// TicketChannelName derives the deterministic channel name for a user handle.
func TicketChannelName(handle string) string {
	return TicketChannelPrefix + normalizeHandle(handle)
}

// IsTicketChannel reports whether a channel name matches the ticket convention.
func IsTicketChannel(name string) bool {
	return strings.HasPrefix(name, TicketChannelPrefix)
}

// SafeName reduces a channel name to characters safe in a transcript filename.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// normalizeHandle lower-cases a user handle and replaces whitespace, matching
// the duplicate-check normalization used on creation.
func normalizeHandle(handle string) string {
	handle = strings.ToLower(strings.TrimSpace(handle))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return '-'
		}
		return r
	}, handle)
}

// UserMention renders a user mention for message content.
func UserMention(userID string) string {
	return "<@" + userID + ">"
}

// ChannelMention renders a channel mention for message content.
func ChannelMention(channelID string) string {
	return "<#" + channelID + ">"
}
