// Package gateway abstracts the chat-platform client behind an interface so
// lifecycle logic can be exercised without a live connection.
package gateway

import (
	"context"
	"time"
)

// ChannelKind distinguishes the channel shapes the bot works with.
type ChannelKind int

const (
	ChannelKindText ChannelKind = iota
	ChannelKindCategory
	ChannelKindOther
)

// Channel is the gateway-level view of a guild channel.
type Channel struct {
	ID       string
	Name     string
	Kind     ChannelKind
	ParentID string
}

// Role is the gateway-level view of a guild role.
type Role struct {
	ID   string
	Name string
}

// Message is the gateway-level view of a channel message.
type Message struct {
	ID          string
	Timestamp   time.Time
	AuthorID    string
	Author      string
	Bot         bool
	Content     string
	Attachments []string
}

// Permission enumerates the channel permissions the bot grants or denies.
type Permission int

const (
	PermissionViewChannel Permission = iota + 1
	PermissionSendMessages
)

// OverwriteKind distinguishes role and member permission overwrites.
type OverwriteKind int

const (
	OverwriteRole OverwriteKind = iota
	OverwriteMember
)

// Overwrite is one entry in a channel access-control list.
type Overwrite struct {
	ID    string
	Kind  OverwriteKind
	Allow []Permission
	Deny  []Permission
}

// ButtonStyle selects the rendering of a message button.
type ButtonStyle int

const (
	ButtonPrimary ButtonStyle = iota
	ButtonDanger
)

// Button is an interactive control attached to a message.
type Button struct {
	CustomID string
	Label    string
	Style    ButtonStyle
}

// Embed is a rich-content block attached to a message.
type Embed struct {
	Title       string
	Description string
	Color       int
}

// FilePayload is a file attachment for an outbound message.
type FilePayload struct {
	Name string
	Data []byte
}

// OutgoingMessage bundles the optional parts of an outbound message.
type OutgoingMessage struct {
	Content string
	Embed   *Embed
	Buttons []Button
	File    *FilePayload
}

// Gateway performs channel and message mutations against the chat platform.
// Every call is a network suspension point; implementations honor ctx.
type Gateway interface {
	GuildChannels(ctx context.Context, guildID string) ([]Channel, error)
	GuildRoles(ctx context.Context, guildID string) ([]Role, error)
	GuildName(ctx context.Context, guildID string) (string, error)
	CreateCategory(ctx context.Context, guildID, name string) (Channel, error)
	CreateTextChannel(ctx context.Context, guildID, name, parentID string, overwrites []Overwrite) (Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error
	SendMessage(ctx context.Context, channelID string, msg OutgoingMessage) error
	ChannelMessages(ctx context.Context, channelID string, limit int, beforeID string) ([]Message, error)
}
