package gateway

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// discordGateway implements Gateway over a live discordgo session.
type discordGateway struct {
	session *discordgo.Session
}

// NewDiscord wraps a discordgo session as a Gateway.
func NewDiscord(session *discordgo.Session) Gateway {
	return &discordGateway{session: session}
}

func (g *discordGateway) GuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	channels, err := g.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list guild channels: %w", err)
	}
	out := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		out = append(out, fromDiscordChannel(ch))
	}
	return out, nil
}

func (g *discordGateway) GuildRoles(ctx context.Context, guildID string) ([]Role, error) {
	roles, err := g.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list guild roles: %w", err)
	}
	out := make([]Role, 0, len(roles))
	for _, role := range roles {
		out = append(out, Role{ID: role.ID, Name: role.Name})
	}
	return out, nil
}

func (g *discordGateway) GuildName(ctx context.Context, guildID string) (string, error) {
	if guild, err := g.session.State.Guild(guildID); err == nil {
		return guild.Name, nil
	}
	guild, err := g.session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("fetch guild: %w", err)
	}
	return guild.Name, nil
}

func (g *discordGateway) CreateCategory(ctx context.Context, guildID, name string) (Channel, error) {
	ch, err := g.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return Channel{}, fmt.Errorf("create category %q: %w", name, err)
	}
	return fromDiscordChannel(ch), nil
}

func (g *discordGateway) CreateTextChannel(ctx context.Context, guildID, name, parentID string, overwrites []Overwrite) (Channel, error) {
	data := discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             parentID,
		PermissionOverwrites: toDiscordOverwrites(overwrites),
	}
	ch, err := g.session.GuildChannelCreateComplex(guildID, data, discordgo.WithContext(ctx))
	if err != nil {
		return Channel{}, fmt.Errorf("create text channel %q: %w", name, err)
	}
	return fromDiscordChannel(ch), nil
}

func (g *discordGateway) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := g.session.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete channel %s: %w", channelID, err)
	}
	return nil
}

func (g *discordGateway) SendMessage(ctx context.Context, channelID string, msg OutgoingMessage) error {
	send := &discordgo.MessageSend{Content: msg.Content}
	if msg.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{{
			Title:       msg.Embed.Title,
			Description: msg.Embed.Description,
			Color:       msg.Embed.Color,
		}}
	}
	if len(msg.Buttons) > 0 {
		row := discordgo.ActionsRow{}
		for _, button := range msg.Buttons {
			row.Components = append(row.Components, discordgo.Button{
				CustomID: button.CustomID,
				Label:    button.Label,
				Style:    toDiscordButtonStyle(button.Style),
			})
		}
		send.Components = []discordgo.MessageComponent{row}
	}
	if msg.File != nil {
		send.Files = []*discordgo.File{{
			Name:        msg.File.Name,
			ContentType: "text/plain; charset=utf-8",
			Reader:      bytes.NewReader(msg.File.Data),
		}}
	}
	if _, err := g.session.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send message to %s: %w", channelID, err)
	}
	return nil
}

func (g *discordGateway) ChannelMessages(ctx context.Context, channelID string, limit int, beforeID string) ([]Message, error) {
	messages, err := g.session.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch channel messages: %w", err)
	}
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, FromDiscordMessage(m))
	}
	return out, nil
}

// FromDiscordMessage converts a discordgo message into the gateway view.
func FromDiscordMessage(m *discordgo.Message) Message {
	msg := Message{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		Content:   m.Content,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.Author = m.Author.Username
		msg.Bot = m.Author.Bot
	}
	for _, att := range m.Attachments {
		msg.Attachments = append(msg.Attachments, att.URL)
	}
	return msg
}

func fromDiscordChannel(ch *discordgo.Channel) Channel {
	kind := ChannelKindOther
	switch ch.Type {
	case discordgo.ChannelTypeGuildText:
		kind = ChannelKindText
	case discordgo.ChannelTypeGuildCategory:
		kind = ChannelKindCategory
	}
	return Channel{ID: ch.ID, Name: ch.Name, Kind: kind, ParentID: ch.ParentID}
}

func toDiscordOverwrites(overwrites []Overwrite) []*discordgo.PermissionOverwrite {
	out := make([]*discordgo.PermissionOverwrite, 0, len(overwrites))
	for _, ow := range overwrites {
		kind := discordgo.PermissionOverwriteTypeRole
		if ow.Kind == OverwriteMember {
			kind = discordgo.PermissionOverwriteTypeMember
		}
		out = append(out, &discordgo.PermissionOverwrite{
			ID:    ow.ID,
			Type:  kind,
			Allow: toDiscordPermissionBits(ow.Allow),
			Deny:  toDiscordPermissionBits(ow.Deny),
		})
	}
	return out
}

func toDiscordPermissionBits(perms []Permission) int64 {
	var bits int64
	for _, perm := range perms {
		switch perm {
		case PermissionViewChannel:
			bits |= discordgo.PermissionViewChannel
		case PermissionSendMessages:
			bits |= discordgo.PermissionSendMessages
		}
	}
	return bits
}

func toDiscordButtonStyle(style ButtonStyle) discordgo.ButtonStyle {
	if style == ButtonDanger {
		return discordgo.DangerButton
	}
	return discordgo.PrimaryButton
}
