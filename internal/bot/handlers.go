package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/service"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util/errorutil"
)

func (b *Bot) handleSetupTickets(ctx context.Context, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	err := b.panel.PostPanel(ctx, service.PostPanelInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		ActorID:   user.ID,
		IsAdmin:   isAdmin(i),
	})
	if err != nil {
		return err
	}
	return b.respond(i, "✅ Ticket panel created!", true)
}

func (b *Bot) handleSetWelcome(ctx context.Context, i *discordgo.InteractionCreate) error {
	var title, description string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "description":
			description = opt.StringValue()
		case "title":
			title = opt.StringValue()
		}
	}

	user := interactionUser(i)
	_, err := b.panel.SetWelcome(ctx, service.SetWelcomeInput{
		GuildID:     i.GuildID,
		ActorID:     user.ID,
		IsAdmin:     isAdmin(i),
		Title:       title,
		Description: description,
	})
	if err != nil {
		return err
	}
	return b.respond(i, "✅ Welcome message updated!", true)
}

func (b *Bot) handleGetWelcome(ctx context.Context, i *discordgo.InteractionCreate) error {
	title, description, stored, err := b.panel.Welcome(ctx, i.GuildID, isAdmin(i))
	if err != nil {
		return err
	}
	source := "custom"
	if !stored {
		source = "default"
	}
	return b.respond(i, fmt.Sprintf("Welcome message (%s):\n**%s**\n%s", source, title, description), true)
}

func (b *Bot) handleCreateTicket(ctx context.Context, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	ticket, err := b.lifecycle.OpenTicket(ctx, service.OpenTicketInput{
		GuildID:  i.GuildID,
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return err
	}
	return b.respond(i, "✅ Ticket created: "+domain.ChannelMention(ticket.ChannelID), true)
}

func (b *Bot) handleCloseTicket(ctx context.Context, i *discordgo.InteractionCreate) error {
	name, err := b.channelName(i.ChannelID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	user := interactionUser(i)
	return b.lifecycle.CloseTicket(ctx, service.CloseTicketInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		ChannelName: name,
		CloserID:    user.ID,
		CloserTag:   user.Username,
		Acknowledge: func(content string) error {
			return b.respond(i, content, false)
		},
	})
}
