package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// commandDefinitions declares the global slash commands.
func commandDefinitions() []*discordgo.ApplicationCommand {
	adminPerm := int64(discordgo.PermissionAdministrator)
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "setup-tickets",
			Description:              "Post the ticket panel in this channel (Admin only)",
			DefaultMemberPermissions: &adminPerm,
		},
		{
			Name:                     "set-welcome",
			Description:              "Set the welcome message for new tickets (Admin only)",
			DefaultMemberPermissions: &adminPerm,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Welcome description shown in new tickets",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Welcome title shown in new tickets",
				},
			},
		},
		{
			Name:                     "get-welcome",
			Description:              "Show the effective ticket welcome message (Admin only)",
			DefaultMemberPermissions: &adminPerm,
		},
	}
}

func (b *Bot) registerCommands() error {
	if b.appID == "" {
		return fmt.Errorf("application ID unavailable, cannot register commands")
	}
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.appID, "", commandDefinitions()); err != nil {
		return fmt.Errorf("register slash commands: %w", err)
	}
	b.logger.Info("slash commands registered")
	return nil
}
