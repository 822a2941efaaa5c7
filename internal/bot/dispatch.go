package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

const (
	kindCommand   = "command"
	kindComponent = "component"
)

// dispatchKey identifies an interaction by kind and identifier.
type dispatchKey struct {
	Kind string
	ID   string
}

// interactionHandler runs one interaction to completion.
type interactionHandler func(ctx context.Context, i *discordgo.InteractionCreate) error

// keyFor derives the dispatch key for an inbound interaction.
func keyFor(i *discordgo.InteractionCreate) (dispatchKey, bool) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return dispatchKey{Kind: kindCommand, ID: i.ApplicationCommandData().Name}, true
	case discordgo.InteractionMessageComponent:
		return dispatchKey{Kind: kindComponent, ID: i.MessageComponentData().CustomID}, true
	}
	return dispatchKey{}, false
}

// interactionUser resolves the triggering user for guild and DM interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// isAdmin reports whether the triggering member carries the administrator
// permission bit.
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}
