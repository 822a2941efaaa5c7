package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandDefinitions(t *testing.T) {
	defs := commandDefinitions()
	require.Len(t, defs, 3)

	byName := make(map[string]*discordgo.ApplicationCommand, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	t.Run("all commands are admin-gated", func(t *testing.T) {
		for _, def := range defs {
			require.NotNil(t, def.DefaultMemberPermissions, def.Name)
			assert.Equal(t, int64(discordgo.PermissionAdministrator), *def.DefaultMemberPermissions, def.Name)
		}
	})

	t.Run("set-welcome options", func(t *testing.T) {
		def, ok := byName["set-welcome"]
		require.True(t, ok)
		require.Len(t, def.Options, 2)
		assert.Equal(t, "description", def.Options[0].Name)
		assert.True(t, def.Options[0].Required)
		assert.Equal(t, "title", def.Options[1].Name)
		assert.False(t, def.Options[1].Required)
	})

	t.Run("panel and readback commands exist", func(t *testing.T) {
		assert.Contains(t, byName, "setup-tickets")
		assert.Contains(t, byName, "get-welcome")
	})
}
