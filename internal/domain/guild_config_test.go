package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeContent(t *testing.T) {
	t.Run("no record falls back to defaults verbatim", func(t *testing.T) {
		title, description := WelcomeContent(nil)
		assert.Equal(t, DefaultWelcomeTitle, title)
		assert.Equal(t, DefaultWelcomeDescription, description)
	})

	t.Run("description-only record keeps the default title", func(t *testing.T) {
		title, description := WelcomeContent(&GuildConfig{WelcomeDescription: "We usually reply within a day."})
		assert.Equal(t, DefaultWelcomeTitle, title)
		assert.Equal(t, "We usually reply within a day.", description)
	})

	t.Run("full record overrides both fields", func(t *testing.T) {
		title, description := WelcomeContent(&GuildConfig{
			WelcomeTitle:       "Help Desk",
			WelcomeDescription: "Describe your problem.",
		})
		assert.Equal(t, "Help Desk", title)
		assert.Equal(t, "Describe your problem.", description)
	})
}

func TestWelcomeGreeting(t *testing.T) {
	assert.Equal(t, "Hello <@42>,", WelcomeGreeting("42"))
}
