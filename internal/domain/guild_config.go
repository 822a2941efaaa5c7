package domain

// GuildConfig is the per-guild customization record for ticket welcome content.
// Absence of a record means the system-wide defaults apply.
type GuildConfig struct {
	WelcomeTitle       string `json:"welcomeTitle,omitempty"`
	WelcomeDescription string `json:"welcomeDescription,omitempty"`
}

// Default welcome content used when a guild has no configuration record.
const (
	DefaultWelcomeTitle       = "🎫 Support Ticket"
	DefaultWelcomeDescription = "A support team member will be with you shortly!"
)

// WelcomeContent resolves the effective welcome title and description for a
// guild. A nil config falls back entirely to the defaults; a config with only
// a description keeps the default title.
func WelcomeContent(cfg *GuildConfig) (title, description string) {
	title = DefaultWelcomeTitle
	description = DefaultWelcomeDescription
	if cfg == nil {
		return title, description
	}
	if cfg.WelcomeTitle != "" {
		title = cfg.WelcomeTitle
	}
	if cfg.WelcomeDescription != "" {
		description = cfg.WelcomeDescription
	}
	return title, description
}

// WelcomeGreeting renders the message line addressing the requester.
func WelcomeGreeting(userID string) string {
	return "Hello " + UserMention(userID) + ","
}
