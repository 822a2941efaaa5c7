package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the bot.
type Config struct {
	App          AppConfig
	Discord      DiscordConfig
	Ticket       TicketConfig
	Storage      StorageConfig
	Logger       LoggerConfig
	Notification NotificationConfig
}

// AppConfig controls the keep-alive HTTP surface.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// DiscordConfig holds gateway connection values.
type DiscordConfig struct {
	Token          string
	AppID          string
	MessageContent bool
}

// TicketConfig defines the well-known names and timing of the ticket workflow.
type TicketConfig struct {
	CategoryName       string
	StaffRoleName      string
	ArchiveChannelName string
	CloseGraceSeconds  int
}

// StorageConfig holds on-disk state locations.
type StorageConfig struct {
	DataDir       string
	TranscriptDir string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "ticket-bot"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "8080"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Discord: DiscordConfig{
			Token:          token,
			AppID:          os.Getenv("DISCORD_APP_ID"),
			MessageContent: getEnvAsBool("DISCORD_MESSAGE_CONTENT", true),
		},
		Ticket: TicketConfig{
			CategoryName:       getEnv("TICKET_CATEGORY_NAME", "Tickets"),
			StaffRoleName:      getEnv("STAFF_ROLE_NAME", "Support"),
			ArchiveChannelName: getEnv("ARCHIVE_CHANNEL_NAME", "transcripts"),
			CloseGraceSeconds:  getEnvAsInt("CLOSE_GRACE_SECONDS", 5),
		},
		Storage: StorageConfig{
			DataDir:       getEnv("DATA_DIR", "data"),
			TranscriptDir: getEnv("TRANSCRIPT_DIR", "transcripts"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// CloseGrace returns the delay between close acknowledgment and channel removal.
func (t TicketConfig) CloseGrace() time.Duration {
	if t.CloseGraceSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(t.CloseGraceSeconds) * time.Second
}

// GuildConfigPath returns the location of the guild configuration document.
func (s StorageConfig) GuildConfigPath() string {
	return filepath.Join(s.DataDir, "guild_config.json")
}

// RawLogDir returns the directory holding per-channel raw transcript logs.
func (s StorageConfig) RawLogDir() string {
	return filepath.Join(s.TranscriptDir, "raw")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
