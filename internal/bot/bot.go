// Package bot wires the discord session to the ticket workflow services. An
// explicit dispatch table keyed by interaction kind and identifier routes
// button presses and slash commands to handlers that return errors, which are
// reported back to the triggering user as ephemeral replies.
package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/gateway"
	"github.com/spec-kit/ticket-bot/internal/observability"
	"github.com/spec-kit/ticket-bot/internal/service"
	"github.com/spec-kit/ticket-bot/internal/transcript"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util/errorutil"
)

// Bot owns the gateway session and the interaction dispatch table.
type Bot struct {
	session   *discordgo.Session
	lifecycle *service.LifecycleService
	panel     *service.PanelService
	recorder  transcript.Recorder
	metrics   *observability.Metrics
	logger    *zap.Logger
	appID     string
	handlers  map[dispatchKey]interactionHandler
}

// Dependencies bundles collaborators for the bot.
type Dependencies struct {
	Lifecycle *service.LifecycleService
	Panel     *service.PanelService
	Recorder  transcript.Recorder
	Metrics   *observability.Metrics
	Logger    *zap.Logger
}

// New builds a bot over a configured session. Intents and event handlers are
// attached here; the session is opened by Start.
func New(session *discordgo.Session, cfg config.DiscordConfig, deps Dependencies) *Bot {
	b := &Bot{
		session:   session,
		lifecycle: deps.Lifecycle,
		panel:     deps.Panel,
		recorder:  deps.Recorder,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
		appID:     cfg.AppID,
	}
	b.handlers = map[dispatchKey]interactionHandler{
		{Kind: kindCommand, ID: "setup-tickets"}:                b.handleSetupTickets,
		{Kind: kindCommand, ID: "set-welcome"}:                  b.handleSetWelcome,
		{Kind: kindCommand, ID: "get-welcome"}:                  b.handleGetWelcome,
		{Kind: kindComponent, ID: service.CreateTicketCustomID}: b.handleCreateTicket,
		{Kind: kindComponent, ID: service.CloseTicketCustomID}:  b.handleCloseTicket,
	}

	intents := discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	if cfg.MessageContent {
		intents |= discordgo.IntentMessageContent
	}
	session.Identify.Intents = intents

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteractionCreate)
	session.AddHandler(b.onMessageCreate)
	return b
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return err
	}
	if b.appID == "" && b.session.State.User != nil {
		b.appID = b.session.State.User.ID
	}
	return b.registerCommands()
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("logged in", zap.String("user", r.User.Username))
}

func (b *Bot) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	key, ok := keyFor(i)
	if !ok {
		return
	}
	handler, ok := b.handlers[key]
	if !ok {
		return
	}
	b.metrics.RecordInteraction(key.Kind, key.ID)

	ctx := context.Background()
	if err := handler(ctx, i); err != nil {
		domainErr := apperrors.ToDomainError(err)
		b.metrics.RecordError(key.Kind, key.ID, domainErr.Code)
		b.logger.Warn("interaction failed",
			zap.String("kind", key.Kind),
			zap.String("id", key.ID),
			zap.String("code", domainErr.Code),
			zap.Error(err))
		b.replyEphemeral(i, apperrors.UserMessage(err))
	}
}

// onMessageCreate feeds the transcript recorder for channels with an active
// raw log, which is every open ticket channel.
func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || !b.recorder.Has(m.ChannelID) {
		return
	}
	msg := gateway.FromDiscordMessage(m.Message)
	entry := domain.TranscriptEntry{
		Timestamp:   msg.Timestamp,
		Author:      msg.Author,
		Content:     msg.Content,
		Attachments: msg.Attachments,
	}
	if err := b.recorder.Append(m.ChannelID, entry); err != nil {
		b.logger.Warn("transcript append failed", zap.String("channel_id", m.ChannelID), zap.Error(err))
	}
}

func (b *Bot) respond(i *discordgo.InteractionCreate, content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func (b *Bot) replyEphemeral(i *discordgo.InteractionCreate, content string) {
	if err := b.respond(i, content, true); err != nil {
		b.logger.Warn("interaction reply failed", zap.Error(err))
	}
}

func (b *Bot) channelName(channelID string) (string, error) {
	if ch, err := b.session.State.Channel(channelID); err == nil {
		return ch.Name, nil
	}
	ch, err := b.session.Channel(channelID)
	if err != nil {
		return "", err
	}
	return ch.Name, nil
}
