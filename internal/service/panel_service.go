package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/gateway"
	"github.com/spec-kit/ticket-bot/internal/store"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util/errorutil"
)

const embedColor = 0x2f3136

// PanelService handles the admin-gated panel and welcome-text commands.
type PanelService struct {
	gateway    gateway.Gateway
	store      store.GuildConfigStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// PanelDependencies bundles collaborators for the panel service.
type PanelDependencies struct {
	Gateway    gateway.Gateway
	Store      store.GuildConfigStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// PostPanelInput describes a setup-tickets invocation.
type PostPanelInput struct {
	GuildID   string
	ChannelID string
	ActorID   string
	IsAdmin   bool
}

// SetWelcomeInput describes a set-welcome invocation. Title is optional;
// Description is mandatory.
type SetWelcomeInput struct {
	GuildID     string
	ActorID     string
	IsAdmin     bool
	Title       string
	Description string
}

// NewPanelService constructs the service.
func NewPanelService(deps PanelDependencies) *PanelService {
	return &PanelService{
		gateway:    deps.Gateway,
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// PostPanel sends the ticket panel (embed plus the create control) into the
// invoking channel.
func (s *PanelService) PostPanel(ctx context.Context, in PostPanelInput) error {
	if !in.IsAdmin {
		return apperrors.NewPermissionDenied("only admins can run this command")
	}

	err := s.gateway.SendMessage(ctx, in.ChannelID, gateway.OutgoingMessage{
		Embed: &gateway.Embed{
			Title:       "🎫 Support Tickets",
			Description: "Need help? Click the button below to open a support ticket.",
			Color:       embedColor,
		},
		Buttons: []gateway.Button{{
			CustomID: CreateTicketCustomID,
			Label:    "Open Ticket",
			Style:    gateway.ButtonPrimary,
		}},
	})
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventPanelPosted,
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		ActorID:   in.ActorID,
		Payload:   events.PanelPostedPayload{ChannelID: in.ChannelID},
	})
	return nil
}

// SetWelcome upserts the per-guild welcome record. A configuration write
// failure is reported but the in-memory record stays effective until restart.
func (s *PanelService) SetWelcome(ctx context.Context, in SetWelcomeInput) (domain.GuildConfig, error) {
	if !in.IsAdmin {
		return domain.GuildConfig{}, apperrors.NewPermissionDenied("only admins can run this command")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return domain.GuildConfig{}, apperrors.NewValidationError("a welcome description is required", nil)
	}

	record := domain.GuildConfig{
		WelcomeTitle:       strings.TrimSpace(in.Title),
		WelcomeDescription: description,
	}
	if err := s.store.Upsert(in.GuildID, record); err != nil {
		s.logger.Warn("welcome update not persisted", zap.String("guild_id", in.GuildID), zap.Error(err))
	}
	stored, _ := s.store.Get(in.GuildID)

	s.publishEvent(ctx, events.Event{
		Type:    events.EventWelcomeUpdated,
		GuildID: in.GuildID,
		ActorID: in.ActorID,
		Payload: events.WelcomeUpdatedPayload{
			Title:       stored.WelcomeTitle,
			Description: stored.WelcomeDescription,
		},
	})
	return stored, nil
}

// Welcome returns the effective welcome content for a guild and whether a
// stored record backs it.
func (s *PanelService) Welcome(ctx context.Context, guildID string, isAdmin bool) (title, description string, stored bool, err error) {
	if !isAdmin {
		return "", "", false, apperrors.NewPermissionDenied("only admins can run this command")
	}
	var record *domain.GuildConfig
	if cfg, ok := s.store.Get(guildID); ok {
		record = &cfg
		stored = true
	}
	title, description = domain.WelcomeContent(record)
	return title, description, stored, nil
}

func (s *PanelService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
