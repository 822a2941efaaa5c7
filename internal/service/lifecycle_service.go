package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/gateway"
	"github.com/spec-kit/ticket-bot/internal/store"
	"github.com/spec-kit/ticket-bot/internal/transcript"
	"github.com/spec-kit/ticket-bot/internal/worker"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util/errorutil"
)

// Interaction control identifiers shared between the panel, the welcome
// message and the interaction dispatch table.
const (
	CreateTicketCustomID = "create_ticket"
	CloseTicketCustomID  = "close_ticket"
)

const historyPageSize = 100

// LifecycleService decides ticket existence, provisions channels and performs
// the close/archive/delete sequence.
//
// The duplicate-ticket check is a linear scan of the guild channel list and is
// inherently racy: two near-simultaneous open requests can both pass it before
// either channel exists. This is a known, accepted limitation of the workflow,
// not masked here.
type LifecycleService struct {
	gateway    gateway.Gateway
	store      store.GuildConfigStore
	recorder   transcript.Recorder
	archiver   transcript.Archiver
	scheduler  worker.Scheduler
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.TicketConfig
}

// LifecycleDependencies bundles collaborators for the lifecycle service.
type LifecycleDependencies struct {
	Gateway    gateway.Gateway
	Store      store.GuildConfigStore
	Recorder   transcript.Recorder
	Archiver   transcript.Archiver
	Scheduler  worker.Scheduler
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Ticket     config.TicketConfig
}

// OpenTicketInput describes a create-ticket request.
type OpenTicketInput struct {
	GuildID  string
	UserID   string
	Username string
}

// CloseTicketInput describes a close-ticket request. Acknowledge, when set,
// is invoked with the visible confirmation before teardown begins.
type CloseTicketInput struct {
	GuildID     string
	ChannelID   string
	ChannelName string
	CloserID    string
	CloserTag   string
	Acknowledge func(content string) error
}

// NewLifecycleService constructs the service.
func NewLifecycleService(deps LifecycleDependencies) *LifecycleService {
	return &LifecycleService{
		gateway:    deps.Gateway,
		store:      deps.Store,
		recorder:   deps.Recorder,
		archiver:   deps.Archiver,
		scheduler:  deps.Scheduler,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		cfg:        deps.Ticket,
	}
}

// OpenTicket provisions a private ticket channel for the requesting user.
// Partially-created resources are left in place on failure (a category created
// for a channel-create call that then fails is not rolled back).
func (s *LifecycleService) OpenTicket(ctx context.Context, in OpenTicketInput) (*domain.Ticket, error) {
	name := domain.TicketChannelName(in.Username)

	channels, err := s.gateway.GuildChannels(ctx, in.GuildID)
	if err != nil {
		return nil, apperrors.NewProvisioningFailure("unable to inspect guild channels", err)
	}
	for _, ch := range channels {
		if ch.Kind == gateway.ChannelKindText && ch.Name == name {
			return nil, apperrors.NewAlreadyOpen()
		}
	}

	category, err := s.resolveCategory(ctx, in.GuildID, channels)
	if err != nil {
		return nil, apperrors.NewProvisioningFailure("unable to resolve ticket category", err)
	}

	overwrites := s.buildOverwrites(ctx, in)

	ch, err := s.gateway.CreateTextChannel(ctx, in.GuildID, name, category.ID, overwrites)
	if err != nil {
		return nil, apperrors.NewProvisioningFailure("unable to create ticket channel", err)
	}

	if err := s.recorder.Create(ch.ID); err != nil {
		// replay at close time covers for a missing raw log
		s.logger.Warn("unable to start raw transcript log", zap.String("channel_id", ch.ID), zap.Error(err))
	}

	if err := s.sendWelcome(ctx, in, ch.ID); err != nil {
		return nil, apperrors.NewProvisioningFailure("unable to send welcome message", err)
	}

	ticket := &domain.Ticket{
		GuildID:     in.GuildID,
		UserID:      in.UserID,
		ChannelID:   ch.ID,
		ChannelName: ch.Name,
		State:       domain.TicketStateOpen,
		OpenedAt:    time.Now(),
	}
	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketOpened,
		GuildID:   in.GuildID,
		ChannelID: ch.ID,
		ActorID:   in.UserID,
		Payload: events.TicketOpenedPayload{
			ChannelName: ch.Name,
			UserID:      in.UserID,
		},
	})
	return ticket, nil
}

// CloseTicket acknowledges the request, assembles and archives the transcript,
// and schedules channel deletion after the grace delay. Archive failures are
// logged and never block teardown.
func (s *LifecycleService) CloseTicket(ctx context.Context, in CloseTicketInput) error {
	if !domain.IsTicketChannel(in.ChannelName) {
		return apperrors.NewNotATicketChannel()
	}

	if in.Acknowledge != nil {
		ack := fmt.Sprintf("🗑️ Closing this ticket in %d seconds...", int(s.cfg.CloseGrace().Seconds()))
		if err := in.Acknowledge(ack); err != nil {
			s.logger.Warn("close acknowledgment failed", zap.String("channel_id", in.ChannelID), zap.Error(err))
		}
	}

	body, usedRawLog := s.assembleTranscript(ctx, in.ChannelID)

	guildName, err := s.gateway.GuildName(ctx, in.GuildID)
	if err != nil {
		s.logger.Warn("unable to resolve guild name for transcript", zap.Error(err))
	}

	doc := domain.ArchivedTranscript{
		ChannelName: in.ChannelName,
		ChannelID:   in.ChannelID,
		GuildName:   guildName,
		GuildID:     in.GuildID,
		ClosedByTag: in.CloserTag,
		ClosedByID:  in.CloserID,
		ClosedAt:    time.Now(),
		Body:        body,
	}

	path, saveErr := s.archiver.Save(doc)
	if saveErr != nil {
		s.logger.Error("transcript archive failed, closing anyway", zap.String("channel_id", in.ChannelID), zap.Error(saveErr))
	}

	uploaded := s.uploadToArchiveChannel(ctx, in, doc)

	if saveErr == nil {
		s.publishEvent(ctx, events.Event{
			Type:      events.EventTranscriptArchived,
			GuildID:   in.GuildID,
			ChannelID: in.ChannelID,
			ActorID:   in.CloserID,
			Payload: events.TranscriptArchivedPayload{
				ChannelName: in.ChannelName,
				Path:        path,
				Uploaded:    uploaded,
			},
		})
	}

	if usedRawLog {
		if err := s.recorder.Remove(in.ChannelID); err != nil {
			s.logger.Warn("unable to remove raw transcript log", zap.String("channel_id", in.ChannelID), zap.Error(err))
		}
	}

	s.scheduler.Schedule(in.ChannelID, s.cfg.CloseGrace())

	s.publishEvent(ctx, events.Event{
		Type:      events.EventTicketClosed,
		GuildID:   in.GuildID,
		ChannelID: in.ChannelID,
		ActorID:   in.CloserID,
		Payload: events.TicketClosedPayload{
			ChannelName: in.ChannelName,
			CloserID:    in.CloserID,
			UsedRawLog:  usedRawLog,
		},
	})
	return nil
}

func (s *LifecycleService) resolveCategory(ctx context.Context, guildID string, channels []gateway.Channel) (gateway.Channel, error) {
	for _, ch := range channels {
		if ch.Kind == gateway.ChannelKindCategory && ch.Name == s.cfg.CategoryName {
			return ch, nil
		}
	}
	return s.gateway.CreateCategory(ctx, guildID, s.cfg.CategoryName)
}

func (s *LifecycleService) buildOverwrites(ctx context.Context, in OpenTicketInput) []gateway.Overwrite {
	overwrites := []gateway.Overwrite{
		{
			ID:   in.GuildID,
			Kind: gateway.OverwriteRole,
			Deny: []gateway.Permission{gateway.PermissionViewChannel},
		},
		{
			ID:    in.UserID,
			Kind:  gateway.OverwriteMember,
			Allow: []gateway.Permission{gateway.PermissionViewChannel, gateway.PermissionSendMessages},
		},
	}

	roles, err := s.gateway.GuildRoles(ctx, in.GuildID)
	if err != nil {
		// absence of the staff role is not an error; neither is failing to look
		s.logger.Warn("unable to list guild roles for staff grant", zap.Error(err))
		return overwrites
	}
	for _, role := range roles {
		if role.Name == s.cfg.StaffRoleName {
			overwrites = append(overwrites, gateway.Overwrite{
				ID:    role.ID,
				Kind:  gateway.OverwriteRole,
				Allow: []gateway.Permission{gateway.PermissionViewChannel, gateway.PermissionSendMessages},
			})
		}
	}
	return overwrites
}

func (s *LifecycleService) sendWelcome(ctx context.Context, in OpenTicketInput, channelID string) error {
	var record *domain.GuildConfig
	if cfg, ok := s.store.Get(in.GuildID); ok {
		record = &cfg
	}
	title, description := domain.WelcomeContent(record)

	return s.gateway.SendMessage(ctx, channelID, gateway.OutgoingMessage{
		Content: domain.WelcomeGreeting(in.UserID),
		Embed: &gateway.Embed{
			Title:       title,
			Description: description,
			Color:       embedColor,
		},
		Buttons: []gateway.Button{{
			CustomID: CloseTicketCustomID,
			Label:    "Close Ticket",
			Style:    gateway.ButtonDanger,
		}},
	})
}

// assembleTranscript prefers the raw per-channel log and falls back to
// paginated history replay. Replay failure yields a placeholder body so the
// close sequence can proceed.
func (s *LifecycleService) assembleTranscript(ctx context.Context, channelID string) (body string, usedRawLog bool) {
	if s.recorder.Has(channelID) {
		raw, err := s.recorder.Read(channelID)
		if err == nil {
			return raw, true
		}
		s.logger.Warn("raw transcript log unreadable, replaying history", zap.String("channel_id", channelID), zap.Error(err))
	}

	body, err := s.replayHistory(ctx, channelID)
	if err != nil {
		s.logger.Error("history replay failed", zap.String("channel_id", channelID), zap.Error(err))
		return "(transcript unavailable)\n", false
	}
	return body, false
}

// replayHistory walks channel history backward by last-seen message identity
// (newest page first) and renders the messages oldest-to-newest.
func (s *LifecycleService) replayHistory(ctx context.Context, channelID string) (string, error) {
	var pages [][]gateway.Message
	beforeID := ""
	for {
		msgs, err := s.gateway.ChannelMessages(ctx, channelID, historyPageSize, beforeID)
		if err != nil {
			return "", err
		}
		if len(msgs) == 0 {
			break
		}
		pages = append(pages, msgs)
		beforeID = msgs[len(msgs)-1].ID
		if len(msgs) < historyPageSize {
			break
		}
	}

	var entries []domain.TranscriptEntry
	for i := len(pages) - 1; i >= 0; i-- {
		page := pages[i]
		for j := len(page) - 1; j >= 0; j-- {
			msg := page[j]
			entries = append(entries, domain.TranscriptEntry{
				Timestamp:   msg.Timestamp,
				Author:      msg.Author,
				Content:     msg.Content,
				Attachments: msg.Attachments,
			})
		}
	}
	return domain.RenderEntries(entries), nil
}

// uploadToArchiveChannel forwards the document to the well-known archive
// channel when one exists; its absence skips the upload silently.
func (s *LifecycleService) uploadToArchiveChannel(ctx context.Context, in CloseTicketInput, doc domain.ArchivedTranscript) bool {
	channels, err := s.gateway.GuildChannels(ctx, in.GuildID)
	if err != nil {
		s.logger.Warn("unable to look up archive channel", zap.Error(err))
		return false
	}
	var archiveChannelID string
	for _, ch := range channels {
		if ch.Kind == gateway.ChannelKindText && ch.Name == s.cfg.ArchiveChannelName {
			archiveChannelID = ch.ID
			break
		}
	}
	if archiveChannelID == "" {
		return false
	}

	note := fmt.Sprintf("Transcript for #%s, closed by %s", in.ChannelName, in.CloserTag)
	err = s.gateway.SendMessage(ctx, archiveChannelID, gateway.OutgoingMessage{
		Content: note,
		File: &gateway.FilePayload{
			Name: doc.FileName(),
			Data: []byte(doc.Render()),
		},
	})
	if err != nil {
		s.logger.Error("transcript upload failed", zap.String("channel_id", in.ChannelID), zap.Error(err))
		return false
	}
	return true
}

func (s *LifecycleService) publishEvent(ctx context.Context, event events.Event) {
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
