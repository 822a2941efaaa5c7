package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/spec-kit/ticket-bot/internal/gateway"
)

// fakeGateway is an in-memory Gateway for exercising lifecycle logic without
// a live connection.
type fakeGateway struct {
	mu         sync.Mutex
	nextID     int
	channels   map[string][]gateway.Channel
	roles      map[string][]gateway.Role
	guildNames map[string]string
	history    map[string][]gateway.Message // newest first, as the platform returns them
	sent       map[string][]gateway.OutgoingMessage
	deleted    []string

	created []createdChannel

	channelsErr      error
	rolesErr         error
	createChannelErr error
	sendErr          error
}

type createdChannel struct {
	GuildID    string
	Name       string
	ParentID   string
	Kind       gateway.ChannelKind
	Overwrites []gateway.Overwrite
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		nextID:     100,
		channels:   make(map[string][]gateway.Channel),
		roles:      make(map[string][]gateway.Role),
		guildNames: make(map[string]string),
		history:    make(map[string][]gateway.Message),
		sent:       make(map[string][]gateway.OutgoingMessage),
	}
}

func (f *fakeGateway) addChannel(guildID string, ch gateway.Channel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels[guildID] = append(f.channels[guildID], ch)
}

func (f *fakeGateway) allocID() string {
	f.nextID++
	return strconv.Itoa(f.nextID)
}

func (f *fakeGateway) GuildChannels(_ context.Context, guildID string) ([]gateway.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.channelsErr != nil {
		return nil, f.channelsErr
	}
	return append([]gateway.Channel{}, f.channels[guildID]...), nil
}

func (f *fakeGateway) GuildRoles(_ context.Context, guildID string) ([]gateway.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rolesErr != nil {
		return nil, f.rolesErr
	}
	return append([]gateway.Role{}, f.roles[guildID]...), nil
}

func (f *fakeGateway) GuildName(_ context.Context, guildID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.guildNames[guildID]
	if !ok {
		return "", errors.New("unknown guild")
	}
	return name, nil
}

func (f *fakeGateway) CreateCategory(_ context.Context, guildID, name string) (gateway.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := gateway.Channel{ID: f.allocID(), Name: name, Kind: gateway.ChannelKindCategory}
	f.channels[guildID] = append(f.channels[guildID], ch)
	f.created = append(f.created, createdChannel{GuildID: guildID, Name: name, Kind: gateway.ChannelKindCategory})
	return ch, nil
}

func (f *fakeGateway) CreateTextChannel(_ context.Context, guildID, name, parentID string, overwrites []gateway.Overwrite) (gateway.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createChannelErr != nil {
		return gateway.Channel{}, f.createChannelErr
	}
	ch := gateway.Channel{ID: f.allocID(), Name: name, Kind: gateway.ChannelKindText, ParentID: parentID}
	f.channels[guildID] = append(f.channels[guildID], ch)
	f.created = append(f.created, createdChannel{
		GuildID:    guildID,
		Name:       name,
		ParentID:   parentID,
		Kind:       gateway.ChannelKindText,
		Overwrites: overwrites,
	})
	return ch, nil
}

func (f *fakeGateway) DeleteChannel(_ context.Context, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, channelID)
	return nil
}

func (f *fakeGateway) SendMessage(_ context.Context, channelID string, msg gateway.OutgoingMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent[channelID] = append(f.sent[channelID], msg)
	return nil
}

func (f *fakeGateway) ChannelMessages(_ context.Context, channelID string, limit int, beforeID string) ([]gateway.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.history[channelID]
	start := 0
	if beforeID != "" {
		start = len(msgs)
		for i, m := range msgs {
			if m.ID == beforeID {
				start = i + 1
				break
			}
		}
	}
	if start >= len(msgs) {
		return nil, nil
	}
	end := start + limit
	if end > len(msgs) {
		end = len(msgs)
	}
	return append([]gateway.Message{}, msgs[start:end]...), nil
}

func (f *fakeGateway) createdTextChannels() []createdChannel {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []createdChannel
	for _, ch := range f.created {
		if ch.Kind == gateway.ChannelKindText {
			out = append(out, ch)
		}
	}
	return out
}

func (f *fakeGateway) createdCategories() []createdChannel {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []createdChannel
	for _, ch := range f.created {
		if ch.Kind == gateway.ChannelKindCategory {
			out = append(out, ch)
		}
	}
	return out
}

func (f *fakeGateway) sentTo(channelID string) []gateway.OutgoingMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gateway.OutgoingMessage{}, f.sent[channelID]...)
}

// fakeScheduler records deferred deletion requests instead of arming timers.
type fakeScheduler struct {
	mu    sync.Mutex
	calls []scheduledDeletion
}

type scheduledDeletion struct {
	ChannelID string
	Delay     time.Duration
}

func (s *fakeScheduler) Schedule(channelID string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, scheduledDeletion{ChannelID: channelID, Delay: delay})
}

func (s *fakeScheduler) scheduled() []scheduledDeletion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scheduledDeletion{}, s.calls...)
}
