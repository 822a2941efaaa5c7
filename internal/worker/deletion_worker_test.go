package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/gateway"
)

// stubGateway only implements the deletion path; the rest is unused here.
type stubGateway struct {
	deleted   chan string
	deleteErr error
}

func (s *stubGateway) GuildChannels(context.Context, string) ([]gateway.Channel, error) {
	return nil, nil
}

func (s *stubGateway) GuildRoles(context.Context, string) ([]gateway.Role, error) {
	return nil, nil
}

func (s *stubGateway) GuildName(context.Context, string) (string, error) {
	return "", nil
}

func (s *stubGateway) CreateCategory(context.Context, string, string) (gateway.Channel, error) {
	return gateway.Channel{}, nil
}

func (s *stubGateway) CreateTextChannel(context.Context, string, string, string, []gateway.Overwrite) (gateway.Channel, error) {
	return gateway.Channel{}, nil
}

func (s *stubGateway) DeleteChannel(_ context.Context, channelID string) error {
	s.deleted <- channelID
	return s.deleteErr
}

func (s *stubGateway) SendMessage(context.Context, string, gateway.OutgoingMessage) error {
	return nil
}

func (s *stubGateway) ChannelMessages(context.Context, string, int, string) ([]gateway.Message, error) {
	return nil, nil
}

func TestDeletionWorkerSchedule(t *testing.T) {
	t.Run("deletes the channel after the delay", func(t *testing.T) {
		gw := &stubGateway{deleted: make(chan string, 1)}
		w := NewDeletionWorker(gw, zap.NewNop())

		w.Schedule("chan-1", 10*time.Millisecond)

		select {
		case id := <-gw.deleted:
			assert.Equal(t, "chan-1", id)
		case <-time.After(time.Second):
			t.Fatal("scheduled deletion never fired")
		}
	})

	t.Run("swallows deletion failures", func(t *testing.T) {
		gw := &stubGateway{deleted: make(chan string, 1), deleteErr: errors.New("already gone")}
		w := NewDeletionWorker(gw, zap.NewNop())

		w.Schedule("chan-1", 10*time.Millisecond)

		select {
		case <-gw.deleted:
		case <-time.After(time.Second):
			t.Fatal("scheduled deletion never fired")
		}
	})
}
