package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	t.Run("delivers to subscribed handlers", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var seen []Event
		d.Subscribe(EventTicketOpened, func(_ context.Context, e Event) error {
			seen = append(seen, e)
			return nil
		})

		err := d.Publish(context.Background(), Event{Type: EventTicketOpened, GuildID: "g"})
		require.NoError(t, err)
		require.Len(t, seen, 1)
		assert.Equal(t, "g", seen[0].GuildID)
	})

	t.Run("handler errors do not stop delivery", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var called bool
		d.Subscribe(EventTicketClosed, func(context.Context, Event) error {
			return errors.New("boom")
		})
		d.Subscribe(EventTicketClosed, func(context.Context, Event) error {
			called = true
			return nil
		})

		require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketClosed}))
		assert.True(t, called)
	})

	t.Run("events of other types are not delivered", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var called bool
		d.Subscribe(EventTicketOpened, func(context.Context, Event) error {
			called = true
			return nil
		})

		require.NoError(t, d.Publish(context.Background(), Event{Type: EventPanelPosted}))
		assert.False(t, called)
	})
}
