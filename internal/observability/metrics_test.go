package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordInteraction("component", "create_ticket")
	m.RecordInteraction("component", "create_ticket")
	m.RecordInteraction("command", "setup-tickets")
	m.RecordError("component", "create_ticket", "ALREADY_OPEN")

	assert.Equal(t, int64(2), m.InteractionCount("component", "create_ticket"))
	assert.Equal(t, int64(1), m.InteractionCount("command", "setup-tickets"))
	assert.Equal(t, int64(0), m.InteractionCount("command", "unknown"))
	assert.Equal(t, int64(1), m.ErrorCount("component", "create_ticket", "ALREADY_OPEN"))
	assert.Equal(t, int64(0), m.ErrorCount("component", "create_ticket", "INTERNAL_ERROR"))
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.RecordInteraction("command", "setup-tickets")
	m.RecordError("command", "setup-tickets", "INTERNAL_ERROR")
	assert.Equal(t, int64(0), m.InteractionCount("command", "setup-tickets"))
	assert.Equal(t, int64(0), m.ErrorCount("command", "setup-tickets", "INTERNAL_ERROR"))
}
