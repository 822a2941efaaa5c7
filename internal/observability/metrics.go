package observability

import (
	"sync"
)

// Metrics provides basic in-memory counters for gateway interactions.
type Metrics struct {
	mu               sync.Mutex
	interactionCount map[string]int64
	errorCount       map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		interactionCount: make(map[string]int64),
		errorCount:       make(map[string]int64),
	}
}

// RecordInteraction increments the counter for an interaction kind/identifier.
func (m *Metrics) RecordInteraction(kind, id string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactionCount[kind+"|"+id]++
}

// RecordError increments the error counter for an interaction and error code.
func (m *Metrics) RecordError(kind, id, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[kind+"|"+id+"|"+code]++
}

// InteractionCount returns the current count for an interaction kind/identifier.
func (m *Metrics) InteractionCount(kind, id string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interactionCount[kind+"|"+id]
}

// ErrorCount returns the current count for an interaction and error code.
func (m *Metrics) ErrorCount(kind, id, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errorCount[kind+"|"+id+"|"+code]
}
