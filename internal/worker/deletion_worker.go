// Package worker schedules deferred channel teardown.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/gateway"
)

// Scheduler arms one-shot deferred deletions.
type Scheduler interface {
	Schedule(channelID string, delay time.Duration)
}

// DeletionWorker deletes channels after a grace delay. Each schedule is a
// fire-and-forget timer with no cancellation handle; a deletion failure (for
// example the channel is already gone after a duplicate close) is swallowed.
type DeletionWorker struct {
	gateway gateway.Gateway
	logger  *zap.Logger
}

// NewDeletionWorker constructs the worker.
func NewDeletionWorker(gw gateway.Gateway, logger *zap.Logger) *DeletionWorker {
	return &DeletionWorker{gateway: gw, logger: logger}
}

// Schedule arms a one-shot deletion of channelID after delay.
func (w *DeletionWorker) Schedule(channelID string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := w.gateway.DeleteChannel(context.Background(), channelID); err != nil {
			w.logger.Debug("deferred channel deletion failed",
				zap.String("channel_id", channelID),
				zap.Error(err))
		}
	})
}
