// File: planner/realtime.go
package planner

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"campwise/services/notify"
	"campwise/utils"
)

// InvalidationBridge reacts to coarse "this day changed" signals from other
// clients by triggering a full reload. No diffing, no merging: slot order
// and conflict state are cheap to recompute from a fresh list and hard to
// merge correctly from partial deltas.
type InvalidationBridge struct {
	events <-chan string
	loader *DayLoader
	logger *zap.Logger
}

// NewInvalidationBridge wires a change-event stream to a loader. The
// message content is ignored beyond "something happened to this day".
func NewInvalidationBridge(events <-chan string, loader *DayLoader) *InvalidationBridge {
	return &InvalidationBridge{
		events: events,
		loader: loader,
		logger: utils.GetLogger(),
	}
}

// Run consumes events until the context is cancelled or the stream closes.
// A failed refresh is logged and the bridge keeps listening; the next event
// retries anyway.
func (b *InvalidationBridge) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-b.events:
			if !ok {
				return nil
			}
			if err := b.loader.Refresh(ctx); err != nil {
				b.logger.Warn("refresh after change event failed",
					zap.String("dayID", b.loader.DayID()), zap.Error(err))
			}
		}
	}
}

// RedisDayEvents subscribes to a day's Redis change channel and returns the
// message stream plus a close function. Pass the stream to
// NewInvalidationBridge.
func RedisDayEvents(ctx context.Context, client *redis.Client, dayID string) (<-chan string, func() error) {
	sub := client.Subscribe(ctx, notify.DayChannel(dayID))
	out := make(chan string)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, sub.Close
}
