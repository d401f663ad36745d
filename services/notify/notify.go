// File: services/notify/notify.go
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"campwise/config"

	"github.com/hibiken/asynq"
)

// TypeDayChanged is the asynq task type for coarse day-change fan-out.
const TypeDayChanged = "day:changed"

// DayChangedPayload is the task payload. It carries nothing but
// the day id: subscribers refetch rather than patch.
type DayChangedPayload struct {
	DayID string `json:"dayId"`
}

// DayChannel returns the Redis pub/sub channel for a day's change events.
func DayChannel(dayID string) string {
	return "campwise:day:" + dayID
}

// Publisher announces that a day's schedule changed. Implementations must
// tolerate losing the producer; the next full reload reconciles anyway.
type Publisher interface {
	DayChanged(ctx context.Context, dayID string) error
}

// AsynqPublisher enqueues day-change tasks for the fan-out worker rather
// than publishing inline, so a slow or down Redis never stalls a write path.
type AsynqPublisher struct {
	client *asynq.Client
}

// NewAsynqPublisher builds a publisher backed by the configured queue Redis.
func NewAsynqPublisher() *AsynqPublisher {
	return &AsynqPublisher{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

func (p *AsynqPublisher) DayChanged(ctx context.Context, dayID string) error {
	payload, err := json.Marshal(DayChangedPayload{DayID: dayID})
	if err != nil {
		return fmt.Errorf("failed to marshal day-changed payload: %w", err)
	}
	task := asynq.NewTask(TypeDayChanged, payload)
	if _, err := p.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue day-changed task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}
