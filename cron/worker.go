package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"campwise/config"
	"campwise/services/notify"
	"campwise/utils"

	"github.com/hibiken/asynq"
)

// InitChangeWorker runs the day-change fan-out worker in background. It
// drains queued day-changed tasks and republishes them on the per-day Redis
// channel that planner invalidation bridges subscribe to.
func InitChangeWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notify.TypeDayChanged, handleDayChangedTask)

	go func() {
		log.Println("[ChangeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ChangeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ChangeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDayChangedTask(ctx context.Context, task *asynq.Task) error {
	var p notify.DayChangedPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ChangeWorker] invalid payload: %v", err)
		return err
	}

	// The message body is only the day id; subscribers refetch the whole day.
	client := utils.GetEventClient()
	if err := client.Publish(ctx, notify.DayChannel(p.DayID), p.DayID).Err(); err != nil {
		log.Printf("[ChangeWorker] failed to publish change for day %s: %v", p.DayID, err)
		return err
	}
	return nil
}
