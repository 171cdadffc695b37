package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"aceup/config"
	"aceup/models"
	"aceup/services/availability"
)

const TypeAvailabilityRefresh = "availability:refresh"

// RefreshPayload identifies the group whose cached availability should be
// recomputed.
type RefreshPayload struct {
	GroupID string `json:"groupId"`
}

// TaskClient enqueues background tasks onto the Redis-backed queue.
type TaskClient struct {
	client *asynq.Client
}

// NewTaskClient creates an asynq client using the configured Redis queue DB.
func NewTaskClient() *TaskClient {
	return &TaskClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueAvailabilityRefresh schedules a background cache re-warm for the
// group.
func (tc *TaskClient) EnqueueAvailabilityRefresh(ctx context.Context, groupID string) error {
	payload, err := json.Marshal(RefreshPayload{GroupID: groupID})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh payload: %w", err)
	}
	task := asynq.NewTask(TypeAvailabilityRefresh, payload)
	if _, err := tc.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue availability refresh for group %s: %w", groupID, err)
	}
	return nil
}

// InitAvailabilityWorker runs the async worker in background.
func InitAvailabilityWorker(availabilitySvc availability.Service) {
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
	mux.HandleFunc(TypeAvailabilityRefresh, handleRefreshTask(availabilitySvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[AvailabilityWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AvailabilityWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AvailabilityWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRefreshTask(availabilitySvc availability.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p RefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AvailabilityWorker] Invalid payload: %v", err)
			return err
		}

		if err := availabilitySvc.InvalidateGroup(ctx, p.GroupID); err != nil {
			log.Printf("[AvailabilityWorker] Failed to invalidate cache for group %s: %v", p.GroupID, err)
			return err
		}

		// Re-warm the current week with default settings; callers using
		// custom configs fall back to on-demand computation.
		weekStart := CurrentWeekStart(time.Now().UTC())
		cfg := models.DefaultEngineConfig()
		for d := time.Sunday; d <= time.Saturday; d++ {
			if _, err := availabilitySvc.GetGroupAvailability(ctx, p.GroupID, weekStart, d, cfg); err != nil {
				log.Printf("[AvailabilityWorker] Failed to re-warm group %s for %s: %v", p.GroupID, d, err)
				return err
			}
		}
		return nil
	}
}

// CurrentWeekStart returns midnight of the most recent Sunday at or before t.
func CurrentWeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
