package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lipo/config"
	bookingRepo "lipo/database/repository/booking"
	"lipo/models"
	"lipo/services/realtime"
	"lipo/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitBookingWorker runs the async worker in background: reminder delivery
// plus a periodic sweep that cancels pending bookings past their TTL.
func InitBookingWorker(hub *realtime.Hub, repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(hub))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start pending-booking sweep
	go runPendingSweep(repo)

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask pushes the reminder onto the booking's realtime channel
// so any attached client surfaces it.
func handleReminderTask(hub *realtime.Hub) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] firing reminder for booking %s (%s)", p.BookingID, p.ConfirmationCode)

		event := models.BookingEvent{
			Type:      "reminder",
			BookingID: p.BookingID,
			At:        time.Now(),
		}
		if err := hub.PublishBookingUpdate(ctx, event); err != nil {
			log.Printf("[ReminderHandler] failed to publish reminder: %v", err)
			return err
		}
		return nil
	}
}

// runPendingSweep cancels pending bookings older than the configured TTL.
func runPendingSweep(repo bookingRepo.BookingRepository) {
	ttl := time.Duration(config.AppConfig.PendingTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		swept, err := repo.ExpirePending(ctx, time.Now().Add(-ttl))
		cancel()
		if err != nil {
			log.Printf("[PendingSweep] sweep failed: %v", err)
			continue
		}
		if swept > 0 {
			log.Printf("[PendingSweep] cancelled %d stale pending bookings", swept)
		}
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[BookingWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
