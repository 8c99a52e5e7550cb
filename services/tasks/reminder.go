package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"lipo/config"
	"lipo/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues booking reminders on the Redis-backed
// queue. Implements the booking service's ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler builds a scheduler over the configured reminder queue.
func NewReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// ScheduleReminder queues a reminder for both parties ahead of the
// appointment.
func (s *AsynqReminderScheduler) ScheduleReminder(bk *models.Booking, fireAt time.Time) error {
	payload := models.ReminderPayload{
		BookingID:        bk.ID,
		ProviderID:       bk.ProviderID,
		CustomerID:       bk.CustomerID,
		ConfirmationCode: bk.ConfirmationCode,
		FireDate:         fireAt.Format(time.RFC3339),
		Title:            "Upcoming booking",
		Body:             fmt.Sprintf("Booking %s starts at %s on %s", bk.ConfirmationCode, bk.StartTime, bk.BookingDate),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for booking %s: %w", bk.ID, err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
