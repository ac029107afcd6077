package cron

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"tutorgo/config"
	"tutorgo/models"
	"tutorgo/services/notification"
	"tutorgo/services/tasks"
)

var (
	reminderClient *asynq.Client
	clientOnce     sync.Once
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// GetReminderClient returns the shared asynq client used to enqueue reminders.
func GetReminderClient() *asynq.Client {
	clientOnce.Do(func() {
		reminderClient = asynq.NewClient(redisOpts())
	})
	return reminderClient
}

// ScheduleSessionReminder enqueues a reminder to fire at the given time. Times
// already in the past are delivered immediately by asynq.
func ScheduleSessionReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = GetReminderClient().Enqueue(task, opts...)
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return notifSvc.DeliverSessionReminder(payload)
	}
}
