package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pawplan/config"
	billingRepo "pawplan/database/repository/billing"
	"pawplan/models"
	"pawplan/services/invoicing"

	"github.com/hibiken/asynq"
)

const (
	// TypeReminderScan walks the unpaid invoices and enqueues a send task
	// for every reminder that is due.
	TypeReminderScan = "reminder:scan"
	// TypeReminderSend delivers one reminder and records it on the invoice.
	TypeReminderSend = "reminder:send"
)

const scanInterval = 24 * time.Hour

// InitReminderWorker runs the async worker in background and schedules the
// daily reminder scan.
func InitReminderWorker(billing billingRepo.BillingRepository) {
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

	client := asynq.NewClient(redisOpts)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderScan, handleReminderScan(billing, client))
	mux.HandleFunc(TypeReminderSend, handleReminderSend(billing))

	go func() {
		ticker := time.NewTicker(scanInterval)
		defer ticker.Stop()
		for {
			if _, err := client.Enqueue(asynq.NewTask(TypeReminderScan, nil)); err != nil {
				log.Printf("[ReminderWorker] failed to enqueue scan: %v", err)
			}
			<-ticker.C
		}
	}()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderScan(billing billingRepo.BillingRepository, client *asynq.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		invoices, err := billing.ListUnpaidInvoices(ctx)
		if err != nil {
			return err
		}
		due := invoicing.GeneratePaymentReminders(invoices, time.Now(), config.AppConfig.ReminderIntervalDays)
		for _, reminder := range due {
			payload, err := json.Marshal(reminder)
			if err != nil {
				return err
			}
			if _, err := client.Enqueue(asynq.NewTask(TypeReminderSend, payload)); err != nil {
				log.Printf("[ReminderScan] failed to enqueue reminder for invoice %s: %v", reminder.InvoiceID, err)
			}
		}
		log.Printf("[ReminderScan] %d reminders due out of %d unpaid invoices", len(due), len(invoices))
		return nil
	}
}

func handleReminderSend(billing billingRepo.BillingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var reminder models.PaymentReminder
		if err := json.Unmarshal(task.Payload(), &reminder); err != nil {
			log.Printf("[ReminderSend] invalid payload: %v", err)
			return err
		}

		// Delivery is by e-mail outside this process; the worker's job is to
		// record the send so the escalation level advances.
		log.Printf("[ReminderSend] %s reminder for invoice %s (%d days overdue): %s",
			reminder.Level, reminder.InvoiceID, reminder.DaysOverdue, reminder.Message)

		return billing.RecordReminder(ctx, reminder.InvoiceID, time.Now())
	}
}
