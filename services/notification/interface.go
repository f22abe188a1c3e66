// File: services/notification/interface.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripplanner/models"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the task type for queued booking emails.
const TypeEmailSend = "email:send"

// NotificationService delivers booking documents to the user. The worker
// invokes it; API handlers only ever enqueue.
type NotificationService interface {
	SendBookingEmail(ctx context.Context, email models.BookingEmail) error
}

// emailTaskOpts bound delivery: five retries with a 10s per-attempt
// timeout.
var emailTaskOpts = []asynq.Option{
	asynq.MaxRetry(5),
	asynq.Timeout(10 * time.Second),
}

// Dispatcher enqueues booking emails for the background worker. Enqueueing
// is decoupled from delivery: the caller learns whether the task was queued,
// never whether the mail went out.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// Queue serializes the email into an "email:send" task.
func (d *Dispatcher) Queue(ctx context.Context, email models.BookingEmail) error {
	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("marshaling email payload: %w", err)
	}
	task := asynq.NewTask(TypeEmailSend, payload)
	_, err = d.client.EnqueueContext(ctx, task, emailTaskOpts...)
	if err != nil {
		return fmt.Errorf("enqueueing email task: %w", err)
	}
	return nil
}
