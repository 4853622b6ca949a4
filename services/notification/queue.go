package notification

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"
	"bookwise/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is the subset of *asynq.Client used here.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands deliveries to the asynq worker. Send succeeds once the
// task is durably queued in Redis.
type QueueNotifier struct {
	client TaskEnqueuer
	otpTTL time.Duration
	logger *zap.Logger
}

func NewQueueNotifier(client TaskEnqueuer, otpTTL time.Duration, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{client: client, otpTTL: otpTTL, logger: logger}
}

func (q *QueueNotifier) Send(ctx context.Context, name, email, code string) error {
	task, opts, err := tasks.NewOTPMailTask(models.OTPMailPayload{Name: name, Email: email, Code: code}, q.otpTTL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		q.logger.Error("QueueNotifier: failed to enqueue otp mail", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	q.logger.Debug("QueueNotifier: otp mail queued", zap.String("taskID", info.ID))
	return nil
}

func (q *QueueNotifier) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", payload.BookingID, err)
	}
	return nil
}
