package notification

import (
	"context"
	"errors"
	"time"

	"bookwise/models"
)

// ErrDeliveryFailed is wrapped by every Notifier failure.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// Notifier delivers a one-time code to an email address.
type Notifier interface {
	Send(ctx context.Context, name, email, code string) error
}

// ReminderScheduler queues a booking reminder for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// Mailer is what the background worker delivers through.
type Mailer interface {
	Notifier
	SendReminder(ctx context.Context, name, email string, payload models.ReminderPayload) error
}
