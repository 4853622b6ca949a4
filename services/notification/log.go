package notification

import (
	"context"
	"time"

	"bookwise/models"

	"go.uber.org/zap"
)

// LogNotifier writes deliveries to the log instead of sending them. Meant for
// local development only.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Send(ctx context.Context, name, email, code string) error {
	l.logger.Info("LogNotifier: otp", zap.String("name", name), zap.String("email", email), zap.String("code", code))
	return nil
}

func (l *LogNotifier) SendReminder(ctx context.Context, name, email string, payload models.ReminderPayload) error {
	l.logger.Info("LogNotifier: reminder",
		zap.String("email", email),
		zap.String("bookingID", payload.BookingID),
		zap.String("date", payload.Date),
		zap.String("from", payload.From),
	)
	return nil
}

func (l *LogNotifier) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	l.logger.Info("LogNotifier: reminder scheduled", zap.String("bookingID", payload.BookingID), zap.Time("fireAt", fireAt))
	return nil
}
