package cron

import (
	"context"
	"fmt"
	"time"

	accountRepo "bookwise/database/repository/account"
	"bookwise/models"
	"bookwise/services/notification"
	"bookwise/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker runs queued OTP mails and booking reminders.
type Worker struct {
	srv      *asynq.Server
	mux      *asynq.ServeMux
	mailer   notification.Mailer
	accounts accountRepo.AccountRepository
	logger   *zap.Logger
}

// NewWorker builds a worker reading tasks from redisOpts.
func NewWorker(redisOpts asynq.RedisClientOpt, mailer notification.Mailer, accounts accountRepo.AccountRepository, logger *zap.Logger) *Worker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	w := &Worker{srv: srv, mailer: mailer, accounts: accounts, logger: logger}
	w.mux = asynq.NewServeMux()
	w.mux.HandleFunc(tasks.TypeSendOTP, w.handleOTPMail)
	w.mux.HandleFunc(tasks.TypeSendReminder, w.handleReminder)
	return w
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *Worker) Start() {
	go func() {
		w.logger.Info("Worker: starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Run(w.mux)
			if err == nil {
				return
			}
			w.logger.Error("Worker: failed to start", zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Fatal("Worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown stops pulling tasks and waits for in-flight ones.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}

func (w *Worker) handleOTPMail(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseOTPMail(task)
	if err != nil {
		w.logger.Error("Worker: invalid otp payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if err := w.mailer.Send(ctx, p.Name, p.Email, p.Code); err != nil {
		w.logger.Warn("Worker: otp mail failed", zap.String("email", p.Email), zap.Error(err))
		return err
	}
	return nil
}

func (w *Worker) handleReminder(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseReminder(task)
	if err != nil {
		w.logger.Error("Worker: invalid reminder payload", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	user, err := w.accounts.FindByID(ctx, models.RoleUser, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", p.UserID, err)
	}
	if user == nil || user.IsBlocked {
		w.logger.Info("Worker: reminder dropped", zap.String("bookingID", p.BookingID), zap.String("userID", p.UserID))
		return nil
	}

	w.logger.Info("Worker: sending reminder", zap.String("bookingID", p.BookingID), zap.String("date", p.Date))
	return w.mailer.SendReminder(ctx, user.Name, user.Email, p)
}
