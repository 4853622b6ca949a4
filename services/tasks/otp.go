package tasks

import (
	"encoding/json"
	"time"

	"bookwise/models"

	"github.com/hibiken/asynq"
)

const TypeSendOTP = "otp:send"

// NewOTPMailTask builds a task that mails a one-time code. A code is useless
// once its token expires, so the task is dropped after ttl.
func NewOTPMailTask(payload models.OTPMailPayload, ttl time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendOTP, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
		asynq.Deadline(time.Now().Add(ttl)),
	}
	return task, opts, nil
}

// ParseOTPMail decodes an OTP mail task payload.
func ParseOTPMail(task *asynq.Task) (models.OTPMailPayload, error) {
	var p models.OTPMailPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
