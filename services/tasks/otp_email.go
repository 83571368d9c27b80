package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeOTPEmail = "email:otp"

// OTPEmailPayload is the body of an email:otp task.
type OTPEmailPayload struct {
	Email     string        `json:"email"`
	Code      string        `json:"code"`
	ExpiresAt time.Time     `json:"expiresAt"`
	TTL       time.Duration `json:"ttl"`
}

// NewOTPEmailTask builds a task that is dropped once the code it carries has
// expired.
func NewOTPEmailTask(payload OTPEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeOTPEmail, b)
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(30 * time.Second),
		asynq.Deadline(payload.ExpiresAt),
	}
	return task, opts, nil
}
