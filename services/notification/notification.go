package notification

import (
	"context"
	"fmt"
	"time"

	"staffhub/services/tasks"
	"staffhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const otpSubject = "Your login code"

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Mailer Mailer
}

func (s *DefaultNotificationService) SendOTPEmail(ctx context.Context, email, code string, ttl time.Duration) error {
	body := fmt.Sprintf(
		"Your one-time login code is %s.\n\nIt expires in %d minutes and can only be used once. "+
			"If you did not request it, you can ignore this email.\n",
		code, int(ttl.Round(time.Minute)/time.Minute),
	)
	if err := s.Mailer.Send(ctx, email, otpSubject, body); err != nil {
		return fmt.Errorf("failed to send otp email to %s: %w", email, err)
	}
	utils.GetLogger().Debug("OTP email sent", zap.String("email", email))
	return nil
}

// SyncOTPDispatcher sends the email on the request path.
type SyncOTPDispatcher struct {
	Notifications NotificationService
}

func (d *SyncOTPDispatcher) DispatchOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	return d.Notifications.SendOTPEmail(ctx, email, code, ttl)
}

// QueuedOTPDispatcher enqueues the email for the mail worker.
type QueuedOTPDispatcher struct {
	Client *asynq.Client
}

func (d *QueuedOTPDispatcher) DispatchOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	task, opts, err := tasks.NewOTPEmailTask(tasks.OTPEmailPayload{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
		TTL:       ttl,
	})
	if err != nil {
		return err
	}
	info, err := d.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue otp email: %w", err)
	}
	utils.GetLogger().Debug("OTP email queued", zap.String("email", email), zap.String("taskID", info.ID))
	return nil
}
