package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staffhub/config"
	"staffhub/services/notification"
	"staffhub/services/tasks"
	"staffhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the connection settings of the mail queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewMailMux routes queued email tasks to notifSvc.
func NewMailMux(notifSvc notification.NotificationService) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeOTPEmail, handleOTPEmailTask(notifSvc))
	return mux
}

// InitMailWorker runs the async mail worker in the background and returns the
// server so the caller can shut it down.
func InitMailWorker(notifSvc notification.NotificationService) *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewMailMux(notifSvc)

	go func() {
		logger.Info("Starting mail worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Mail worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("Mail worker gave up; OTP emails will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleOTPEmailTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.OTPEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid otp email payload: %v: %w", err, asynq.SkipRetry)
		}
		if !p.ExpiresAt.IsZero() && time.Now().After(p.ExpiresAt) {
			utils.GetLogger().Info("Dropping expired OTP email", zap.String("email", p.Email))
			return nil
		}

		if err := notifSvc.SendOTPEmail(ctx, p.Email, p.Code, p.TTL); err != nil {
			utils.GetLogger().Error("Failed to deliver queued OTP email", zap.String("email", p.Email), zap.Error(err))
			return err
		}
		return nil
	}
}
