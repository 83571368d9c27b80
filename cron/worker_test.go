package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"staffhub/services/tasks"
	"staffhub/utils"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifications struct {
	calls []string
	err   error
}

func (f *fakeNotifications) SendOTPEmail(_ context.Context, email, code string, _ time.Duration) error {
	f.calls = append(f.calls, email+":"+code)
	return f.err
}

func TestHandleOTPEmailTask(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	notif := &fakeNotifications{}
	task, opts, err := tasks.NewOTPEmailTask(tasks.OTPEmailPayload{
		Email:     "a@b.co",
		Code:      "123456",
		ExpiresAt: time.Now().Add(time.Minute),
		TTL:       time.Minute,
	})
	require.NoError(t, err)
	assert.Len(t, opts, 3)
	assert.Equal(t, tasks.TypeOTPEmail, task.Type())

	require.NoError(t, NewMailMux(notif).ProcessTask(context.Background(), task))
	assert.Equal(t, []string{"a@b.co:123456"}, notif.calls)
}

func TestHandleOTPEmailTaskDropsExpired(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	notif := &fakeNotifications{}
	task, _, err := tasks.NewOTPEmailTask(tasks.OTPEmailPayload{
		Email:     "a@b.co",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Second),
	})
	require.NoError(t, err)

	require.NoError(t, handleOTPEmailTask(notif)(context.Background(), task))
	assert.Empty(t, notif.calls)
}

func TestHandleOTPEmailTaskErrors(t *testing.T) {
	utils.SetLogger(zap.NewNop())

	bad := asynq.NewTask(tasks.TypeOTPEmail, []byte("{"))
	err := handleOTPEmailTask(&fakeNotifications{})(context.Background(), bad)
	assert.ErrorIs(t, err, asynq.SkipRetry)

	task, _, err := tasks.NewOTPEmailTask(tasks.OTPEmailPayload{Email: "a@b.co", Code: "1", ExpiresAt: time.Now().Add(time.Minute)})
	require.NoError(t, err)
	failing := &fakeNotifications{err: errors.New("relay down")}
	err = handleOTPEmailTask(failing)(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
