package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"staffhub/config"
	"staffhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

func TestSendOTPEmail(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	mailer := &recordingMailer{}
	svc := &DefaultNotificationService{Mailer: mailer}

	require.NoError(t, svc.SendOTPEmail(context.Background(), "a@b.co", "123456", 5*time.Minute))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "a@b.co", mailer.sent[0].to)
	assert.Equal(t, otpSubject, mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "123456")
	assert.Contains(t, mailer.sent[0].body, "5 minutes")
}

func TestSendOTPEmailError(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	svc := &DefaultNotificationService{Mailer: &recordingMailer{err: errors.New("relay down")}}

	err := svc.SendOTPEmail(context.Background(), "a@b.co", "123456", time.Minute)
	assert.ErrorContains(t, err, "relay down")
}

func TestSyncDispatcher(t *testing.T) {
	utils.SetLogger(zap.NewNop())
	mailer := &recordingMailer{}
	d := &SyncOTPDispatcher{Notifications: &DefaultNotificationService{Mailer: mailer}}

	require.NoError(t, d.DispatchOTP(context.Background(), "a@b.co", "654321", time.Minute))
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].body, "654321")
}

func TestNewMailer(t *testing.T) {
	assert.IsType(t, &LogMailer{}, NewMailer(config.Config{}))

	m := NewMailer(config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, EmailFrom: "HR <hr@example.com>"})
	smtpMailer, ok := m.(*SMTPMailer)
	require.True(t, ok)
	assert.Equal(t, "smtp.example.com", smtpMailer.Host)
	assert.Equal(t, 587, smtpMailer.Port)
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "hr@example.com", envelopeAddress("HR <hr@example.com>"))
	assert.Equal(t, "hr@example.com", envelopeAddress(" hr@example.com "))
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("HR <hr@example.com>", "a@b.co", "Hello", "body text"))

	head, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, head, "From: HR <hr@example.com>")
	assert.Contains(t, head, "To: a@b.co")
	assert.Contains(t, head, "Subject: Hello")
	assert.Equal(t, "body text", body)
}
