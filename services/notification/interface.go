package notification

import (
	"context"
	"time"
)

// Mailer delivers a single plain-text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// OTPDispatcher hands a freshly issued login code to the delivery path.
type OTPDispatcher interface {
	DispatchOTP(ctx context.Context, email, code string, ttl time.Duration) error
}

// NotificationService renders and sends the emails the API produces.
type NotificationService interface {
	SendOTPEmail(ctx context.Context, email, code string, ttl time.Duration) error
}
