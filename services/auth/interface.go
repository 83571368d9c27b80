package auth

import (
	"context"
	"time"

	otpRepo "staffhub/database/repository/otp"
	userRepo "staffhub/database/repository/user"
	"staffhub/models"
	"staffhub/services/notification"
)

type AuthService interface {
	// RequestOTP issues a login code for email. The outcome is the same for
	// known and unknown addresses.
	RequestOTP(ctx context.Context, email string) (*OTPResult, error)
	// VerifyOTP consumes a valid code and returns the user it logs in.
	VerifyOTP(ctx context.Context, email, code string) (*models.User, error)
	// Me returns the stored user behind the caller's session, or nil.
	Me(ctx context.Context) (*models.User, error)
}

// OTPResult is the reply to a code request. OTP is set only when echoing is
// enabled and a code was actually issued.
type OTPResult struct {
	Message string
	OTP     *string
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users      userRepo.UserRepository
	OTPs       otpRepo.OTPRepository
	Dispatcher notification.OTPDispatcher

	TTL      time.Duration
	HashCost int
	Echo     bool

	Now          func() time.Time
	GenerateCode func() (string, error)
}
