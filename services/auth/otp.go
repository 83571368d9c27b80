package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"staffhub/database"
	"staffhub/models"
	"staffhub/utils"

	"go.uber.org/zap"
)

func (s *DefaultAuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return utils.OTPDefaultTTL
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultAuthService) RequestOTP(ctx context.Context, email string) (*OTPResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, utils.BadUserInput(msgEmailRequired)
	}
	logger := utils.GetLogger().With(zap.String("email", email))

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Info("OTP requested for unknown email")
		return &OTPResult{Message: msgOTPRequested}, nil
	}

	generate := s.GenerateCode
	if generate == nil {
		generate = utils.GenerateNumericOTP
	}
	code, err := generate()
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashOTP(code, s.HashCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := &models.OTPRecord{
		Email:     email,
		CodeHash:  hash,
		Attempts:  0,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}
	if err := s.OTPs.Replace(ctx, rec); err != nil {
		return nil, err
	}

	if s.Dispatcher != nil {
		if err := s.Dispatcher.DispatchOTP(ctx, email, code, s.ttl()); err != nil {
			logger.Error("Failed to dispatch OTP email", zap.Error(err))
		}
	}
	logger.Info("OTP issued", zap.Time("expiresAt", rec.ExpiresAt))

	result := &OTPResult{Message: msgOTPRequested}
	if s.Echo {
		result.OTP = &code
	}
	return result, nil
}

// errOTPChanged means the pending record was replaced or consumed while it was
// being checked.
var errOTPChanged = errors.New("otp record changed during verification")

const maxVerifyPasses = 3

// VerifyOTP walks the pending code through its states: absent, expired,
// exhausted, mismatched or consumed. A record that changes mid-check is
// re-read and the code is checked against the current one.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, email, code string) (*models.User, error) {
	email = NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" {
		return nil, utils.BadUserInput(msgEmailRequired)
	}
	logger := utils.GetLogger().With(zap.String("email", email))

	for pass := 0; pass < maxVerifyPasses; pass++ {
		rec, err := s.OTPs.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, utils.BadUserInput(msgNoOTP)
		}

		err = s.checkCode(ctx, rec, code)
		if errors.Is(err, errOTPChanged) {
			logger.Debug("OTP changed during verification, retrying", zap.Int("pass", pass))
			continue
		}
		if err != nil {
			return nil, err
		}

		user, err := s.Users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, utils.NotFound(msgUserNotFound)
		}
		logger.Info("OTP verified", zap.String("userID", user.ID.Hex()))
		return user, nil
	}
	return nil, utils.BadUserInput(msgNoOTP)
}

// checkCode validates code against rec and consumes rec on success.
func (s *DefaultAuthService) checkCode(ctx context.Context, rec *models.OTPRecord, code string) error {
	if rec.Expired(s.now()) {
		s.discard(ctx, rec)
		return utils.NewAppError(utils.CodeOTPExpired, msgOTPExpired)
	}
	if rec.Attempts >= utils.OTPMaxAttempts {
		s.discard(ctx, rec)
		return utils.NewAppError(utils.CodeTooManyAttempts, msgTooManyTries)
	}

	if len(code) != utils.OTPLength || !utils.OTPMatches(rec.CodeHash, code) {
		attempts, err := s.OTPs.IncrementAttempts(ctx, rec, utils.OTPMaxAttempts)
		if errors.Is(err, database.ErrNotFound) {
			return errOTPChanged
		}
		if err != nil {
			return err
		}
		utils.GetLogger().Info("Invalid OTP submitted", zap.String("email", rec.Email), zap.Int("attempts", attempts))
		return utils.NewAppError(utils.CodeInvalidOTP, msgInvalidOTP, utils.OTPMaxAttempts-attempts)
	}

	consumed, err := s.OTPs.Consume(ctx, rec)
	if err != nil {
		return err
	}
	if !consumed {
		return errOTPChanged
	}
	return nil
}

func (s *DefaultAuthService) discard(ctx context.Context, rec *models.OTPRecord) {
	if _, err := s.OTPs.Consume(ctx, rec); err != nil {
		utils.GetLogger().Warn("Failed to delete stale OTP", zap.String("email", rec.Email), zap.Error(err))
	}
}

func (s *DefaultAuthService) Me(ctx context.Context) (*models.User, error) {
	current := currentUser(ctx)
	if current == nil {
		return nil, nil
	}
	return s.Users.GetByID(ctx, current.ID)
}
