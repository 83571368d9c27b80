package otpRepo

import (
	"context"

	"staffhub/models"
)

// OTPRepository stores at most one pending code per email. A record is
// identified by its ID together with its code hash, so a code that has been
// replaced by a newer request can no longer be counted against or consumed.
type OTPRepository interface {
	// Replace stores rec as the only pending code for rec.Email.
	Replace(ctx context.Context, rec *models.OTPRecord) error
	// FindByEmail returns nil, nil when no code is pending.
	FindByEmail(ctx context.Context, email string) (*models.OTPRecord, error)
	// IncrementAttempts atomically bumps the attempt counter while it is below
	// max and returns the new value. database.ErrNotFound means the record is
	// gone, was replaced or already reached max.
	IncrementAttempts(ctx context.Context, rec *models.OTPRecord, max int) (int, error)
	// Consume deletes rec and reports whether this call removed it.
	Consume(ctx context.Context, rec *models.OTPRecord) (bool, error)
}
