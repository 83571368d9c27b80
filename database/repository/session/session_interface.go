package sessionRepo

import (
	"context"

	"staffhub/models"
)

// SessionRepository keeps server-side sessions until they expire.
type SessionRepository interface {
	// Save stores s until s.ExpiresAt.
	Save(ctx context.Context, s models.Session) error
	// Get returns nil, nil for unknown or expired sessions.
	Get(ctx context.Context, id string) (*models.Session, error)
	// Delete is a no-op for unknown sessions.
	Delete(ctx context.Context, id string) error
}
