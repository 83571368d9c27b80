package userRepo

import (
	"context"

	"staffhub/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record and sets its ID.
	Create(ctx context.Context, user *models.User) error
	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)
}
