package auth

import (
	"context"

	"staffhub/models"
	"staffhub/services/session"
	"staffhub/utils"
)

func currentUser(ctx context.Context) *models.SessionUser {
	return session.CurrentUser(ctx)
}

// RequireAuthenticated returns the caller's identity or UNAUTHENTICATED.
func RequireAuthenticated(ctx context.Context) (*models.SessionUser, error) {
	user := currentUser(ctx)
	if user == nil {
		return nil, utils.NewAppError(utils.CodeUnauthenticated, msgLoginRequired)
	}
	return user, nil
}

// RequireAdmin additionally rejects non-admin callers with FORBIDDEN.
func RequireAdmin(ctx context.Context) (*models.SessionUser, error) {
	user, err := RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, utils.NewAppError(utils.CodeForbidden, msgNoPermission)
	}
	return user, nil
}
