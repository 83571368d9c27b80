package session

import (
	"context"
	"net/http"

	"staffhub/models"
)

// SessionService creates, resolves and destroys login sessions and renders
// the cookie that carries them.
type SessionService interface {
	Create(ctx context.Context, user models.SessionUser) (*models.Session, string, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Destroy(ctx context.Context, id string) error
	Cookie(token string, s *models.Session) *http.Cookie
	ExpiredCookie() *http.Cookie
	CookieName() string
}
