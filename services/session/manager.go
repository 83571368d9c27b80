package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sessionRepo "staffhub/database/repository/session"
	"staffhub/models"
	"staffhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager is the default SessionService. Sessions live in Store; the client
// holds only a signed token naming the session id.
type Manager struct {
	Store  sessionRepo.SessionRepository
	Secret []byte
	TTL    time.Duration
	Name   string
	Secure bool
	Now    func() time.Time
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Create stores a new session for user and returns it with its cookie token.
func (m *Manager) Create(ctx context.Context, user models.SessionUser) (*models.Session, string, error) {
	now := m.now()
	s := models.Session{
		ID:        uuid.NewString(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(m.TTL),
	}
	if err := m.Store.Save(ctx, s); err != nil {
		return nil, "", err
	}
	token, err := utils.SignSessionToken(m.Secret, s.ID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		_ = m.Store.Delete(ctx, s.ID)
		return nil, "", err
	}
	return &s, token, nil
}

// Resolve returns the live session named by token, or nil when the token is
// invalid or the session is gone.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	id, err := utils.ParseSessionToken(m.Secret, token)
	if err != nil {
		utils.GetLogger().Debug("Ignoring invalid session cookie", zap.Error(err))
		return nil, nil
	}
	s, err := m.Store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if s == nil || s.Expired(m.now()) {
		return nil, nil
	}
	return s, nil
}

func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.Store.Delete(ctx, id)
}

func (m *Manager) CookieName() string {
	return m.Name
}

// Cookie renders token as an HttpOnly cookie that expires with s.
func (m *Manager) Cookie(token string, s *models.Session) *http.Cookie {
	return &http.Cookie{
		Name:     m.Name,
		Value:    token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(s.ExpiresAt.Sub(m.now()).Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie tells the browser to drop the session cookie.
func (m *Manager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
