package session

import (
	"context"
	"net/http"
	"sync"

	"staffhub/models"
	"staffhub/utils"

	"go.uber.org/zap"
)

type handleKey struct{}

// Handle is the per-request view of the caller's session. It lets resolvers
// read the identity and replace or end the session, writing the cookie to the
// response.
type Handle struct {
	mu      sync.Mutex
	svc     SessionService
	w       http.ResponseWriter
	current *models.Session
}

func NewHandle(svc SessionService, w http.ResponseWriter, current *models.Session) *Handle {
	return &Handle{svc: svc, w: w, current: current}
}

// User returns the authenticated identity, or nil.
func (h *Handle) User() *models.SessionUser {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return nil
	}
	u := h.current.User
	return &u
}

// Establish ends any current session and starts a new one for user.
func (h *Handle) Establish(ctx context.Context, user models.SessionUser) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		if err := h.svc.Destroy(ctx, h.current.ID); err != nil {
			utils.GetLogger().Warn("Failed to destroy previous session", zap.String("sessionID", h.current.ID), zap.Error(err))
		}
		h.current = nil
	}
	s, token, err := h.svc.Create(ctx, user)
	if err != nil {
		return err
	}
	h.current = s
	http.SetCookie(h.w, h.svc.Cookie(token, s))
	return nil
}

// Destroy ends the current session, if any, and clears the cookie.
func (h *Handle) Destroy(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	http.SetCookie(h.w, h.svc.ExpiredCookie())
	if h.current == nil {
		return nil
	}
	id := h.current.ID
	h.current = nil
	return h.svc.Destroy(ctx, id)
}

func WithHandle(ctx context.Context, h *Handle) context.Context {
	return context.WithValue(ctx, handleKey{}, h)
}

// FromContext returns the request's Handle, or nil outside a request.
func FromContext(ctx context.Context) *Handle {
	h, _ := ctx.Value(handleKey{}).(*Handle)
	return h
}

// CurrentUser is a shortcut for FromContext(ctx).User().
func CurrentUser(ctx context.Context) *models.SessionUser {
	return FromContext(ctx).User()
}
