package models

import "time"

// SessionUser is the minimal identity carried by an authenticated session.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u SessionUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the server-side half of a login. The client only holds its ID.
type Session struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
