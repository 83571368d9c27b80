package middleware

import (
	"net/http"

	"staffhub/services/session"
	"staffhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionMiddleware resolves the session cookie into a session.Handle on the
// request context. Requests without a valid session continue anonymously.
func SessionMiddleware(svc session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var token string
		if cookie, err := c.Request.Cookie(svc.CookieName()); err == nil {
			token = cookie.Value
		}

		current, err := svc.Resolve(ctx, token)
		if err != nil {
			utils.GetLogger().Error("Failed to resolve session", zap.Error(err))
			utils.AbortWithError(c, http.StatusServiceUnavailable, utils.CodeInternal, "Session store unavailable")
			return
		}
		if current == nil && token != "" {
			// Stale or forged cookie.
			http.SetCookie(c.Writer, svc.ExpiredCookie())
		}
		if current != nil {
			c.Set("userID", current.User.ID)
			c.Set("role", current.User.Role)
		}

		handle := session.NewHandle(svc, c.Writer, current)
		c.Request = c.Request.WithContext(session.WithHandle(ctx, handle))
		c.Next()
	}
}
