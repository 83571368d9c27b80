package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionRepo "staffhub/database/repository/session"
	"staffhub/models"
	"staffhub/services/session"
	"staffhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetLogger(zap.NewNop())
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"bad forwarded falls back", map[string]string{"X-Forwarded-For": "junk", "X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		{"peer address", nil, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = "192.0.2.1:1234"
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusNoContent, do("198.51.100.1"))
	assert.Equal(t, http.StatusNoContent, do("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.1"))
	assert.Equal(t, http.StatusNoContent, do("198.51.100.2"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func newManager(store sessionRepo.SessionRepository) *session.Manager {
	return &session.Manager{Store: store, Secret: []byte("secret"), TTL: time.Hour, Name: "sid"}
}

func sessionRouter(svc session.SessionService, seen **models.SessionUser) *gin.Engine {
	r := gin.New()
	r.POST("/", SessionMiddleware(svc), func(c *gin.Context) {
		*seen = session.CurrentUser(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	mgr := newManager(sessionRepo.NewMemorySessionRepo())
	s, token, err := mgr.Create(context.Background(), models.SessionUser{ID: "u1", Role: models.RoleAdmin})
	require.NoError(t, err)

	var seen *models.SessionUser
	r := sessionRouter(mgr, &seen)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(mgr.Cookie(token, s))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
	assert.Empty(t, w.Result().Cookies())

	seen = nil
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, seen)
}

func TestSessionMiddlewareClearsStaleCookie(t *testing.T) {
	mgr := newManager(sessionRepo.NewMemorySessionRepo())
	s, token, err := mgr.Create(context.Background(), models.SessionUser{ID: "u1"})
	require.NoError(t, err)
	require.NoError(t, mgr.Destroy(context.Background(), s.ID))

	var seen *models.SessionUser
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(mgr.Cookie(token, s))
	w := httptest.NewRecorder()
	sessionRouter(mgr, &seen).ServeHTTP(w, req)

	assert.Nil(t, seen)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

type failingStore struct{ sessionRepo.SessionRepository }

func (failingStore) Get(context.Context, string) (*models.Session, error) {
	return nil, errors.New("redis down")
}

func TestSessionMiddlewareStoreDown(t *testing.T) {
	mgr := newManager(sessionRepo.NewMemorySessionRepo())
	s, token, err := mgr.Create(context.Background(), models.SessionUser{ID: "u1"})
	require.NoError(t, err)
	mgr.Store = failingStore{}

	var seen *models.SessionUser
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(mgr.Cookie(token, s))
	w := httptest.NewRecorder()
	sessionRouter(mgr, &seen).ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRequestLoggerLogsIdentity(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	utils.SetLogger(zap.New(core))
	defer utils.SetLogger(zap.NewNop())

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Set("role", models.RoleAdmin)
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "u1", fields["userID"])
	assert.Equal(t, models.RoleAdmin, fields["role"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRateLimitResponseCarriesCode(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t,
		`{"errors":[{"message":"Rate limit exceeded. Try again later.","extensions":{"code":"RATE_LIMITED"}}]}`,
		w.Body.String())
}
