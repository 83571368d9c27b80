package middleware

import (
	"net/http"
	"sync"
	"time"

	"staffhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds one token bucket per client IP.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	every    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const visitorIdleTimeout = 10 * time.Minute

// getLimiter returns the limiter for ip, creating one if needed, and drops
// limiters of clients idle longer than visitorIdleTimeout.
func (s *rateLimiterStore) getLimiter(ip string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.limiters[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.every, s.burst)}
		s.limiters[ip] = v
	}
	v.lastSeen = now

	if len(s.limiters) > 1024 {
		for k, other := range s.limiters {
			if now.Sub(other.lastSeen) > visitorIdleTimeout {
				delete(s.limiters, k)
			}
		}
	}
	return v.limiter
}

// RateLimitMiddleware allows perMinute requests per client IP with a burst of
// the same size. A non-positive perMinute disables limiting.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := &rateLimiterStore{
		limiters: make(map[string]*visitor),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.getLimiter(ip, time.Now()).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			utils.AbortWithError(c, http.StatusTooManyRequests, utils.CodeRateLimited, "Rate limit exceeded. Try again later.")
			return
		}
		c.Next()
	}
}
