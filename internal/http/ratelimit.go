package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// registerLimiter enforces a per-client-address token bucket on the
// registration endpoint. The service must stay callable with limiting
// disabled, so construction is optional (see NewHandler).
type registerLimiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	limit rate.Limit
	burst int
}

func newRegisterLimiter(perMinute int) *registerLimiter {
	return &registerLimiter{
		perIP: make(map[string]*rate.Limiter),
		limit: rate.Limit(float64(perMinute) / 60.0),
		burst: perMinute,
	}
}

func (l *registerLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	lim, ok := l.perIP[clientIP]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.perIP[clientIP] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func (l *registerLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
