package middleware

import (
	"net/http"
	"sync"
	"time"

	"finance-hub/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	visitorSweepEvery  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client IP. Idle buckets are
// swept lazily on request instead of by a background goroutine.
type visitorLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newVisitorLimiter(rps int, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// RateLimiter creates a middleware for rate limiting requests per IP using
// 5 requests per second with a burst of 10
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(5, 10)
}

// RateLimiterWithConfig creates a rate limiter with custom configuration.
// Each call owns its own visitor table.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	return newVisitorLimiter(rps, burst).middleware()
}

func (l *visitorLimiter) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP()) {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, errors.NewErrorResponse(
					errors.SystemRateLimitExceeded,
					GetTraceID(c),
				))
			}

			return next(c)
		}
	}
}

func (l *visitorLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= visitorSweepEvery {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTimeout {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (l *visitorLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
