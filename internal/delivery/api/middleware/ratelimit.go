package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"usersvc/config"
	domainerrors "usersvc/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per client IP token bucket for anonymous endpoints.
type RateLimiter struct {
	disabled bool
	limit    rate.Limit
	burst    int

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := cfg.RateLimit

	return &RateLimiter{
		disabled: rl.Disabled,
		limit:    rate.Limit(float64(rl.Requests) / rl.Window.Seconds()),
		burst:    rl.Burst,
		clients:  make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

// Limit rejects with 429 and Retry-After once the client's bucket is empty.
func (r *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if r.disabled {
		return next
	}

	return func(c echo.Context) error {
		now := r.now()
		reservation := r.get(c.RealIP(), now).ReserveN(now, 1)

		if delay := reservation.DelayFrom(now); delay > 0 {
			reservation.CancelAt(now)
			c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(delay.Seconds()))))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

func (r *RateLimiter) get(ip string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) > limiterSweepInterval {
		for key, client := range r.clients {
			if now.Sub(client.lastSeen) > limiterIdleTTL {
				delete(r.clients, key)
			}
		}
		r.lastSweep = now
	}

	client, ok := r.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter
}
