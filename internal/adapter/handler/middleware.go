package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const identityKey = "identity"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

// RequireAuth resolves the bearer token and stores the caller's Identity on
// the context.
func RequireAuth(auth Authenticator, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, log, domain.ErrUnauthenticated)
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(c, log, err)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireCapability rejects callers whose role lacks c before the handler runs.
func RequireCapability(capability domain.Capability, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := domain.Authorize(identity(c), capability); err != nil {
			writeError(c, log, err)
			return
		}
		c.Next()
	}
}

func identity(c *gin.Context) domain.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}
	}
	id, _ := v.(domain.Identity)
	return id
}

func Logger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})

		if id := identity(c); id.UserID != uuid.Nil {
			entry = entry.WithField("user_id", id.UserID)
		}

		if c.Writer.Status() >= http.StatusBadRequest {
			entry.Warn("request failed")
		} else {
			entry.Info("request processed")
		}
	}
}

func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idle:     10 * time.Minute,
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, key)
		}
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "too many requests, please try again later",
				Code:  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}
