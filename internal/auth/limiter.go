package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter counts failed logins per email.
type LoginLimiter interface {
	// Allowed reports whether another attempt may be made.
	Allowed(ctx context.Context, email string) bool
	// Failed records a failed attempt.
	Failed(ctx context.Context, email string)
	// Reset forgets failures after a successful login.
	Reset(ctx context.Context, email string)
}

// NewLoginLimiter returns a Redis backed limiter, or one that never blocks
// when client is nil.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration, logger *zap.Logger) LoginLimiter {
	if client == nil || maxAttempts <= 0 || window <= 0 {
		return noopLimiter{}
	}
	return &redisLimiter{client: client, maxAttempts: int64(maxAttempts), window: window, logger: logger}
}

type noopLimiter struct{}

func (noopLimiter) Allowed(context.Context, string) bool { return true }
func (noopLimiter) Failed(context.Context, string)       {}
func (noopLimiter) Reset(context.Context, string)        {}

// redisLimiter fails open: a Redis outage never blocks a login.
type redisLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
	logger      *zap.Logger
}

func limiterKey(email string) string {
	return fmt.Sprintf("login:failures:%s", strings.ToLower(strings.TrimSpace(email)))
}

func (l *redisLimiter) Allowed(ctx context.Context, email string) bool {
	count, err := l.client.Get(ctx, limiterKey(email)).Int64()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return true
	}
	return count < l.maxAttempts
}

func (l *redisLimiter) Failed(ctx context.Context, email string) {
	key := limiterKey(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("failed to record login failure", zap.Error(err))
	}
}

func (l *redisLimiter) Reset(ctx context.Context, email string) {
	if err := l.client.Del(ctx, limiterKey(email)).Err(); err != nil {
		l.logger.Warn("failed to reset login failures", zap.Error(err))
	}
}
