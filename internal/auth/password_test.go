package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)

	assert.NoError(t, ComparePassword(hashed, "correct horse"))
	assert.ErrorIs(t, ComparePassword(hashed, "wrong"), ErrPasswordMismatch)
}

func TestNewLoginLimiter_DisabledWithoutRedis(t *testing.T) {
	limiter := NewLoginLimiter(nil, 5, time.Minute, zap.NewNop())
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		limiter.Failed(ctx, "ann@example.org")
	}
	assert.True(t, limiter.Allowed(ctx, "ann@example.org"))
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewLoginLimiter(client, 1, time.Minute, zap.NewNop())
	ctx := context.Background()
	limiter.Failed(ctx, "ann@example.org")
	assert.True(t, limiter.Allowed(ctx, "ann@example.org"))
}

func TestLimiterKeyNormalisesEmail(t *testing.T) {
	assert.Equal(t, limiterKey("ann@example.org"), limiterKey("  Ann@Example.org "))
}
