package verification

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"bookwise/utils"

	"github.com/go-redis/redis/v8"
)

// AttemptLimiter caps wrong OTP submissions per verification token.
type AttemptLimiter interface {
	Exceeded(ctx context.Context, token string) (bool, error)
	RecordFailure(ctx context.Context, token string, ttl time.Duration) error
}

// RedisAttemptLimiter counts failures in Redis under a digest of the token.
type RedisAttemptLimiter struct {
	client *redis.Client
	max    int
}

func NewRedisAttemptLimiter(client *redis.Client, max int) *RedisAttemptLimiter {
	return &RedisAttemptLimiter{client: client, max: max}
}

func attemptKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return utils.OTPAttemptPrefix + hex.EncodeToString(sum[:])
}

func (l *RedisAttemptLimiter) Exceeded(ctx context.Context, token string) (bool, error) {
	if l.max <= 0 {
		return false, nil
	}
	count, err := l.client.Get(ctx, attemptKey(token)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read otp attempts: %w", err)
	}
	return count >= l.max, nil
}

// RecordFailure increments the counter. The key outlives the token by at most ttl.
func (l *RedisAttemptLimiter) RecordFailure(ctx context.Context, token string, ttl time.Duration) error {
	key := attemptKey(token)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record otp attempt: %w", err)
	}
	return nil
}
