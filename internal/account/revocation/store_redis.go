package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for revoked tokens.
const revokedTokenKeyPrefix = "trl:jti:"

// RedisList is a Redis-backed token revocation list, the recommended
// implementation when multiple instances share revocation state.
type RedisList struct {
	client *redis.Client
}

// NewRedisList constructs a Redis-backed token revocation list.
func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

// Revoke adds a token to the revocation list until its natural expiry.
// Uses SET with TTL so entries clean themselves up.
func (l *RedisList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	// Key existence is the marker; the value is irrelevant.
	return l.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token is in the revocation list.
// Returns false if the key doesn't exist (not revoked, or already expired).
func (l *RedisList) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	_, err := l.client.Get(ctx, revokedTokenKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
