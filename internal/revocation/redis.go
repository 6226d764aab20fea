package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "student-auth-service/pkg/errors"
)

const (
	connectPingTimeout = 3 * time.Second
	defaultOpTimeout   = 2 * time.Second
)

// NewRedisClient returns a configured go-redis client from URL (e.g., redis://localhost:6379/0).
func NewRedisClient(redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("empty redis url")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// RedisStore implements Store on a Redis key space with native TTL expiry.
type RedisStore struct {
	client    *redis.Client
	opTimeout time.Duration
}

func NewRedisStore(client *redis.Client, opTimeout time.Duration) *RedisStore {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &RedisStore{client: client, opTimeout: opTimeout}
}

func (s *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	n, err := s.client.Exists(ctx, KeyPrefix+token).Result()
	if err != nil {
		return false, apperrors.StoreUnavailable("revocation check failed", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token, subject string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, KeyPrefix+token, subject, ttl).Err(); err != nil {
		return apperrors.StoreUnavailable("revocation write failed", err)
	}
	return nil
}
