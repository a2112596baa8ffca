package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// RedisManager stores session tokens in redis under
// session:<token> -> user id, expiring after the configured TTL.
// Redis serializes concurrent access, so the mapping stays consistent
// under parallel requests.
type RedisManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisManager connects to redis at addr and verifies the connection.
func NewRedisManager(ctx context.Context, addr string, ttl time.Duration) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect error: %w", err)
	}
	return &RedisManager{client: client, ttl: ttl}, nil
}

// NewRedisManagerWithClient wraps an existing client. Used by tests.
func NewRedisManagerWithClient(client *redis.Client, ttl time.Duration) *RedisManager {
	return &RedisManager{client: client, ttl: ttl}
}

// Create mints a fresh opaque token bound to userID.
func (m *RedisManager) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	key := common.SessionKeyPrefix + token
	if err := m.client.Set(ctx, key, userID, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store error: %w", err)
	}
	return token, nil
}

// Get resolves a token to its user id. Unknown or expired tokens are
// reported as common.ErrorUnauthorized.
func (m *RedisManager) Get(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, common.ErrorUnauthorized
	}
	val, err := m.client.Get(ctx, common.SessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, common.ErrorUnauthorized
		}
		return 0, fmt.Errorf("session store error: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

// Destroy removes the token. Destroying an unknown token is not an error:
// the observable outcome (no session) is the same.
func (m *RedisManager) Destroy(ctx context.Context, token string) error {
	if err := m.client.Del(ctx, common.SessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session store error: %w", err)
	}
	return nil
}

// Close releases the underlying redis connection.
func (m *RedisManager) Close() error {
	return m.client.Close()
}
