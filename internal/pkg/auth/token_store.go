package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetTokenKeyPrefix = "auth:reset:"

// RedisTokenStore keeps reset token ids in Redis with the token lifetime as TTL
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Register(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, resetTokenKeyPrefix+tokenID, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisTokenStore) Lookup(ctx context.Context, tokenID string) (uint, bool, error) {
	raw, err := s.client.Get(ctx, resetTokenKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *RedisTokenStore) Consume(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, resetTokenKeyPrefix+tokenID).Err()
}
