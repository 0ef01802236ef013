package cache

import (
	"context"
	"errors"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"time"
)

type RedisStore struct {
	rc     *redis.Client
	logger *zap.SugaredLogger
}

func NewRedisStore(rc *redis.Client, logger *zap.SugaredLogger) *RedisStore {
	return &RedisStore{
		rc:     rc,
		logger: logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.rc.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	} else if err != nil {
		s.logger.Errorf("Redis error when fetching %v: %v", key, err.Error())
		return nil, false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.rc.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Errorf("Redis error when writing %v: %v", key, err.Error())
	}
}
