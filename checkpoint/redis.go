package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gogpu/procgen"
)

// RedisStore keeps envelopes as Redis string values under a key prefix.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore returns a store using rdb. Keys are stored as prefix+key.
// A zero ttl keeps values until deleted.
func NewRedisStore(rdb redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return s.prefix + key, nil
}

// Put stores blob under key with the store's TTL.
func (s *RedisStore) Put(ctx context.Context, key string, blob []byte) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, k, blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("checkpoint: redis set: %w", err)
	}
	procgen.Logger().Debug("checkpoint: redis set", "key", k, "bytes", len(blob), "ttl", s.ttl)
	return nil
}

// Get returns the blob under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := s.key(key)
	if err != nil {
		return nil, err
	}
	blob, err := s.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("checkpoint: redis get: %w", err)
	}
	return blob, nil
}

// Delete removes key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	if err := s.rdb.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("checkpoint: redis del: %w", err)
	}
	return nil
}
