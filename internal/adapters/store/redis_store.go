package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mikey/broker-monitor/internal/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps every extraction as a field of a single redis hash
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisStore connects to redis and verifies the connection
func NewRedisStore(ctx context.Context, opts *redis.Options, hashKey string, logger *zap.Logger) (*RedisStore, error) {
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("Redis extraction store ready", zap.String("address", opts.Addr), zap.String("hash", hashKey))

	return &RedisStore{client: client, key: hashKey, logger: logger}, nil
}

// Save stores an entry under key, refusing to overwrite an existing one
func (s *RedisStore) Save(ctx context.Context, key string, entry core.StoreEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode extraction: %w", err)
	}

	created, err := s.client.HSetNX(ctx, s.key, key, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to store extraction: %w", err)
	}
	if !created {
		return ErrDuplicateKey
	}
	return nil
}

// All returns every stored entry
func (s *RedisStore) All(ctx context.Context) (map[string]core.StoreEntry, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read extractions: %w", err)
	}

	out := make(map[string]core.StoreEntry, len(raw))
	for k, v := range raw {
		var entry core.StoreEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			s.logger.Warn("Skipping undecodable extraction", zap.String("key", k), zap.Error(err))
			continue
		}
		out[k] = entry
	}
	return out, nil
}

// Stop closes the redis connection
func (s *RedisStore) Stop() {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close redis client", zap.Error(err))
	}
}
