package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewDedupStore records that a visitor has viewed a piece of content,
// so repeat loads within the TTL do not inflate view counts.
type ViewDedupStore interface {
	// MarkViewed records the view and reports whether it is the first one
	// within the TTL window.
	MarkViewed(ctx context.Context, visitorKey, contentID string, ttl time.Duration) (bool, error)
	Close() error
}

// RedisViewDedupStore implements ViewDedupStore on Redis, sharing dedup
// state across instances.
type RedisViewDedupStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisOptions holds Redis connection settings for the dedup store.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisViewDedupStore connects to Redis and verifies the connection.
func NewRedisViewDedupStore(opts RedisOptions) (*RedisViewDedupStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisViewDedupStore{
		client:    client,
		keyPrefix: "view:dedup:",
	}, nil
}

// NewRedisViewDedupStoreWithClient wraps an existing client, mainly for tests.
func NewRedisViewDedupStoreWithClient(client *redis.Client, keyPrefix string) *RedisViewDedupStore {
	if keyPrefix == "" {
		keyPrefix = "view:dedup:"
	}
	return &RedisViewDedupStore{client: client, keyPrefix: keyPrefix}
}

// MarkViewed uses SETNX so the check and the mark are one atomic operation.
func (s *RedisViewDedupStore) MarkViewed(ctx context.Context, visitorKey, contentID string, ttl time.Duration) (bool, error) {
	key := s.keyPrefix + contentID + ":" + visitorKey
	first, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark view: %w", err)
	}
	return first, nil
}

// Close closes the Redis client
func (s *RedisViewDedupStore) Close() error {
	return s.client.Close()
}

// Ensure RedisViewDedupStore implements ViewDedupStore
var _ ViewDedupStore = (*RedisViewDedupStore)(nil)
