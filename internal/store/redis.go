package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
)

const (
	redisScanCount  = 500
	redisDeleteSize = 500
)

type redisStore struct {
	client adapter.RedisClient
}

// NewRedisStore creates a Redis-backed KVStore
func NewRedisStore(client adapter.RedisClient) KVStore {
	return &redisStore{client: client}
}

// Get retrieves a bucket's raw value
func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key)
	if err != nil {
		if adapter.IsRedisNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get bucket %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores a bucket's raw value
func (s *redisStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to set bucket %s: %w", key, err)
	}
	return nil
}

// Keys scans for bucket names with the given prefix
func (s *redisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		page, next, err := s.client.Scan(ctx, cursor, prefix+"*", redisScanCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan buckets: %w", err)
		}
		keys = append(keys, page...)
		if next == 0 {
			break
		}
		cursor = next
	}

	// SCAN may return a key more than once
	sort.Strings(keys)
	return compactSorted(keys), nil
}

// DeletePrefix deletes every bucket with the given prefix
func (s *redisStore) DeletePrefix(ctx context.Context, prefix string) error {
	keys, err := s.Keys(ctx, prefix)
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += redisDeleteSize {
		end := min(start+redisDeleteSize, len(keys))
		if err := s.client.Del(ctx, keys[start:end]...); err != nil {
			return fmt.Errorf("failed to delete buckets: %w", err)
		}
	}

	return nil
}

func compactSorted(keys []string) []string {
	out := keys[:0]
	for i, k := range keys {
		if i > 0 && keys[i-1] == k {
			continue
		}
		out = append(out, k)
	}
	return out
}
