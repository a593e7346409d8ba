package store

import (
	"context"
)

// KVStore persists index buckets as string values keyed by bucket name
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=KVStore=MockKVStore
type KVStore interface {
	// Get returns the value stored under key; found is false if the key was never written
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value string) error
	// Keys returns every key starting with prefix, sorted
	Keys(ctx context.Context, prefix string) ([]string, error)
	// DeletePrefix removes every key starting with prefix
	DeletePrefix(ctx context.Context, prefix string) error
}
