package index

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/store"
)

// Index is the local secondary index of object ids grouped into named buckets.
// Buckets keep insertion order and contain no duplicates; ids that differ only
// in zero padding or hex case count as the same object.
//
//go:generate mockgen -source=index.go -destination=../mocks/index.go -package=mocks -mock_names=Index=MockIndex
type Index interface {
	// Add appends id to bucket unless it is already present
	Add(ctx context.Context, bucket string, id domain.ObjectID) error

	// Get returns the ids in bucket in insertion order.
	// Missing, unreadable or corrupted buckets read as empty.
	Get(ctx context.Context, bucket string) []domain.ObjectID

	// Remove drops id from bucket if present
	Remove(ctx context.Context, bucket string, id domain.ObjectID) error

	// Clear removes every bucket in the index namespace
	Clear(ctx context.Context) error

	// Buckets lists every bucket in the index namespace
	Buckets(ctx context.Context) ([]string, error)

	// AddSuit records a suit in the global and per-author buckets
	AddSuit(ctx context.Context, id, author domain.ObjectID) error

	// AddLike records a like in the global and per-suit buckets
	AddLike(ctx context.Context, id, suitID domain.ObjectID) error

	// AddComment records a comment in the global and per-suit buckets
	AddComment(ctx context.Context, id, suitID domain.ObjectID) error

	// AddProfile records a profile in the per-owner bucket
	AddProfile(ctx context.Context, id, owner domain.ObjectID) error
}

type index struct {
	store store.KVStore

	// mu serializes read-modify-write cycles within this process
	mu sync.Mutex
}

// NewIndex creates an index persisted in kv
func NewIndex(kv store.KVStore) Index {
	return &index{store: kv}
}

func (i *index) Add(ctx context.Context, bucket string, id domain.ObjectID) error {
	if id == "" {
		return fmt.Errorf("%w: empty id for bucket %s", domain.ErrInvalidObjectID, bucket)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	ids := i.load(ctx, bucket)
	for _, existing := range ids {
		if existing.Equal(id) {
			return nil
		}
	}

	ids = append(ids, id)
	if err := i.save(ctx, bucket, ids); err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Indexed object", zap.String("bucket", bucket), zap.String("objectID", id.String()))
	return nil
}

func (i *index) Get(ctx context.Context, bucket string) []domain.ObjectID {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.load(ctx, bucket)
}

func (i *index) Remove(ctx context.Context, bucket string, id domain.ObjectID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	ids := i.load(ctx, bucket)
	kept := ids[:0]
	for _, existing := range ids {
		if !existing.Equal(id) {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}

	return i.save(ctx, bucket, kept)
}

func (i *index) Clear(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.store.DeletePrefix(ctx, KEY_NAMESPACE); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	logger.InfoCtx(ctx, "Cleared object index")
	return nil
}

func (i *index) Buckets(ctx context.Context) ([]string, error) {
	keys, err := i.store.Keys(ctx, KEY_NAMESPACE)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	return keys, nil
}

func (i *index) AddSuit(ctx context.Context, id, author domain.ObjectID) error {
	if err := i.Add(ctx, BUCKET_SUITS, id); err != nil {
		return err
	}
	return i.Add(ctx, SuitsByAuthor(author), id)
}

func (i *index) AddLike(ctx context.Context, id, suitID domain.ObjectID) error {
	if err := i.Add(ctx, BUCKET_LIKES, id); err != nil {
		return err
	}
	return i.Add(ctx, LikesBySuit(suitID), id)
}

func (i *index) AddComment(ctx context.Context, id, suitID domain.ObjectID) error {
	if err := i.Add(ctx, BUCKET_COMMENTS, id); err != nil {
		return err
	}
	return i.Add(ctx, CommentsBySuit(suitID), id)
}

func (i *index) AddProfile(ctx context.Context, id, owner domain.ObjectID) error {
	return i.Add(ctx, ProfilesByOwner(owner), id)
}

// load reads a bucket; callers hold mu
func (i *index) load(ctx context.Context, bucket string) []domain.ObjectID {
	raw, found, err := i.store.Get(ctx, bucket)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read index bucket, treating as empty",
			zap.String("bucket", bucket),
			zap.Error(err))
		return []domain.ObjectID{}
	}
	if !found || raw == "" {
		return []domain.ObjectID{}
	}

	var ids []domain.ObjectID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.WarnCtx(ctx, "Corrupted index bucket, treating as empty",
			zap.String("bucket", bucket),
			zap.Error(err))
		return []domain.ObjectID{}
	}
	if ids == nil {
		return []domain.ObjectID{}
	}

	return ids
}

// save writes a bucket; callers hold mu
func (i *index) save(ctx context.Context, bucket string, ids []domain.ObjectID) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal bucket %s: %w", bucket, err)
	}
	if err := i.store.Set(ctx, bucket, string(data)); err != nil {
		return fmt.Errorf("failed to write bucket %s: %w", bucket, err)
	}
	return nil
}
