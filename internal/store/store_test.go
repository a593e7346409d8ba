package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunKVStoreTests runs the behavioural suite shared by every KVStore implementation
func RunKVStoreTests(t *testing.T, newStore func(t *testing.T) KVStore) {
	t.Run("GetMissingKey", func(t *testing.T) {
		s := newStore(t)

		value, found, err := s.Get(context.Background(), "suitter_suit_ids")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "suitter_suit_ids", `["0x1"]`))

		value, found, err := s.Get(ctx, "suitter_suit_ids")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `["0x1"]`, value)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "suitter_like_ids", `["0x1"]`))
		require.NoError(t, s.Set(ctx, "suitter_like_ids", `["0x1","0x2"]`))

		value, found, err := s.Get(ctx, "suitter_like_ids")
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `["0x1","0x2"]`, value)
	})

	t.Run("KeysByPrefix", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "suitter_suit_ids", `[]`))
		require.NoError(t, s.Set(ctx, "suitter_suit_ids_by_author_0x111", `[]`))
		require.NoError(t, s.Set(ctx, "suitter_like_ids", `[]`))
		require.NoError(t, s.Set(ctx, "other_key", `[]`))

		keys, err := s.Keys(ctx, "suitter_suit_ids")
		require.NoError(t, err)
		assert.Equal(t, []string{"suitter_suit_ids", "suitter_suit_ids_by_author_0x111"}, keys)

		keys, err = s.Keys(ctx, "suitter_")
		require.NoError(t, err)
		assert.Len(t, keys, 3)
	})

	t.Run("DeletePrefix", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "suitter_suit_ids", `["0x1"]`))
		require.NoError(t, s.Set(ctx, "suitter_comment_ids_by_suit_0x1", `["0x2"]`))
		require.NoError(t, s.Set(ctx, "keep_me", `["0x3"]`))

		require.NoError(t, s.DeletePrefix(ctx, "suitter_"))

		_, found, err := s.Get(ctx, "suitter_suit_ids")
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = s.Get(ctx, "suitter_comment_ids_by_suit_0x1")
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = s.Get(ctx, "keep_me")
		require.NoError(t, err)
		assert.True(t, found)
	})
}

func TestMemoryStore(t *testing.T) {
	RunKVStoreTests(t, func(t *testing.T) KVStore {
		return NewMemoryStore()
	})
}
