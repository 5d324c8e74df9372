package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryViewDedupStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryViewDedupStore()
	defer store.Close()

	t.Run("first view counts, repeat does not", func(t *testing.T) {
		first, err := store.MarkViewed(ctx, "visitor-a", "insight-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, first)

		again, err := store.MarkViewed(ctx, "visitor-a", "insight-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("different visitors count separately", func(t *testing.T) {
		first, err := store.MarkViewed(ctx, "visitor-b", "insight-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("different content counts separately", func(t *testing.T) {
		first, err := store.MarkViewed(ctx, "visitor-a", "insight-2", time.Hour)
		require.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("expired entry counts again", func(t *testing.T) {
		_, err := store.MarkViewed(ctx, "visitor-c", "insight-1", time.Millisecond)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		first, err := store.MarkViewed(ctx, "visitor-c", "insight-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := NewInMemoryViewDedupStore()
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())
	})
}

func TestInMemoryViewDedupStore_Cleanup(t *testing.T) {
	store := NewInMemoryViewDedupStore()
	defer store.Close()

	ctx := context.Background()
	_, err := store.MarkViewed(ctx, "v", "c", time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 1, store.Size())

	time.Sleep(5 * time.Millisecond)
	store.cleanup()
	assert.Equal(t, 0, store.Size())
}
