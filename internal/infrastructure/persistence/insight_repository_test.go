package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/backend/internal/domain/insight"
	"github.com/cargolink/backend/internal/domain/shared"
)

func newTestInsight(t *testing.T, title string, published bool) *insight.Insight {
	t.Helper()
	i, err := insight.NewInsight(title, "excerpt", "content body", insight.CategoryMarket)
	require.NoError(t, err)
	if published {
		i.Publish(time.Now())
	}
	return i
}

func TestGormInsightRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormInsightRepository(testDB(t))

	t.Run("save and find by id", func(t *testing.T) {
		i := newTestInsight(t, "운임 동향 1월", false)
		require.NoError(t, repo.Save(ctx, i))

		got, err := repo.FindByID(ctx, i.ID)
		require.NoError(t, err)
		assert.Equal(t, i.Title, got.Title)
		assert.Equal(t, insight.StatusDraft, got.Status)
	})

	t.Run("find by slug", func(t *testing.T) {
		i := newTestInsight(t, "Slug Lookup Target", false)
		require.NoError(t, repo.Save(ctx, i))

		got, err := repo.FindBySlug(ctx, i.Slug)
		require.NoError(t, err)
		assert.Equal(t, i.ID, got.ID)
	})

	t.Run("not found maps to domain error", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindBySlug(ctx, "no-such-slug")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("published listing excludes drafts", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestInsight(t, "공개 글", true)))
		require.NoError(t, repo.Save(ctx, newTestInsight(t, "초안 글", false)))

		filter := shared.DefaultFilter()
		published, err := repo.FindPublished(ctx, filter)
		require.NoError(t, err)
		for _, p := range published {
			assert.Equal(t, insight.StatusPublished, p.Status)
		}

		n, err := repo.CountPublished(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(len(published)), n)
	})

	t.Run("search filter", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestInsight(t, "수에즈 운하 통항 제한", true)))

		filter := shared.DefaultFilter()
		filter.Search = "수에즈"
		got, err := repo.FindPublished(ctx, filter)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Title, "수에즈")
	})

	t.Run("increment view count", func(t *testing.T) {
		i := newTestInsight(t, "조회수 테스트", true)
		require.NoError(t, repo.Save(ctx, i))

		require.NoError(t, repo.IncrementViewCount(ctx, i.ID))
		require.NoError(t, repo.IncrementViewCount(ctx, i.ID))

		got, err := repo.FindByID(ctx, i.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ViewCount)

		assert.ErrorIs(t, repo.IncrementViewCount(ctx, uuid.New()), shared.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		i := newTestInsight(t, "삭제 대상", false)
		require.NoError(t, repo.Save(ctx, i))
		require.NoError(t, repo.Delete(ctx, i.ID))
		assert.ErrorIs(t, repo.Delete(ctx, i.ID), shared.ErrNotFound)
	})
}
