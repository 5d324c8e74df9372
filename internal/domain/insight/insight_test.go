package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsight(t *testing.T) {
	t.Run("creates a draft with slug", func(t *testing.T) {
		i, err := NewInsight("2026 해상운임 전망", "요약", "본문", CategoryMarket)
		require.NoError(t, err)
		assert.Equal(t, StatusDraft, i.Status)
		assert.Equal(t, "2026-해상운임-전망", i.Slug)
		assert.Nil(t, i.PublishedAt)
		assert.NotEqual(t, "", i.ID.String())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewInsight("   ", "", "body", CategoryNews)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := NewInsight("title", "", "  ", CategoryNews)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewInsight("title", "", "body", Category("gossip"))
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestInsight_Lifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("publish stamps time once", func(t *testing.T) {
		i, err := NewInsight("t", "", "b", CategoryGuide)
		require.NoError(t, err)

		i.Publish(now)
		require.True(t, i.IsPublished())
		require.NotNil(t, i.PublishedAt)
		first := *i.PublishedAt

		i.Unpublish()
		assert.False(t, i.IsPublished())

		i.Publish(now.Add(48 * time.Hour))
		assert.Equal(t, first, *i.PublishedAt)
	})

	t.Run("publish is idempotent on version", func(t *testing.T) {
		i, err := NewInsight("t", "", "b", CategoryGuide)
		require.NoError(t, err)
		i.Publish(now)
		v := i.Version
		i.Publish(now)
		assert.Equal(t, v, i.Version)
	})

	t.Run("update keeps slug", func(t *testing.T) {
		i, err := NewInsight("original title", "", "b", CategoryGuide)
		require.NoError(t, err)
		slug := i.Slug
		require.NoError(t, i.Update("completely new title", "e", "b2", CategoryNews))
		assert.Equal(t, slug, i.Slug)
		assert.Equal(t, CategoryNews, i.Category)
	})
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Incoterms 2020 완벽 가이드": "incoterms-2020-완벽-가이드",
		"  Spaced   Out!!  ":     "spaced-out",
		"CFR vs CIF, 뭐가 다른가?":    "cfr-vs-cif-뭐가-다른가",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}
