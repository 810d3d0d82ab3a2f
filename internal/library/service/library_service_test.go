package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growcircle/growcircle-backend/internal/library/cache"
	"github.com/growcircle/growcircle-backend/internal/library/domain"
)

// A warm cache must answer reads without touching Firestore at all; the
// nil repository would panic if the service fell through.
func TestGetArticle_CacheHitSkipsRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewArticleCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	seeded := &domain.Article{
		Slug:        "plagas-comunes",
		Title:       "Plagas comunes",
		Category:    "plagas",
		PublishedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.SetArticle(ctx, seeded))

	svc := NewLibraryService(nil, c)
	got, err := svc.GetArticle(ctx, "plagas-comunes")
	require.NoError(t, err)
	assert.Equal(t, "Plagas comunes", got.Title)
}

func TestListCategory_CacheHitSkipsRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewArticleCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, c.SetCategory(ctx, "plagas", []domain.Article{{Slug: "plagas-comunes", Title: "Plagas comunes"}}))

	svc := NewLibraryService(nil, c)
	list, err := svc.ListCategory(ctx, "plagas")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "plagas-comunes", list[0].Slug)
}
