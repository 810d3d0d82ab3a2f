package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growcircle/growcircle-backend/internal/library/domain"
)

func newTestCache(t *testing.T) (*ArticleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewArticleCache(client), mr
}

func testArticle() *domain.Article {
	return &domain.Article{
		Slug:        "riego-en-floracion",
		Title:       "Riego en floración",
		Category:    "riego",
		Summary:     "Cómo ajustar el riego durante la floración.",
		Body:        "Durante la floración la planta...",
		Tags:        []string{"riego", "floración"},
		PublishedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestArticleCache_MissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	got, err := c.GetArticle(ctx, "riego-en-floracion")
	require.NoError(t, err)
	assert.Nil(t, got, "cold cache must miss")

	require.NoError(t, c.SetArticle(ctx, testArticle()))

	got, err = c.GetArticle(ctx, "riego-en-floracion")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Riego en floración", got.Title)
	assert.Equal(t, []string{"riego", "floración"}, got.Tags)
}

func TestArticleCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetArticle(ctx, testArticle()))

	mr.FastForward(cacheTTL + time.Second)

	got, err := c.GetArticle(ctx, "riego-en-floracion")
	require.NoError(t, err)
	assert.Nil(t, got, "expired entry must miss")
}

func TestArticleCache_CategoryRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	list, err := c.GetCategory(ctx, "riego")
	require.NoError(t, err)
	assert.Nil(t, list)

	require.NoError(t, c.SetCategory(ctx, "riego", []domain.Article{*testArticle()}))

	list, err = c.GetCategory(ctx, "riego")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "riego-en-floracion", list[0].Slug)
}

func TestArticleCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	a := testArticle()
	require.NoError(t, c.SetArticle(ctx, a))
	require.NoError(t, c.SetCategory(ctx, a.Category, []domain.Article{*a}))

	require.NoError(t, c.Invalidate(ctx, a.Slug, a.Category))

	got, err := c.GetArticle(ctx, a.Slug)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := c.GetCategory(ctx, a.Category)
	require.NoError(t, err)
	assert.Nil(t, list)
}
