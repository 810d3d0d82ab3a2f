package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growcircle/growcircle-backend/internal/feed/domain"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultPageSize, clampLimit(0))
	assert.Equal(t, defaultPageSize, clampLimit(-5))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, maxPageSize, clampLimit(1000))
}

func TestPageOf_CursorOnlyWhenFull(t *testing.T) {
	now := time.Now().UTC()
	posts := []domain.Post{
		{ID: "a", CreatedAt: now},
		{ID: "b", CreatedAt: now.Add(-time.Minute)},
	}

	page := pageOf(posts, 2)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, posts[1].CreatedAt, *page.NextCursor)

	page = pageOf(posts, 5)
	assert.Nil(t, page.NextCursor, "a short page has no next cursor")
}

func TestPageOf_EmptyNeverNil(t *testing.T) {
	page := pageOf(nil, 20)
	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Posts)
}
