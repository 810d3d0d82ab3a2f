package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/growcircle/growcircle-backend/internal/library/domain"
)

const (
	articleKeyPrefix  = "lib:article:"  // lib:article:{slug}
	categoryKeyPrefix = "lib:category:" // lib:category:{category}
	cacheTTL          = 15 * time.Minute
)

// ArticleCache is a redis-backed cache for library reads. A miss returns
// (nil, nil); callers fall through to Firestore.
type ArticleCache struct {
	client *redis.Client
}

func NewArticleCache(client *redis.Client) *ArticleCache {
	return &ArticleCache{client: client}
}

func (c *ArticleCache) articleKey(slug string) string {
	return fmt.Sprintf("%s%s", articleKeyPrefix, slug)
}

func (c *ArticleCache) categoryKey(category string) string {
	return fmt.Sprintf("%s%s", categoryKeyPrefix, category)
}

// GetArticle returns the cached article or nil on a miss.
func (c *ArticleCache) GetArticle(ctx context.Context, slug string) (*domain.Article, error) {
	data, err := c.client.Get(ctx, c.articleKey(slug)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get article: %w", err)
	}

	var a domain.Article
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, fmt.Errorf("cache decode article: %w", err)
	}
	return &a, nil
}

// SetArticle stores an article with the cache TTL.
func (c *ArticleCache) SetArticle(ctx context.Context, a *domain.Article) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("cache encode article: %w", err)
	}
	if err := c.client.Set(ctx, c.articleKey(a.Slug), data, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set article: %w", err)
	}
	return nil
}

// GetCategory returns the cached category listing or nil on a miss.
func (c *ArticleCache) GetCategory(ctx context.Context, category string) ([]domain.Article, error) {
	data, err := c.client.Get(ctx, c.categoryKey(category)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get category: %w", err)
	}

	var list []domain.Article
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("cache decode category: %w", err)
	}
	return list, nil
}

// SetCategory stores a category listing with the cache TTL.
func (c *ArticleCache) SetCategory(ctx context.Context, category string, list []domain.Article) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("cache encode category: %w", err)
	}
	if err := c.client.Set(ctx, c.categoryKey(category), data, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set category: %w", err)
	}
	return nil
}

// Invalidate drops the cached article and its category listing after a
// write.
func (c *ArticleCache) Invalidate(ctx context.Context, slug, category string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, c.articleKey(slug))
	pipe.Del(ctx, c.categoryKey(category))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
