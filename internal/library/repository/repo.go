package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/growcircle/growcircle-backend/internal/library/domain"
)

const (
	articlesCollection = "articles"
	maxListSize        = 100
)

// ArticleRepository handles Firestore operations for the content library.
type ArticleRepository struct {
	fs *firestore.Client
}

func NewArticleRepository(fs *firestore.Client) *ArticleRepository {
	return &ArticleRepository{fs: fs}
}

// GetBySlug retrieves one article.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	snap, err := r.fs.Collection(articlesCollection).Doc(slug).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	var a domain.Article
	if err := snap.DataTo(&a); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	return &a, nil
}

// ListByCategory returns the newest articles of a category.
func (r *ArticleRepository) ListByCategory(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	if limit <= 0 || limit > maxListSize {
		limit = maxListSize
	}

	iter := r.fs.Collection(articlesCollection).
		Where("category", "==", category).
		OrderBy("published_at", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Article, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}

		var a domain.Article
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Upsert writes an article under its slug.
func (r *ArticleRepository) Upsert(ctx context.Context, a *domain.Article) error {
	if a.Slug == "" || a.Title == "" {
		return fmt.Errorf("slug and title required")
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now().UTC()
	}

	if _, err := r.fs.Collection(articlesCollection).Doc(a.Slug).Set(ctx, a); err != nil {
		return fmt.Errorf("upsert article: %w", err)
	}
	return nil
}
