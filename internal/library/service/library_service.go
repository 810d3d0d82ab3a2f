package service

import (
	"context"
	"log"

	"github.com/growcircle/growcircle-backend/internal/library/cache"
	"github.com/growcircle/growcircle-backend/internal/library/domain"
	"github.com/growcircle/growcircle-backend/internal/library/repository"
)

// LibraryService serves content-library reads through the redis cache and
// keeps it coherent on writes. Cache failures degrade to Firestore reads
// rather than failing the request.
type LibraryService struct {
	repo  *repository.ArticleRepository
	cache *cache.ArticleCache
}

func NewLibraryService(repo *repository.ArticleRepository, c *cache.ArticleCache) *LibraryService {
	return &LibraryService{repo: repo, cache: c}
}

// GetArticle returns one article, cache first.
func (s *LibraryService) GetArticle(ctx context.Context, slug string) (*domain.Article, error) {
	if cached, err := s.cache.GetArticle(ctx, slug); err != nil {
		log.Printf("[library] article cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetArticle(ctx, a); err != nil {
		log.Printf("[library] article cache write failed: %v", err)
	}
	return a, nil
}

// ListCategory returns a category listing, cache first.
func (s *LibraryService) ListCategory(ctx context.Context, category string) ([]domain.Article, error) {
	if cached, err := s.cache.GetCategory(ctx, category); err != nil {
		log.Printf("[library] category cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	list, err := s.repo.ListByCategory(ctx, category, 0)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCategory(ctx, category, list); err != nil {
		log.Printf("[library] category cache write failed: %v", err)
	}
	return list, nil
}

// UpsertArticle writes the article and invalidates its cache entries.
func (s *LibraryService) UpsertArticle(ctx context.Context, a *domain.Article) error {
	if err := s.repo.Upsert(ctx, a); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, a.Slug, a.Category); err != nil {
		log.Printf("[library] cache invalidation failed: %v", err)
	}
	return nil
}
