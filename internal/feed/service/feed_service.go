package service

import (
	"context"
	"fmt"
	"time"

	"github.com/growcircle/growcircle-backend/internal/feed/domain"
	"github.com/growcircle/growcircle-backend/internal/feed/repository"
	profilesrepo "github.com/growcircle/growcircle-backend/internal/profiles/repository"
)

// FeedService composes the post repository with the follow graph to build
// the two feed views.
type FeedService struct {
	posts    *repository.PostRepository
	profiles *profilesrepo.ProfileRepository
}

func NewFeedService(posts *repository.PostRepository, profiles *profilesrepo.ProfileRepository) *FeedService {
	return &FeedService{posts: posts, profiles: profiles}
}

// GlobalFeed returns the most recent posts across the network.
func (s *FeedService) GlobalFeed(ctx context.Context, before *time.Time, limit int) (*domain.FeedPage, error) {
	return s.posts.ListRecent(ctx, before, limit)
}

// FollowingFeed returns recent posts from the users the caller follows,
// plus the caller's own posts.
func (s *FeedService) FollowingFeed(ctx context.Context, uid string, limit int) (*domain.FeedPage, error) {
	following, err := s.profiles.ListFollowing(ctx, uid, 0)
	if err != nil {
		return nil, fmt.Errorf("resolve following: %w", err)
	}

	authors := append(following, uid)
	return s.posts.ListByAuthors(ctx, authors, limit)
}
