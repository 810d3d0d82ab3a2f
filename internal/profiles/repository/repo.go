package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/growcircle/growcircle-backend/internal/profiles/domain"
)

const (
	usersCollection     = "users"
	followingSubcoll    = "following"
	followersSubcoll    = "followers"
	defaultListPageSize = 50
)

// ProfileRepository handles Firestore operations for user profiles and the
// follow graph.
type ProfileRepository struct {
	fs *firestore.Client
}

func NewProfileRepository(fs *firestore.Client) *ProfileRepository {
	return &ProfileRepository{fs: fs}
}

func (r *ProfileRepository) userDoc(uid string) *firestore.DocumentRef {
	return r.fs.Collection(usersCollection).Doc(uid)
}

// Create registers a profile document for a new user. The username must be
// unused; uniqueness is checked by query since Firestore has no unique
// constraints.
func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if p.UID == "" || p.Username == "" {
		return nil, fmt.Errorf("uid and username required")
	}

	existing, err := r.GetByUsername(ctx, p.Username)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.userDoc(p.UID).Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// GetByUID retrieves a profile by Firebase UID.
func (r *ProfileRepository) GetByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	snap, err := r.userDoc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// GetByUsername retrieves a profile by its unique username.
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	iter := r.fs.Collection(usersCollection).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile by username: %w", err)
	}

	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// Update applies the non-nil fields of the update to the profile.
func (r *ProfileRepository) Update(ctx context.Context, uid string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	updates := []firestore.Update{
		{Path: "updated_at", Value: time.Now().UTC()},
	}
	if upd.DisplayName != nil {
		updates = append(updates, firestore.Update{Path: "display_name", Value: *upd.DisplayName})
	}
	if upd.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *upd.Bio})
	}
	if upd.AvatarURL != nil {
		updates = append(updates, firestore.Update{Path: "avatar_url", Value: *upd.AvatarURL})
	}
	if upd.GrowSince != nil {
		updates = append(updates, firestore.Update{Path: "grow_since", Value: *upd.GrowSince})
	}

	if _, err := r.userDoc(uid).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return r.GetByUID(ctx, uid)
}

// Follow creates both edges of the follow relation and bumps the counters
// in one transaction. Following an already-followed user is a no-op.
func (r *ProfileRepository) Follow(ctx context.Context, followerUID, targetUID string) error {
	if followerUID == targetUID {
		return fmt.Errorf("cannot follow yourself")
	}

	followingRef := r.userDoc(followerUID).Collection(followingSubcoll).Doc(targetUID)
	followersRef := r.userDoc(targetUID).Collection(followersSubcoll).Doc(followerUID)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(followingRef); err == nil {
			return nil // already following
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if _, err := tx.Get(r.userDoc(targetUID)); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Set(followingRef, domain.FollowEdge{UID: targetUID, CreatedAt: now}); err != nil {
			return err
		}
		if err := tx.Set(followersRef, domain.FollowEdge{UID: followerUID, CreatedAt: now}); err != nil {
			return err
		}
		if err := tx.Update(r.userDoc(followerUID), []firestore.Update{{Path: "following_count", Value: firestore.Increment(1)}}); err != nil {
			return err
		}
		return tx.Update(r.userDoc(targetUID), []firestore.Update{{Path: "follower_count", Value: firestore.Increment(1)}})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

// Unfollow removes both edges and decrements the counters. Unfollowing a
// user that is not followed is a no-op.
func (r *ProfileRepository) Unfollow(ctx context.Context, followerUID, targetUID string) error {
	followingRef := r.userDoc(followerUID).Collection(followingSubcoll).Doc(targetUID)
	followersRef := r.userDoc(targetUID).Collection(followersSubcoll).Doc(followerUID)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(followingRef); status.Code(err) == codes.NotFound {
			return nil // not following
		} else if err != nil {
			return err
		}

		if err := tx.Delete(followingRef); err != nil {
			return err
		}
		if err := tx.Delete(followersRef); err != nil {
			return err
		}
		if err := tx.Update(r.userDoc(followerUID), []firestore.Update{{Path: "following_count", Value: firestore.Increment(-1)}}); err != nil {
			return err
		}
		return tx.Update(r.userDoc(targetUID), []firestore.Update{{Path: "follower_count", Value: firestore.Increment(-1)}})
	})
	if err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// ListFollowing returns the UIDs the given user follows, newest first.
func (r *ProfileRepository) ListFollowing(ctx context.Context, uid string, limit int) ([]string, error) {
	return r.listEdges(ctx, r.userDoc(uid).Collection(followingSubcoll), limit)
}

// ListFollowers returns the UIDs following the given user, newest first.
func (r *ProfileRepository) ListFollowers(ctx context.Context, uid string, limit int) ([]string, error) {
	return r.listEdges(ctx, r.userDoc(uid).Collection(followersSubcoll), limit)
}

func (r *ProfileRepository) listEdges(ctx context.Context, coll *firestore.CollectionRef, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultListPageSize
	}

	iter := coll.OrderBy("created_at", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	out := make([]string, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list follow edges: %w", err)
		}

		var edge domain.FollowEdge
		if err := snap.DataTo(&edge); err != nil {
			return nil, fmt.Errorf("decode follow edge: %w", err)
		}
		out = append(out, edge.UID)
	}
	return out, nil
}
