package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/growcircle/growcircle-backend/internal/feed/domain"
)

const (
	postsCollection  = "posts"
	likesSubcoll     = "likes"
	commentsSubcoll  = "comments"
	defaultPageSize  = 20
	maxPageSize      = 50
	authorChunkLimit = 30 // Firestore "in" queries accept at most 30 values
)

// PostRepository handles Firestore operations for feed posts, likes and
// comments.
type PostRepository struct {
	fs *firestore.Client
}

func NewPostRepository(fs *firestore.Client) *PostRepository {
	return &PostRepository{fs: fs}
}

func (r *PostRepository) postDoc(id string) *firestore.DocumentRef {
	return r.fs.Collection(postsCollection).Doc(id)
}

// Create inserts a new post for the given author.
func (r *PostRepository) Create(ctx context.Context, authorUID, imageURL, caption, strainTag string) (*domain.Post, error) {
	if authorUID == "" || imageURL == "" {
		return nil, fmt.Errorf("author uid and image url required")
	}

	post := &domain.Post{
		ID:        uuid.New().String(),
		AuthorUID: authorUID,
		ImageURL:  imageURL,
		Caption:   caption,
		StrainTag: strainTag,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.postDoc(post.ID).Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Get retrieves a single post by ID.
func (r *PostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	snap, err := r.postDoc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	var p domain.Post
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	return &p, nil
}

// Delete removes a post if the caller authored it.
func (r *PostRepository) Delete(ctx context.Context, callerUID, id string) error {
	post, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorUID != callerUID {
		return domain.ErrForbidden
	}

	if _, err := r.postDoc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// ListRecent returns the global feed, newest first, paginated by a
// created-at cursor.
func (r *PostRepository) ListRecent(ctx context.Context, before *time.Time, limit int) (*domain.FeedPage, error) {
	limit = clampLimit(limit)

	q := r.fs.Collection(postsCollection).OrderBy("created_at", firestore.Desc)
	if before != nil {
		q = q.StartAfter(*before)
	}

	posts, err := collectPosts(q.Limit(limit).Documents(ctx))
	if err != nil {
		return nil, err
	}
	return pageOf(posts, limit), nil
}

// ListByAuthors returns recent posts by the given authors, merged newest
// first. The author list is chunked to respect the Firestore "in" cap.
func (r *PostRepository) ListByAuthors(ctx context.Context, authorUIDs []string, limit int) (*domain.FeedPage, error) {
	limit = clampLimit(limit)
	if len(authorUIDs) == 0 {
		return &domain.FeedPage{Posts: []domain.Post{}}, nil
	}

	var merged []domain.Post
	for start := 0; start < len(authorUIDs); start += authorChunkLimit {
		end := start + authorChunkLimit
		if end > len(authorUIDs) {
			end = len(authorUIDs)
		}

		chunk, err := collectPosts(r.fs.Collection(postsCollection).
			Where("author_uid", "in", authorUIDs[start:end]).
			OrderBy("created_at", firestore.Desc).
			Limit(limit).
			Documents(ctx))
		if err != nil {
			return nil, err
		}
		merged = append(merged, chunk...)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return pageOf(merged, limit), nil
}

// Like records a like and bumps the counter transactionally. Liking twice
// is a no-op.
func (r *PostRepository) Like(ctx context.Context, uid, postID string) error {
	likeRef := r.postDoc(postID).Collection(likesSubcoll).Doc(uid)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(likeRef); err == nil {
			return nil // already liked
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if _, err := tx.Get(r.postDoc(postID)); err != nil {
			return err
		}

		if err := tx.Set(likeRef, domain.Like{UID: uid, CreatedAt: time.Now().UTC()}); err != nil {
			return err
		}
		return tx.Update(r.postDoc(postID), []firestore.Update{{Path: "like_count", Value: firestore.Increment(1)}})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("like post: %w", err)
	}
	return nil
}

// Unlike removes a like and decrements the counter. Removing a missing
// like is a no-op.
func (r *PostRepository) Unlike(ctx context.Context, uid, postID string) error {
	likeRef := r.postDoc(postID).Collection(likesSubcoll).Doc(uid)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(likeRef); status.Code(err) == codes.NotFound {
			return nil
		} else if err != nil {
			return err
		}

		if err := tx.Delete(likeRef); err != nil {
			return err
		}
		return tx.Update(r.postDoc(postID), []firestore.Update{{Path: "like_count", Value: firestore.Increment(-1)}})
	})
	if err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	return nil
}

// AddComment appends a comment and bumps the counter transactionally.
func (r *PostRepository) AddComment(ctx context.Context, uid, postID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text required")
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		AuthorUID: uid,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	commentRef := r.postDoc(postID).Collection(commentsSubcoll).Doc(comment.ID)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(r.postDoc(postID)); err != nil {
			return err
		}
		if err := tx.Set(commentRef, comment); err != nil {
			return err
		}
		return tx.Update(r.postDoc(postID), []firestore.Update{{Path: "comment_count", Value: firestore.Increment(1)}})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a post's comments in chronological order.
func (r *PostRepository) ListComments(ctx context.Context, postID string, limit int) ([]domain.Comment, error) {
	limit = clampLimit(limit)

	iter := r.postDoc(postID).Collection(commentsSubcoll).
		OrderBy("created_at", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Comment, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}

		var comment domain.Comment
		if err := snap.DataTo(&comment); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		out = append(out, comment)
	}
	return out, nil
}

func collectPosts(iter *firestore.DocumentIterator) ([]domain.Post, error) {
	defer iter.Stop()

	var out []domain.Post
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}

		var p domain.Post
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func pageOf(posts []domain.Post, limit int) *domain.FeedPage {
	page := &domain.FeedPage{Posts: posts}
	if len(posts) == limit {
		last := posts[len(posts)-1].CreatedAt
		page.NextCursor = &last
	}
	if page.Posts == nil {
		page.Posts = []domain.Post{}
	}
	return page
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
