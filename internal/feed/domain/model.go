package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("post not found")
	ErrForbidden = errors.New("not the author of this post")
)

// Post is a feed entry stored at posts/{id}. The image itself lives in the
// storage bucket; only its URL is kept here.
type Post struct {
	ID           string    `firestore:"id" json:"id"`
	AuthorUID    string    `firestore:"author_uid" json:"authorUid"`
	ImageURL     string    `firestore:"image_url" json:"imageUrl"`
	Caption      string    `firestore:"caption" json:"caption"`
	StrainTag    string    `firestore:"strain_tag" json:"strainTag,omitempty"`
	LikeCount    int64     `firestore:"like_count" json:"likeCount"`
	CommentCount int64     `firestore:"comment_count" json:"commentCount"`
	CreatedAt    time.Time `firestore:"created_at" json:"createdAt"`
}

// Comment lives in the comments subcollection of its post.
type Comment struct {
	ID        string    `firestore:"id" json:"id"`
	AuthorUID string    `firestore:"author_uid" json:"authorUid"`
	Text      string    `firestore:"text" json:"text"`
	CreatedAt time.Time `firestore:"created_at" json:"createdAt"`
}

// Like marks one user's like on a post; the doc ID is the liker's UID.
type Like struct {
	UID       string    `firestore:"uid" json:"uid"`
	CreatedAt time.Time `firestore:"created_at" json:"createdAt"`
}

// FeedPage is a cursor-paginated slice of the feed.
type FeedPage struct {
	Posts      []Post     `json:"posts"`
	NextCursor *time.Time `json:"nextCursor,omitempty"`
}
