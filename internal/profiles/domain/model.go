package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Profile is the public document stored at users/{uid}.
type Profile struct {
	UID            string    `firestore:"uid" json:"uid"`
	Username       string    `firestore:"username" json:"username"`
	DisplayName    string    `firestore:"display_name" json:"displayName"`
	Bio            string    `firestore:"bio" json:"bio"`
	AvatarURL      string    `firestore:"avatar_url" json:"avatarUrl"`
	GrowSince      int       `firestore:"grow_since" json:"growSince"`
	FollowerCount  int64     `firestore:"follower_count" json:"followerCount"`
	FollowingCount int64     `firestore:"following_count" json:"followingCount"`
	CreatedAt      time.Time `firestore:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `firestore:"updated_at" json:"updatedAt"`
}

// ProfileUpdate carries the mutable fields; nil means leave unchanged.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	GrowSince   *int
}

// FollowEdge is stored in both the follower's "following" and the
// followee's "followers" subcollections.
type FollowEdge struct {
	UID       string    `firestore:"uid" json:"uid"`
	CreatedAt time.Time `firestore:"created_at" json:"createdAt"`
}
