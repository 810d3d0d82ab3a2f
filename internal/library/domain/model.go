package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("article not found")

// Article is a content-library entry stored at articles/{slug}.
type Article struct {
	Slug        string    `firestore:"slug" json:"slug"`
	Title       string    `firestore:"title" json:"title"`
	Category    string    `firestore:"category" json:"category"`
	Summary     string    `firestore:"summary" json:"summary"`
	Body        string    `firestore:"body" json:"body"`
	Tags        []string  `firestore:"tags" json:"tags,omitempty"`
	PublishedAt time.Time `firestore:"published_at" json:"publishedAt"`
}
