package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("conversation not found")
	ErrNotParticipant = errors.New("caller is not a participant")
)

// Conversation is stored at conversations/{id}. The ID is derived from the
// sorted participant pair so one pair of users maps to exactly one
// conversation.
type Conversation struct {
	ID           string    `firestore:"id" json:"id"`
	Participants []string  `firestore:"participants" json:"participants"`
	LastMessage  string    `firestore:"last_message" json:"lastMessage"`
	LastSender   string    `firestore:"last_sender" json:"lastSender"`
	UpdatedAt    time.Time `firestore:"updated_at" json:"updatedAt"`
	CreatedAt    time.Time `firestore:"created_at" json:"createdAt"`
}

// Message lives in the messages subcollection of its conversation.
type Message struct {
	ID        string    `firestore:"id" json:"id"`
	SenderUID string    `firestore:"sender_uid" json:"senderUid"`
	Text      string    `firestore:"text" json:"text"`
	SentAt    time.Time `firestore:"sent_at" json:"sentAt"`
}
