package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/growcircle/growcircle-backend/internal/messages/domain"
)

const (
	conversationsCollection = "conversations"
	messagesSubcoll         = "messages"
	defaultPageSize         = 50
)

// ConversationRepository handles Firestore operations for direct messages.
type ConversationRepository struct {
	fs *firestore.Client
}

func NewConversationRepository(fs *firestore.Client) *ConversationRepository {
	return &ConversationRepository{fs: fs}
}

// ConversationID derives the deterministic doc ID for a participant pair.
func ConversationID(uidA, uidB string) string {
	pair := []string{uidA, uidB}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

func (r *ConversationRepository) convDoc(id string) *firestore.DocumentRef {
	return r.fs.Collection(conversationsCollection).Doc(id)
}

// Open returns the conversation between the two users, creating it if it
// does not exist yet.
func (r *ConversationRepository) Open(ctx context.Context, callerUID, otherUID string) (*domain.Conversation, error) {
	if callerUID == otherUID {
		return nil, fmt.Errorf("cannot message yourself")
	}

	id := ConversationID(callerUID, otherUID)
	snap, err := r.convDoc(id).Get(ctx)
	if err == nil {
		var conv domain.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return nil, fmt.Errorf("decode conversation: %w", err)
		}
		return &conv, nil
	}
	if status.Code(err) != codes.NotFound {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	now := time.Now().UTC()
	pair := []string{callerUID, otherUID}
	sort.Strings(pair)
	conv := &domain.Conversation{
		ID:           id,
		Participants: pair,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.convDoc(id).Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

// Send appends a message and bumps the conversation preview atomically.
func (r *ConversationRepository) Send(ctx context.Context, senderUID, conversationID, text string) (*domain.Message, error) {
	if text == "" {
		return nil, fmt.Errorf("message text required")
	}

	convRef := r.convDoc(conversationID)
	msg := &domain.Message{
		ID:        uuid.New().String(),
		SenderUID: senderUID,
		Text:      text,
		SentAt:    time.Now().UTC(),
	}
	msgRef := convRef.Collection(messagesSubcoll).Doc(msg.ID)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(convRef)
		if err != nil {
			return err
		}

		var conv domain.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return err
		}
		if !isParticipant(conv, senderUID) {
			return domain.ErrNotParticipant
		}

		if err := tx.Set(msgRef, msg); err != nil {
			return err
		}
		return tx.Update(convRef, []firestore.Update{
			{Path: "last_message", Value: preview(text)},
			{Path: "last_sender", Value: senderUID},
			{Path: "updated_at", Value: msg.SentAt},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

// ListForUser returns the caller's conversations, most recently active
// first.
func (r *ConversationRepository) ListForUser(ctx context.Context, uid string, limit int) ([]domain.Conversation, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	iter := r.fs.Collection(conversationsCollection).
		Where("participants", "array-contains", uid).
		OrderBy("updated_at", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Conversation, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list conversations: %w", err)
		}

		var conv domain.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return nil, fmt.Errorf("decode conversation: %w", err)
		}
		out = append(out, conv)
	}
	return out, nil
}

// ListMessages returns a conversation's messages in chronological order,
// verifying the caller participates in it.
func (r *ConversationRepository) ListMessages(ctx context.Context, callerUID, conversationID string, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	snap, err := r.convDoc(conversationID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	var conv domain.Conversation
	if err := snap.DataTo(&conv); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	if !isParticipant(conv, callerUID) {
		return nil, domain.ErrNotParticipant
	}

	iter := r.convDoc(conversationID).Collection(messagesSubcoll).
		OrderBy("sent_at", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Message, 0, limit)
	for {
		msnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list messages: %w", err)
		}

		var msg domain.Message
		if err := msnap.DataTo(&msg); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, msg)
	}
	return out, nil
}

func isParticipant(conv domain.Conversation, uid string) bool {
	for _, p := range conv.Participants {
		if p == uid {
			return true
		}
	}
	return false
}

// preview shortens a message for the conversation list. The cut never
// lands inside a multibyte rune; Firestore rejects invalid UTF-8 strings.
func preview(text string) string {
	const maxPreview = 120
	if len(text) <= maxPreview {
		return text
	}
	cut := maxPreview
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
