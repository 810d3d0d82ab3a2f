package calendar

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection = "users"
	eventsSubcoll   = "events"
	maxRangeEvents  = 200
)

// Repo persists calendar events in Firestore.
type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) eventsColl(uid string) *firestore.CollectionRef {
	return r.fs.Collection(usersCollection).Doc(uid).Collection(eventsSubcoll)
}

// Create inserts a new event for the user.
func (r *Repo) Create(ctx context.Context, uid string, ev *Event) (*Event, error) {
	if ev.Title == "" {
		return nil, fmt.Errorf("title required")
	}
	if !ValidKind(ev.Kind) {
		return nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	ev.ID = uuid.New().String()
	ev.CreatedAt = time.Now().UTC()

	if _, err := r.eventsColl(uid).Doc(ev.ID).Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return ev, nil
}

// Get retrieves one event.
func (r *Repo) Get(ctx context.Context, uid, id string) (*Event, error) {
	snap, err := r.eventsColl(uid).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var ev Event
	if err := snap.DataTo(&ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &ev, nil
}

// ListRange returns the user's events within [from, to), ordered by date.
func (r *Repo) ListRange(ctx context.Context, uid string, from, to time.Time) ([]Event, error) {
	iter := r.eventsColl(uid).
		Where("date", ">=", from).
		Where("date", "<", to).
		OrderBy("date", firestore.Asc).
		Limit(maxRangeEvents).
		Documents(ctx)
	defer iter.Stop()

	out := make([]Event, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}

		var ev Event
		if err := snap.DataTo(&ev); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// SetDone toggles the done flag.
func (r *Repo) SetDone(ctx context.Context, uid, id string, done bool) error {
	_, err := r.eventsColl(uid).Doc(id).Update(ctx, []firestore.Update{
		{Path: "done", Value: done},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes an event.
func (r *Repo) Delete(ctx context.Context, uid, id string) error {
	if _, err := r.eventsColl(uid).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
