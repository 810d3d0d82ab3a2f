package calendar

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("event not found")

// Event kinds for the cultivation calendar.
const (
	KindWatering   = "watering"
	KindFeeding    = "feeding"
	KindTraining   = "training"
	KindTransplant = "transplant"
	KindHarvest    = "harvest"
	KindCustom     = "custom"
)

var validKinds = map[string]bool{
	KindWatering:   true,
	KindFeeding:    true,
	KindTraining:   true,
	KindTransplant: true,
	KindHarvest:    true,
	KindCustom:     true,
}

// ValidKind reports whether k is a known event kind.
func ValidKind(k string) bool {
	return validKinds[k]
}

// Event is one cultivation-calendar entry, stored under
// users/{uid}/events/{id}. Nothing schedules or executes these; they are
// records the client reads back.
type Event struct {
	ID        string    `firestore:"id" json:"id"`
	Title     string    `firestore:"title" json:"title"`
	Kind      string    `firestore:"kind" json:"kind"`
	Date      time.Time `firestore:"date" json:"date"`
	Notes     string    `firestore:"notes" json:"notes,omitempty"`
	Done      bool      `firestore:"done" json:"done"`
	CreatedAt time.Time `firestore:"created_at" json:"createdAt"`
}
