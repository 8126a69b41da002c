package domain

import "time"

type EventStatus string

const (
	EventStatusPlanned   EventStatus = "PLANNED"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Valid reports whether s is one of the known event statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPlanned, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// Event is an organized happening with a time window. Users attend through
// the event_attendees association, separate from the organizing user.
type Event struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Category    string
	Location    string
	Status      EventStatus
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventAttendee links a registered user to an event.
type EventAttendee struct {
	EventID  int64
	UserID   int64
	JoinedAt time.Time
}
