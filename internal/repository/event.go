package repository

import (
	"context"
	"time"

	"hackaton-backend/internal/domain"
)

// EventRepository exposes persistence operations for Event aggregates,
// including the attendee association.
type EventRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, event *domain.Event) (int64, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Event, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.EventStatus) ([]domain.Event, error)
	ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Event, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]domain.Event, error)

	AddAttendee(ctx context.Context, eventID, userID int64, joinedAt time.Time) error
	RemoveAttendee(ctx context.Context, eventID, userID int64) error
	ListAttendees(ctx context.Context, eventID int64) ([]domain.EventAttendee, error)
}
