package service

import (
	"context"
	"strings"
	"time"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

// EventInput carries the fields needed to create an event.
type EventInput struct {
	UserID      int64
	Title       string
	Description string
	Category    string
	Location    string
	Status      domain.EventStatus
	StartDate   time.Time
	EndDate     time.Time
}

// EventUpdate carries the mutable event fields; nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Location    *string
	Status      *domain.EventStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

// EventService coordinates event lifecycle and attendance operations.
type EventService interface {
	Create(ctx context.Context, in EventInput) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Event, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.EventStatus) ([]domain.Event, error)
	ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Event, error)
	ListUpcoming(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, id int64, patch EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
	Register(ctx context.Context, eventID, userID int64) error
	Unregister(ctx context.Context, eventID, userID int64) error
	Attendees(ctx context.Context, eventID int64) ([]domain.EventAttendee, error)
	SweepStatuses(ctx context.Context, now time.Time) (int, error)
}

type eventService struct {
	events repository.EventRepository
	users  repository.UserRepository
}

func NewEventService(events repository.EventRepository, users repository.UserRepository) EventService {
	return &eventService{events: events, users: users}
}

func (s *eventService) Create(ctx context.Context, in EventInput) (*domain.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, domain.NewValidation("event title is required")
	}
	if in.UserID <= 0 {
		return nil, domain.NewValidation("event organizer is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, domain.NewValidation("event start and end dates are required")
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.NewValidation("event end date must not precede start date")
	}
	if in.Status == "" {
		in.Status = domain.EventStatusPlanned
	}
	if !in.Status.Valid() {
		return nil, domain.NewValidation("unknown event status: %s", in.Status)
	}

	event := &domain.Event{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if _, err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return s.events.Get(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *eventService) ListByUser(ctx context.Context, userID int64) ([]domain.Event, error) {
	return s.events.ListByUser(ctx, userID)
}

func (s *eventService) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown event status: %s", status)
	}
	return s.events.ListByStatus(ctx, status)
}

func (s *eventService) ListByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	return s.events.ListByCategory(ctx, category)
}

func (s *eventService) ListByUserAndStatus(ctx context.Context, userID int64, status domain.EventStatus) ([]domain.Event, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown event status: %s", status)
	}
	return s.events.ListByUserAndStatus(ctx, userID, status)
}

func (s *eventService) ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	if end.Before(start) {
		return nil, domain.NewValidation("end date must not precede start date")
	}
	return s.events.ListByStartDateRange(ctx, start, end)
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListUpcoming(ctx, time.Now())
}

func (s *eventService) Update(ctx context.Context, id int64, patch EventUpdate) (*domain.Event, error) {
	event, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, domain.NewValidation("event title is required")
		}
		event.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Category != nil {
		event.Category = *patch.Category
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, domain.NewValidation("unknown event status: %s", *patch.Status)
		}
		event.Status = *patch.Status
	}
	if patch.StartDate != nil {
		event.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		event.EndDate = *patch.EndDate
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, domain.NewValidation("event end date must not precede start date")
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}

// Register is idempotent: registering an already registered user succeeds
// without duplicating the attendance.
func (s *eventService) Register(ctx context.Context, eventID, userID int64) error {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return err
	}
	return s.events.AddAttendee(ctx, eventID, userID, time.Now().UTC())
}

// Unregister removes the attendance if present; unregistering a user who
// never registered is a silent no-op.
func (s *eventService) Unregister(ctx context.Context, eventID, userID int64) error {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return err
	}
	return s.events.RemoveAttendee(ctx, eventID, userID)
}

func (s *eventService) Attendees(ctx context.Context, eventID int64) ([]domain.EventAttendee, error) {
	if _, err := s.events.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.events.ListAttendees(ctx, eventID)
}

// SweepStatuses advances events whose window has opened or closed: PLANNED
// events past their start become ONGOING, ONGOING events past their end
// become COMPLETED. Returns the number of events moved.
func (s *eventService) SweepStatuses(ctx context.Context, now time.Time) (int, error) {
	moved := 0

	planned, err := s.events.ListByStatus(ctx, domain.EventStatusPlanned)
	if err != nil {
		return moved, err
	}
	for i := range planned {
		if planned[i].StartDate.After(now) {
			continue
		}
		planned[i].Status = domain.EventStatusOngoing
		if planned[i].EndDate.Before(now) {
			planned[i].Status = domain.EventStatusCompleted
		}
		if err := s.events.Update(ctx, &planned[i]); err != nil {
			return moved, err
		}
		moved++
	}

	ongoing, err := s.events.ListByStatus(ctx, domain.EventStatusOngoing)
	if err != nil {
		return moved, err
	}
	for i := range ongoing {
		if ongoing[i].EndDate.After(now) {
			continue
		}
		ongoing[i].Status = domain.EventStatusCompleted
		if err := s.events.Update(ctx, &ongoing[i]); err != nil {
			return moved, err
		}
		moved++
	}

	return moved, nil
}
