package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func TestEventServiceCreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEventService(repos.events, repos.users)
	ctx := context.Background()

	organizer := repos.seedUser(t, "e-organizer@example.com")
	start := time.Now().Add(24 * time.Hour)

	event, err := svc.Create(ctx, EventInput{
		UserID:    organizer.ID,
		Title:     "Hack night",
		StartDate: start,
		EndDate:   start.Add(6 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPlanned, event.Status)
}

func TestEventServiceCreateValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEventService(repos.events, repos.users)
	ctx := context.Background()

	organizer := repos.seedUser(t, "ev-organizer@example.com")
	start := time.Now()

	_, err := svc.Create(ctx, EventInput{
		UserID:    organizer.ID,
		Title:     "Backwards",
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Create(ctx, EventInput{
		UserID:    organizer.ID,
		Title:     " ",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
	assert.True(t, domain.IsValidation(err))
}

func TestEventServiceRegistration(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEventService(repos.events, repos.users)
	ctx := context.Background()

	organizer := repos.seedUser(t, "er-organizer@example.com")
	attendee := repos.seedUser(t, "er-attendee@example.com")
	start := time.Now().Add(24 * time.Hour)

	event, err := svc.Create(ctx, EventInput{
		UserID:    organizer.ID,
		Title:     "Pitch rehearsal",
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Register(ctx, event.ID, attendee.ID))
	require.NoError(t, svc.Register(ctx, event.ID, attendee.ID)) // idempotent

	attendees, err := svc.Attendees(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, attendee.ID, attendees[0].UserID)

	require.NoError(t, svc.Unregister(ctx, event.ID, attendee.ID))
	require.NoError(t, svc.Unregister(ctx, event.ID, attendee.ID)) // no-op

	attendees, err = svc.Attendees(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, attendees)

	assert.True(t, domain.IsNotFound(svc.Register(ctx, 999, attendee.ID)))
	assert.True(t, domain.IsNotFound(svc.Register(ctx, event.ID, 999)))
}

func TestEventServiceSweepStatuses(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEventService(repos.events, repos.users)
	ctx := context.Background()

	organizer := repos.seedUser(t, "sw-organizer@example.com")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	mk := func(title string, start, end time.Time) *domain.Event {
		event, err := svc.Create(ctx, EventInput{
			UserID:    organizer.ID,
			Title:     title,
			StartDate: start,
			EndDate:   end,
		})
		require.NoError(t, err)
		return event
	}
	started := mk("started", now.Add(-time.Hour), now.Add(time.Hour))
	finished := mk("finished", now.Add(-4*time.Hour), now.Add(-time.Hour))
	future := mk("future", now.Add(time.Hour), now.Add(2*time.Hour))

	moved, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	check := func(id int64, want domain.EventStatus) {
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}
	check(started.ID, domain.EventStatusOngoing)
	check(finished.ID, domain.EventStatusCompleted)
	check(future.ID, domain.EventStatusPlanned)

	// a second sweep at the same instant changes nothing
	moved, err = svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, moved)
}
