package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func seedEvent(t *testing.T, db *sql.DB, userID int64, title string, start, end time.Time) *domain.Event {
	t.Helper()

	event := &domain.Event{
		UserID:    userID,
		Title:     title,
		Status:    domain.EventStatusPlanned,
		StartDate: start,
		EndDate:   end,
	}
	_, err := NewEventRepository(db).Create(context.Background(), event)
	require.NoError(t, err)
	return event
}

func TestEventRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	organizer := seedUser(t, db, "organizer@example.com")
	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	event := seedEvent(t, db, organizer.ID, "Kickoff", start, start.Add(8*time.Hour))

	got, err := repo.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kickoff", got.Title)
	assert.Equal(t, domain.EventStatusPlanned, got.Status)
	assert.Equal(t, start.Unix(), got.StartDate.Unix())
}

func TestEventRepositoryUpcoming(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	organizer := seedUser(t, db, "up-organizer@example.com")
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	seedEvent(t, db, organizer.ID, "past", now.Add(-48*time.Hour), now.Add(-40*time.Hour))
	seedEvent(t, db, organizer.ID, "future", now.Add(48*time.Hour), now.Add(56*time.Hour))

	upcoming, err := repo.ListUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "future", upcoming[0].Title)
}

func TestEventRepositoryAttendees(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	organizer := seedUser(t, db, "a-organizer@example.com")
	attendee := seedUser(t, db, "attendee@example.com")
	start := time.Now().Add(time.Hour)
	event := seedEvent(t, db, organizer.ID, "Demo day", start, start.Add(2*time.Hour))

	require.NoError(t, repo.AddAttendee(ctx, event.ID, attendee.ID, time.Now()))
	// re-registering does not duplicate
	require.NoError(t, repo.AddAttendee(ctx, event.ID, attendee.ID, time.Now()))

	attendees, err := repo.ListAttendees(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, attendee.ID, attendees[0].UserID)

	require.NoError(t, repo.RemoveAttendee(ctx, event.ID, attendee.ID))
	require.NoError(t, repo.RemoveAttendee(ctx, event.ID, attendee.ID))

	attendees, err = repo.ListAttendees(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, attendees)
}

func TestEventRepositoryDeleteClearsAttendees(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	organizer := seedUser(t, db, "dc-organizer@example.com")
	start := time.Now().Add(time.Hour)
	event := seedEvent(t, db, organizer.ID, "Doomed", start, start.Add(time.Hour))
	require.NoError(t, repo.AddAttendee(ctx, event.ID, organizer.ID, time.Now()))

	require.NoError(t, repo.Delete(ctx, event.ID))
	_, err := repo.Get(ctx, event.ID)
	assert.True(t, domain.IsNotFound(err))
}
