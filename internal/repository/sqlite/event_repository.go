package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS event_attendees (
	event_id INTEGER NOT NULL REFERENCES events(id),
	user_id INTEGER NOT NULL REFERENCES users(id),
	joined_at DATETIME NOT NULL,
	PRIMARY KEY (event_id, user_id)
);
`

const eventColumns = `id, user_id, title, description, category, location, status, start_date, end_date, created_at, updated_at`

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createEventsTable); err != nil {
		return fmt.Errorf("create events tables: %w", err)
	}
	return nil
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (int64, error) {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO events (user_id, title, description, category, location, status, start_date, end_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.UserID,
		event.Title,
		event.Description,
		event.Category,
		event.Location,
		string(event.Status),
		event.StartDate.UTC(),
		event.EndDate.UTC(),
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.NewNotFound("user", event.UserID)
		}
		return 0, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event last insert id: %w", err)
	}
	event.ID = id
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE events SET title=?, description=?, category=?, location=?, status=?, start_date=?, end_date=?, updated_at=?
WHERE id=?`,
		event.Title,
		event.Description,
		event.Category,
		event.Location,
		string(event.Status),
		event.StartDate.UTC(),
		event.EndDate.UTC(),
		event.UpdatedAt,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event update rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("event", event.ID)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_attendees WHERE event_id=?`, id); err != nil {
		return fmt.Errorf("delete event attendees: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event delete rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("event", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event delete: %w", err)
	}
	return nil
}

func (r *EventRepository) Get(ctx context.Context, id int64) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id=?`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("event", id)
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY id ASC`)
}

func (r *EventRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Event, error) {
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE user_id=? ORDER BY id ASC`, userID)
}

func (r *EventRepository) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE status=? ORDER BY id ASC`, string(status))
}

func (r *EventRepository) ListByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE category=? ORDER BY id ASC`, category)
}

func (r *EventRepository) ListByUserAndStatus(ctx context.Context, userID int64, status domain.EventStatus) ([]domain.Event, error) {
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE user_id=? AND status=? ORDER BY id ASC`, userID, string(status))
}

func (r *EventRepository) ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	// inclusive on both bounds
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE start_date>=? AND start_date<=? ORDER BY start_date ASC`, start.UTC(), end.UTC())
}

func (r *EventRepository) ListUpcoming(ctx context.Context, after time.Time) ([]domain.Event, error) {
	return r.listEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE start_date>? ORDER BY start_date ASC`, after.UTC())
}

func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID int64, joinedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO event_attendees (event_id, user_id, joined_at)
VALUES (?, ?, ?)`,
		eventID, userID, joinedAt.UTC(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFound("user", userID)
		}
		return fmt.Errorf("insert event attendee: %w", err)
	}
	return nil
}

func (r *EventRepository) RemoveAttendee(ctx context.Context, eventID, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM event_attendees WHERE event_id=? AND user_id=?`, eventID, userID); err != nil {
		return fmt.Errorf("delete event attendee: %w", err)
	}
	return nil
}

func (r *EventRepository) ListAttendees(ctx context.Context, eventID int64) ([]domain.EventAttendee, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT event_id, user_id, joined_at
FROM event_attendees
WHERE event_id=?
ORDER BY joined_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("query event attendees: %w", err)
	}
	defer rows.Close()

	var attendees []domain.EventAttendee
	for rows.Next() {
		var a domain.EventAttendee
		if err := rows.Scan(&a.EventID, &a.UserID, &a.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan event attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (r *EventRepository) listEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func scanEvent(scanner interface {
	Scan(dest ...any) error
}) (*domain.Event, error) {
	var (
		event  domain.Event
		status string
	)
	if err := scanner.Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Location,
		&status,
		&event.StartDate,
		&event.EndDate,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	event.Status = domain.EventStatus(status)
	return &event, nil
}
