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

const createContributionsTable = `
CREATE TABLE IF NOT EXISTS contributions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	type TEXT NOT NULL,
	amount NUMERIC NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date DATETIME NOT NULL,
	status TEXT NOT NULL,
	receipt_url TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const contributionColumns = `id, user_id, type, amount, description, date, status, receipt_url, created_at, updated_at`

type ContributionRepository struct {
	db *sql.DB
}

func NewContributionRepository(db *sql.DB) repository.ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createContributionsTable); err != nil {
		return fmt.Errorf("create contributions table: %w", err)
	}
	return nil
}

func (r *ContributionRepository) Create(ctx context.Context, contribution *domain.Contribution) (int64, error) {
	now := time.Now().UTC()
	contribution.CreatedAt = now
	contribution.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO contributions (user_id, type, amount, description, date, status, receipt_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contribution.UserID,
		contribution.Type,
		contribution.Amount,
		contribution.Description,
		contribution.Date.UTC(),
		string(contribution.Status),
		contribution.ReceiptURL,
		contribution.CreatedAt,
		contribution.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.NewNotFound("user", contribution.UserID)
		}
		return 0, fmt.Errorf("insert contribution: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("contribution last insert id: %w", err)
	}
	contribution.ID = id
	return id, nil
}

func (r *ContributionRepository) Update(ctx context.Context, contribution *domain.Contribution) error {
	contribution.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE contributions SET type=?, amount=?, description=?, date=?, status=?, receipt_url=?, updated_at=?
WHERE id=?`,
		contribution.Type,
		contribution.Amount,
		contribution.Description,
		contribution.Date.UTC(),
		string(contribution.Status),
		contribution.ReceiptURL,
		contribution.UpdatedAt,
		contribution.ID,
	)
	if err != nil {
		return fmt.Errorf("update contribution: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contribution update rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("contribution", contribution.ID)
	}
	return nil
}

func (r *ContributionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contributions WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contribution delete rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("contribution", id)
	}
	return nil
}

func (r *ContributionRepository) Get(ctx context.Context, id int64) (*domain.Contribution, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE id=?`, id)
	contribution, err := scanContribution(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("contribution", id)
		}
		return nil, err
	}
	return contribution, nil
}

func (r *ContributionRepository) List(ctx context.Context) ([]domain.Contribution, error) {
	return r.listContributions(ctx, `SELECT `+contributionColumns+` FROM contributions ORDER BY id ASC`)
}

func (r *ContributionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Contribution, error) {
	return r.listContributions(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE user_id=? ORDER BY id ASC`, userID)
}

func (r *ContributionRepository) ListByType(ctx context.Context, cType string) ([]domain.Contribution, error) {
	return r.listContributions(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE type=? ORDER BY id ASC`, cType)
}

func (r *ContributionRepository) ListByStatus(ctx context.Context, status domain.ContributionStatus) ([]domain.Contribution, error) {
	return r.listContributions(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE status=? ORDER BY id ASC`, string(status))
}

func (r *ContributionRepository) ListByUserAndStatus(ctx context.Context, userID int64, status domain.ContributionStatus) ([]domain.Contribution, error) {
	return r.listContributions(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE user_id=? AND status=? ORDER BY id ASC`, userID, string(status))
}

func (r *ContributionRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Contribution, error) {
	// inclusive on both bounds
	return r.listContributions(ctx, `SELECT `+contributionColumns+` FROM contributions WHERE date>=? AND date<=? ORDER BY date ASC`, start.UTC(), end.UTC())
}

func (r *ContributionRepository) SetReceiptURL(ctx context.Context, id int64, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE contributions SET receipt_url=?, updated_at=? WHERE id=?`,
		url, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set contribution receipt: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contribution receipt rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("contribution", id)
	}
	return nil
}

func (r *ContributionRepository) listContributions(ctx context.Context, query string, args ...any) ([]domain.Contribution, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contributions: %w", err)
	}
	defer rows.Close()

	var contributions []domain.Contribution
	for rows.Next() {
		contribution, err := scanContribution(rows)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, *contribution)
	}
	return contributions, rows.Err()
}

func scanContribution(scanner interface {
	Scan(dest ...any) error
}) (*domain.Contribution, error) {
	var (
		contribution domain.Contribution
		status       string
	)
	if err := scanner.Scan(
		&contribution.ID,
		&contribution.UserID,
		&contribution.Type,
		&contribution.Amount,
		&contribution.Description,
		&contribution.Date,
		&status,
		&contribution.ReceiptURL,
		&contribution.CreatedAt,
		&contribution.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan contribution: %w", err)
	}
	contribution.Status = domain.ContributionStatus(status)
	return &contribution, nil
}
