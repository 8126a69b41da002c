package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	start_date DATETIME NOT NULL,
	end_date DATETIME NULL,
	status TEXT NOT NULL,
	budget NUMERIC NOT NULL DEFAULT 0,
	user_id INTEGER NOT NULL REFERENCES users(id),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS project_members (
	project_id INTEGER NOT NULL REFERENCES projects(id),
	user_id INTEGER NOT NULL REFERENCES users(id),
	joined_at DATETIME NOT NULL,
	PRIMARY KEY (project_id, user_id)
);
`

const projectColumns = `id, name, description, category, start_date, end_date, status, budget, user_id, created_at, updated_at`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("create projects tables: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (int64, error) {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO projects (name, description, category, start_date, end_date, status, budget, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.Name,
		project.Description,
		project.Category,
		project.StartDate.UTC(),
		nullTime(project.EndDate),
		string(project.Status),
		project.Budget,
		project.UserID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.NewNotFound("user", project.UserID)
		}
		return 0, fmt.Errorf("insert project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("project last insert id: %w", err)
	}
	project.ID = id
	return id, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE projects SET name=?, description=?, category=?, start_date=?, end_date=?, status=?, budget=?, updated_at=?
WHERE id=?`,
		project.Name,
		project.Description,
		project.Category,
		project.StartDate.UTC(),
		nullTime(project.EndDate),
		string(project.Status),
		project.Budget,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project update rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("project", project.ID)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id=?`, id); err != nil {
		return fmt.Errorf("delete project members: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id=?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewConflict("project %d still has tasks", id)
		}
		return fmt.Errorf("delete project: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project delete rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("project", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit project delete: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id=?`, id)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("project", id)
		}
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id ASC`)
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE user_id=? ORDER BY id ASC`, userID)
}

func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE status=? ORDER BY id ASC`, string(status))
}

func (r *ProjectRepository) ListByCategory(ctx context.Context, category string) ([]domain.Project, error) {
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE category=? ORDER BY id ASC`, category)
}

func (r *ProjectRepository) ListByUserAndStatus(ctx context.Context, userID int64, status domain.ProjectStatus) ([]domain.Project, error) {
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE user_id=? AND status=? ORDER BY id ASC`, userID, string(status))
}

func (r *ProjectRepository) ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Project, error) {
	// inclusive on both bounds
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE start_date>=? AND start_date<=? ORDER BY start_date ASC`, start.UTC(), end.UTC())
}

func (r *ProjectRepository) ListByBudgetGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Project, error) {
	return r.listProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE budget > CAST(? AS NUMERIC) ORDER BY id ASC`, min)
}

func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID int64, joinedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO project_members (project_id, user_id, joined_at)
VALUES (?, ?, ?)`,
		projectID, userID, joinedAt.UTC(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFound("user", userID)
		}
		return fmt.Errorf("insert project member: %w", err)
	}
	return nil
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM project_members WHERE project_id=? AND user_id=?`, projectID, userID); err != nil {
		return fmt.Errorf("delete project member: %w", err)
	}
	return nil
}

func (r *ProjectRepository) ListMembers(ctx context.Context, projectID int64) ([]domain.ProjectMember, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT project_id, user_id, joined_at
FROM project_members
WHERE project_id=?
ORDER BY joined_at ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query project members: %w", err)
	}
	defer rows.Close()

	var members []domain.ProjectMember
	for rows.Next() {
		var m domain.ProjectMember
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan project member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *ProjectRepository) listProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func scanProject(scanner interface {
	Scan(dest ...any) error
}) (*domain.Project, error) {
	var (
		project domain.Project
		status  string
		endDate sql.NullTime
	)
	if err := scanner.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Category,
		&project.StartDate,
		&endDate,
		&status,
		&project.Budget,
		&project.UserID,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	project.Status = domain.ProjectStatus(status)
	if endDate.Valid {
		t := endDate.Time
		project.EndDate = &t
	}
	return &project, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
