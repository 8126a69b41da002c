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

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE RESTRICT,
	assigned_to INTEGER NULL REFERENCES users(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	priority TEXT NOT NULL,
	due_date DATETIME NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const taskColumns = `id, project_id, assigned_to, title, description, status, priority, due_date, created_at, updated_at`

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (project_id, assigned_to, title, description, status, priority, due_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ProjectID,
		nullInt64(task.AssignedTo),
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.DueDate.UTC(),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.NewNotFound("project", task.ProjectID)
		}
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	task.ID = id
	return id, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE tasks SET project_id=?, assigned_to=?, title=?, description=?, status=?, priority=?, due_date=?, updated_at=?
WHERE id=?`,
		task.ProjectID,
		nullInt64(task.AssignedTo),
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.DueDate.UTC(),
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewNotFound("project", task.ProjectID)
		}
		return fmt.Errorf("update task: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task update rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("task", task.ID)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task delete rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("task", id)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id=?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("task", id)
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id=? ORDER BY id ASC`, projectID)
}

func (r *TaskRepository) ListByAssignedUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE assigned_to=? ORDER BY id ASC`, userID)
}

func (r *TaskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE status=? ORDER BY id ASC`, string(status))
}

func (r *TaskRepository) ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE priority=? ORDER BY id ASC`, string(priority))
}

func (r *TaskRepository) ListByDueDateBefore(ctx context.Context, due time.Time) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE due_date<? ORDER BY due_date ASC`, due.UTC())
}

func (r *TaskRepository) ListByProjectAndStatus(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id=? AND status=? ORDER BY id ASC`, projectID, string(status))
}

func (r *TaskRepository) ListByAssignedUserAndStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]domain.Task, error) {
	return r.listTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE assigned_to=? AND status=? ORDER BY id ASC`, userID, string(status))
}

func (r *TaskRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE project_id=?`, projectID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks by project: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) listTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*domain.Task, error) {
	var (
		task       domain.Task
		assignedTo sql.NullInt64
		status     string
		priority   string
	)
	if err := scanner.Scan(
		&task.ID,
		&task.ProjectID,
		&assignedTo,
		&task.Title,
		&task.Description,
		&status,
		&priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	if assignedTo.Valid {
		v := assignedTo.Int64
		task.AssignedTo = &v
	}
	return &task, nil
}

func nullInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
