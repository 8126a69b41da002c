package repository

import (
	"context"
	"time"

	"hackaton-backend/internal/domain"
)

// TaskRepository exposes persistence operations for Task aggregates.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListByAssignedUser(ctx context.Context, userID int64) ([]domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error)
	ListByDueDateBefore(ctx context.Context, due time.Time) ([]domain.Task, error)
	ListByProjectAndStatus(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error)
	ListByAssignedUserAndStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]domain.Task, error)
	CountByProject(ctx context.Context, projectID int64) (int64, error)
}
