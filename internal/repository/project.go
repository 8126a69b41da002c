package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
)

// ProjectRepository exposes persistence operations for Project aggregates,
// including the member association.
type ProjectRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, project *domain.Project) (int64, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Project, error)
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Project, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.ProjectStatus) ([]domain.Project, error)
	ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Project, error)
	ListByBudgetGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Project, error)

	AddMember(ctx context.Context, projectID, userID int64, joinedAt time.Time) error
	RemoveMember(ctx context.Context, projectID, userID int64) error
	ListMembers(ctx context.Context, projectID int64) ([]domain.ProjectMember, error)
}
