package repository

import (
	"context"
	"time"

	"hackaton-backend/internal/domain"
)

// ContributionRepository exposes persistence operations for Contribution
// aggregates.
type ContributionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, contribution *domain.Contribution) (int64, error)
	Update(ctx context.Context, contribution *domain.Contribution) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Contribution, error)
	List(ctx context.Context) ([]domain.Contribution, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Contribution, error)
	ListByType(ctx context.Context, cType string) ([]domain.Contribution, error)
	ListByStatus(ctx context.Context, status domain.ContributionStatus) ([]domain.Contribution, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.ContributionStatus) ([]domain.Contribution, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Contribution, error)
	SetReceiptURL(ctx context.Context, id int64, url string) error
}
