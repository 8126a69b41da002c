package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
)

// TransactionRepository exposes persistence operations for Transaction
// aggregates.
type TransactionRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, tx *domain.Transaction) (int64, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
	ListByType(ctx context.Context, txType domain.TransactionType) ([]domain.Transaction, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Transaction, error)
	ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
	ListByAmountGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Transaction, error)
	ListByUserAndType(ctx context.Context, userID int64, txType domain.TransactionType) ([]domain.Transaction, error)
	ListByUserAndCategory(ctx context.Context, userID int64, category string) ([]domain.Transaction, error)
}
