package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

// TransactionInput carries the fields needed to record a transaction.
type TransactionInput struct {
	UserID   int64
	Type     domain.TransactionType
	Category string
	Amount   decimal.Decimal
	Status   domain.TransactionStatus
	Date     time.Time
}

// TransactionUpdate carries the mutable transaction fields; nil fields are
// left untouched.
type TransactionUpdate struct {
	Type     *domain.TransactionType
	Category *string
	Amount   *decimal.Decimal
	Date     *time.Time
}

// TransactionService coordinates transaction lifecycle operations and the
// process/cancel transitions.
type TransactionService interface {
	Create(ctx context.Context, in TransactionInput) (*domain.Transaction, error)
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
	Update(ctx context.Context, id int64, patch TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
	Process(ctx context.Context, id int64) (*domain.Transaction, error)
	Cancel(ctx context.Context, id int64) (*domain.Transaction, error)
}

type transactionService struct {
	transactions repository.TransactionRepository
}

func NewTransactionService(transactions repository.TransactionRepository) TransactionService {
	return &transactionService{transactions: transactions}
}

func (s *transactionService) Create(ctx context.Context, in TransactionInput) (*domain.Transaction, error) {
	if in.UserID <= 0 {
		return nil, domain.NewValidation("transaction user is required")
	}
	if !in.Type.Valid() {
		return nil, domain.NewValidation("unknown transaction type: %s", in.Type)
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidation("transaction amount must not be negative")
	}
	if in.Status == "" {
		in.Status = domain.TransactionStatusPending
	}
	if !in.Status.Valid() {
		return nil, domain.NewValidation("unknown transaction status: %s", in.Status)
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}

	tx := &domain.Transaction{
		UserID:   in.UserID,
		Type:     in.Type,
		Category: in.Category,
		Amount:   in.Amount,
		Status:   in.Status,
		Date:     in.Date,
	}
	if _, err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.transactions.Get(ctx, id)
}

func (s *transactionService) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactions.List(ctx)
}

func (s *transactionService) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *transactionService) ListByType(ctx context.Context, txType domain.TransactionType) ([]domain.Transaction, error) {
	if !txType.Valid() {
		return nil, domain.NewValidation("unknown transaction type: %s", txType)
	}
	return s.transactions.ListByType(ctx, txType)
}

func (s *transactionService) ListByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	return s.transactions.ListByCategory(ctx, category)
}

func (s *transactionService) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown transaction status: %s", status)
	}
	return s.transactions.ListByStatus(ctx, status)
}

func (s *transactionService) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	if end.Before(start) {
		return nil, domain.NewValidation("end date must not precede start date")
	}
	return s.transactions.ListByDateRange(ctx, start, end)
}

func (s *transactionService) ListByAmountGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Transaction, error) {
	return s.transactions.ListByAmountGreaterThan(ctx, min)
}

func (s *transactionService) ListByUserAndType(ctx context.Context, userID int64, txType domain.TransactionType) ([]domain.Transaction, error) {
	if !txType.Valid() {
		return nil, domain.NewValidation("unknown transaction type: %s", txType)
	}
	return s.transactions.ListByUserAndType(ctx, userID, txType)
}

func (s *transactionService) ListByUserAndCategory(ctx context.Context, userID int64, category string) ([]domain.Transaction, error) {
	return s.transactions.ListByUserAndCategory(ctx, userID, category)
}

func (s *transactionService) Update(ctx context.Context, id int64, patch TransactionUpdate) (*domain.Transaction, error) {
	tx, err := s.transactions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, domain.NewValidation("unknown transaction type: %s", *patch.Type)
		}
		tx.Type = *patch.Type
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Amount != nil {
		if patch.Amount.IsNegative() {
			return nil, domain.NewValidation("transaction amount must not be negative")
		}
		tx.Amount = *patch.Amount
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, id int64) error {
	return s.transactions.Delete(ctx, id)
}

// Process moves a pending transaction to PROCESSED. PROCESSED and CANCELLED
// are terminal; transitions out of them are rejected.
func (s *transactionService) Process(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.transition(ctx, id, domain.TransactionStatusProcessed)
}

// Cancel moves a pending transaction to CANCELLED.
func (s *transactionService) Cancel(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.transition(ctx, id, domain.TransactionStatusCancelled)
}

func (s *transactionService) transition(ctx context.Context, id int64, to domain.TransactionStatus) (*domain.Transaction, error) {
	tx, err := s.transactions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.Status == to {
		return tx, nil
	}
	if tx.Status.Terminal() {
		return nil, domain.NewConflict("transaction %d is already %s", id, tx.Status)
	}

	tx.Status = to
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
