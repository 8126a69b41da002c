package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func TestTransactionRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "tx@example.com")
	tx := &domain.Transaction{
		UserID:   user.ID,
		Type:     domain.TransactionTypeDeposit,
		Category: "sponsorship",
		Amount:   decimal.RequireFromString("320.45"),
		Status:   domain.TransactionStatusPending,
		Date:     time.Date(2026, 7, 4, 15, 30, 0, 0, time.UTC),
	}
	id, err := repo.Create(ctx, tx)
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionTypeDeposit, got.Type)
	assert.Equal(t, domain.TransactionStatusPending, got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("320.45")), "amount %s", got.Amount)
}

func TestTransactionRepositoryDateRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "tx-range@example.com")
	dates := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := repo.Create(ctx, &domain.Transaction{
			UserID: user.ID,
			Type:   domain.TransactionTypeDeposit,
			Amount: decimal.New(1, 0),
			Status: domain.TransactionStatusPending,
			Date:   d,
		})
		require.NoError(t, err)
	}

	got, err := repo.ListByDateRange(ctx, dates[0], dates[1])
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTransactionRepositoryAmountFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "tx-amount@example.com")
	for _, a := range []string{"10", "99.99", "100.01"} {
		_, err := repo.Create(ctx, &domain.Transaction{
			UserID: user.ID,
			Type:   domain.TransactionTypeWithdrawal,
			Amount: decimal.RequireFromString(a),
			Status: domain.TransactionStatusPending,
			Date:   time.Now(),
		})
		require.NoError(t, err)
	}

	got, err := repo.ListByAmountGreaterThan(ctx, decimal.RequireFromString("99.99"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("100.01")))
}

func TestTransactionRepositoryUserFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "tx-alice@example.com")
	bob := seedUser(t, db, "tx-bob@example.com")

	mk := func(userID int64, txType domain.TransactionType, category string) {
		_, err := repo.Create(ctx, &domain.Transaction{
			UserID:   userID,
			Type:     txType,
			Category: category,
			Amount:   decimal.New(5, 0),
			Status:   domain.TransactionStatusPending,
			Date:     time.Now(),
		})
		require.NoError(t, err)
	}
	mk(alice.ID, domain.TransactionTypeDeposit, "prize")
	mk(alice.ID, domain.TransactionTypeWithdrawal, "catering")
	mk(bob.ID, domain.TransactionTypeDeposit, "prize")

	deposits, err := repo.ListByUserAndType(ctx, alice.ID, domain.TransactionTypeDeposit)
	require.NoError(t, err)
	assert.Len(t, deposits, 1)

	catering, err := repo.ListByUserAndCategory(ctx, alice.ID, "catering")
	require.NoError(t, err)
	assert.Len(t, catering, 1)
}
