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

func TestContributionRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewContributionRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "contrib@example.com")
	contribution := &domain.Contribution{
		UserID:      user.ID,
		Type:        "mentoring",
		Amount:      decimal.RequireFromString("40"),
		Description: "two workshop sessions",
		Date:        time.Date(2026, 5, 20, 14, 0, 0, 0, time.UTC),
		Status:      domain.ContributionStatusPending,
	}
	id, err := repo.Create(ctx, contribution)
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "mentoring", got.Type)
	assert.Equal(t, domain.ContributionStatusPending, got.Status)
	assert.Empty(t, got.ReceiptURL)
}

func TestContributionRepositorySetReceiptURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewContributionRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "receipt@example.com")
	contribution := &domain.Contribution{
		UserID: user.ID,
		Type:   "hardware",
		Amount: decimal.New(200, 0),
		Date:   time.Now(),
		Status: domain.ContributionStatusPending,
	}
	id, err := repo.Create(ctx, contribution)
	require.NoError(t, err)

	require.NoError(t, repo.SetReceiptURL(ctx, id, "s3://bucket/receipts/1.pdf"))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/receipts/1.pdf", got.ReceiptURL)

	err = repo.SetReceiptURL(ctx, 999, "s3://bucket/none.pdf")
	assert.True(t, domain.IsNotFound(err))
}

func TestContributionRepositoryStatusFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewContributionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "c-alice@example.com")
	bob := seedUser(t, db, "c-bob@example.com")

	mk := func(userID int64, status domain.ContributionStatus) {
		_, err := repo.Create(ctx, &domain.Contribution{
			UserID: userID,
			Type:   "funding",
			Amount: decimal.New(10, 0),
			Date:   time.Now(),
			Status: status,
		})
		require.NoError(t, err)
	}
	mk(alice.ID, domain.ContributionStatusPending)
	mk(alice.ID, domain.ContributionStatusConfirmed)
	mk(bob.ID, domain.ContributionStatusConfirmed)

	confirmed, err := repo.ListByStatus(ctx, domain.ContributionStatusConfirmed)
	require.NoError(t, err)
	assert.Len(t, confirmed, 2)

	aliceConfirmed, err := repo.ListByUserAndStatus(ctx, alice.ID, domain.ContributionStatusConfirmed)
	require.NoError(t, err)
	assert.Len(t, aliceConfirmed, 1)
}
