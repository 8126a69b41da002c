package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

type fakeStorage struct {
	puts map[string]string
}

func (f *fakeStorage) PutObject(_ context.Context, key, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if f.puts == nil {
		f.puts = map[string]string{}
	}
	f.puts[key] = string(data)
	return fmt.Sprintf("s3://test-bucket/%s", key), nil
}

func (f *fakeStorage) GetObjectURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://test-bucket.example.com/" + key, nil
}

func TestContributionServiceCreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewContributionService(repos.contributions, nil)
	ctx := context.Background()

	user := repos.seedUser(t, "cs-user@example.com")
	contribution, err := svc.Create(ctx, ContributionInput{
		UserID: user.ID,
		Type:   " mentoring ",
		Amount: decimal.New(25, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, "mentoring", contribution.Type)
	assert.Equal(t, domain.ContributionStatusPending, contribution.Status)
	assert.False(t, contribution.Date.IsZero())
}

func TestContributionServiceCreateValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewContributionService(repos.contributions, nil)
	ctx := context.Background()

	user := repos.seedUser(t, "cv-user@example.com")

	_, err := svc.Create(ctx, ContributionInput{UserID: user.ID, Type: "  ", Amount: decimal.New(1, 0)})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Create(ctx, ContributionInput{
		UserID: user.ID,
		Type:   "funding",
		Amount: decimal.RequireFromString("-2"),
	})
	assert.True(t, domain.IsValidation(err))
}

func TestContributionServiceAttachReceipt(t *testing.T) {
	repos := newTestRepos(t)
	store := &fakeStorage{}
	svc := NewContributionService(repos.contributions, store)
	ctx := context.Background()

	user := repos.seedUser(t, "cr-user@example.com")
	contribution, err := svc.Create(ctx, ContributionInput{
		UserID: user.ID,
		Type:   "hardware",
		Amount: decimal.New(120, 0),
	})
	require.NoError(t, err)

	updated, err := svc.AttachReceipt(ctx, contribution.ID, "invoice.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.ReceiptURL, "s3://test-bucket/contributions/"))
	assert.True(t, strings.HasSuffix(updated.ReceiptURL, ".pdf"))

	got, err := svc.Get(ctx, contribution.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.ReceiptURL, got.ReceiptURL)
	require.Len(t, store.puts, 1)

	link, err := svc.ReceiptLink(ctx, contribution.ID)
	require.NoError(t, err)
	assert.Contains(t, link, updated.ReceiptURL)
}

func TestContributionServiceReceiptLinkMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewContributionService(repos.contributions, &fakeStorage{})
	ctx := context.Background()

	user := repos.seedUser(t, "cm-user@example.com")
	contribution, err := svc.Create(ctx, ContributionInput{
		UserID: user.ID,
		Type:   "funding",
		Amount: decimal.New(10, 0),
	})
	require.NoError(t, err)

	_, err = svc.ReceiptLink(ctx, contribution.ID)
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}

func TestContributionServiceAttachReceiptUnconfigured(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewContributionService(repos.contributions, nil)
	ctx := context.Background()

	user := repos.seedUser(t, "cn-user@example.com")
	contribution, err := svc.Create(ctx, ContributionInput{
		UserID: user.ID,
		Type:   "funding",
		Amount: decimal.New(10, 0),
	})
	require.NoError(t, err)

	_, err = svc.AttachReceipt(ctx, contribution.ID, "r.png", "image/png", strings.NewReader("png"))
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}
