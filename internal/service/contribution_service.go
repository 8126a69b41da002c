package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
	"hackaton-backend/internal/storage"
)

// ErrStorageNotConfigured indicates receipt uploads are disabled because no
// object storage bucket was configured.
var ErrStorageNotConfigured = errors.New("object storage is not configured")

// ContributionInput carries the fields needed to record a contribution.
type ContributionInput struct {
	UserID      int64
	Type        string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Status      domain.ContributionStatus
}

// ContributionUpdate carries the mutable contribution fields; nil fields are
// left untouched.
type ContributionUpdate struct {
	Type        *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	Status      *domain.ContributionStatus
}

// ContributionService coordinates contribution lifecycle operations and
// receipt uploads.
type ContributionService interface {
	Create(ctx context.Context, in ContributionInput) (*domain.Contribution, error)
	Get(ctx context.Context, id int64) (*domain.Contribution, error)
	List(ctx context.Context) ([]domain.Contribution, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Contribution, error)
	ListByType(ctx context.Context, cType string) ([]domain.Contribution, error)
	ListByStatus(ctx context.Context, status domain.ContributionStatus) ([]domain.Contribution, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.ContributionStatus) ([]domain.Contribution, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Contribution, error)
	Update(ctx context.Context, id int64, patch ContributionUpdate) (*domain.Contribution, error)
	Delete(ctx context.Context, id int64) error
	AttachReceipt(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*domain.Contribution, error)
	ReceiptLink(ctx context.Context, id int64) (string, error)
}

type contributionService struct {
	contributions repository.ContributionRepository
	receipts      storage.Service
}

// NewContributionService builds a contribution service. receipts may be nil,
// in which case AttachReceipt fails with ErrStorageNotConfigured.
func NewContributionService(contributions repository.ContributionRepository, receipts storage.Service) ContributionService {
	return &contributionService{contributions: contributions, receipts: receipts}
}

func (s *contributionService) Create(ctx context.Context, in ContributionInput) (*domain.Contribution, error) {
	in.Type = strings.TrimSpace(in.Type)
	if in.UserID <= 0 {
		return nil, domain.NewValidation("contribution user is required")
	}
	if in.Type == "" {
		return nil, domain.NewValidation("contribution type is required")
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidation("contribution amount must not be negative")
	}
	if in.Status == "" {
		in.Status = domain.ContributionStatusPending
	}
	if !in.Status.Valid() {
		return nil, domain.NewValidation("unknown contribution status: %s", in.Status)
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}

	contribution := &domain.Contribution{
		UserID:      in.UserID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		Status:      in.Status,
	}
	if _, err := s.contributions.Create(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}

func (s *contributionService) Get(ctx context.Context, id int64) (*domain.Contribution, error) {
	return s.contributions.Get(ctx, id)
}

func (s *contributionService) List(ctx context.Context) ([]domain.Contribution, error) {
	return s.contributions.List(ctx)
}

func (s *contributionService) ListByUser(ctx context.Context, userID int64) ([]domain.Contribution, error) {
	return s.contributions.ListByUser(ctx, userID)
}

func (s *contributionService) ListByType(ctx context.Context, cType string) ([]domain.Contribution, error) {
	return s.contributions.ListByType(ctx, cType)
}

func (s *contributionService) ListByStatus(ctx context.Context, status domain.ContributionStatus) ([]domain.Contribution, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown contribution status: %s", status)
	}
	return s.contributions.ListByStatus(ctx, status)
}

func (s *contributionService) ListByUserAndStatus(ctx context.Context, userID int64, status domain.ContributionStatus) ([]domain.Contribution, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown contribution status: %s", status)
	}
	return s.contributions.ListByUserAndStatus(ctx, userID, status)
}

func (s *contributionService) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Contribution, error) {
	if end.Before(start) {
		return nil, domain.NewValidation("end date must not precede start date")
	}
	return s.contributions.ListByDateRange(ctx, start, end)
}

func (s *contributionService) Update(ctx context.Context, id int64, patch ContributionUpdate) (*domain.Contribution, error) {
	contribution, err := s.contributions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		if strings.TrimSpace(*patch.Type) == "" {
			return nil, domain.NewValidation("contribution type is required")
		}
		contribution.Type = strings.TrimSpace(*patch.Type)
	}
	if patch.Amount != nil {
		if patch.Amount.IsNegative() {
			return nil, domain.NewValidation("contribution amount must not be negative")
		}
		contribution.Amount = *patch.Amount
	}
	if patch.Description != nil {
		contribution.Description = *patch.Description
	}
	if patch.Date != nil {
		contribution.Date = *patch.Date
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, domain.NewValidation("unknown contribution status: %s", *patch.Status)
		}
		contribution.Status = *patch.Status
	}

	if err := s.contributions.Update(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}

func (s *contributionService) Delete(ctx context.Context, id int64) error {
	return s.contributions.Delete(ctx, id)
}

// AttachReceipt stores the uploaded document in object storage and records
// its location on the contribution.
func (s *contributionService) AttachReceipt(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*domain.Contribution, error) {
	if s.receipts == nil {
		return nil, ErrStorageNotConfigured
	}

	contribution, err := s.contributions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := path.Ext(filename)
	key := fmt.Sprintf("contributions/%d/%s%s", id, uuid.NewString(), ext)
	location, err := s.receipts.PutObject(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("store receipt: %w", err)
	}

	if err := s.contributions.SetReceiptURL(ctx, id, location); err != nil {
		return nil, err
	}
	contribution.ReceiptURL = location
	return contribution, nil
}

// ReceiptLink returns a short-lived download URL for the stored receipt.
func (s *contributionService) ReceiptLink(ctx context.Context, id int64) (string, error) {
	if s.receipts == nil {
		return "", ErrStorageNotConfigured
	}

	contribution, err := s.contributions.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if contribution.ReceiptURL == "" {
		return "", domain.NewNotFound("receipt", id)
	}

	url, err := s.receipts.GetObjectURL(ctx, contribution.ReceiptURL, 15*time.Minute)
	if err != nil {
		return "", fmt.Errorf("presign receipt: %w", err)
	}
	return url, nil
}
