package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContributionStatus string

const (
	ContributionStatusPending   ContributionStatus = "PENDING"
	ContributionStatusConfirmed ContributionStatus = "CONFIRMED"
	ContributionStatusCancelled ContributionStatus = "CANCELLED"
)

// Valid reports whether s is one of the known contribution statuses.
func (s ContributionStatus) Valid() bool {
	switch s {
	case ContributionStatusPending, ContributionStatusConfirmed, ContributionStatusCancelled:
		return true
	}
	return false
}

// Contribution is a member payment (dues, donation, sponsorship) recorded
// against a user. ReceiptURL points at the uploaded receipt in object
// storage when one was attached.
type Contribution struct {
	ID          int64
	UserID      int64
	Type        string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Status      ContributionStatus
	ReceiptURL  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
