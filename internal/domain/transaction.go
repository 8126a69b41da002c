package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusProcessed TransactionStatus = "PROCESSED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// Valid reports whether s is one of the known transaction statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusProcessed, TransactionStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transition.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusProcessed || s == TransactionStatusCancelled
}

// Transaction is a money movement recorded against a user.
type Transaction struct {
	ID        int64
	UserID    int64
	Type      TransactionType
	Category  string
	Amount    decimal.Decimal
	Status    TransactionStatus
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
