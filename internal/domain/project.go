package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "PLANNED"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a hackathon project owned by a single user. Additional members
// join through the project_members association.
type Project struct {
	ID          int64
	Name        string
	Description string
	Category    string
	StartDate   time.Time
	EndDate     *time.Time
	Status      ProjectStatus
	Budget      decimal.Decimal
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectMember links a user to a project they joined.
type ProjectMember struct {
	ProjectID int64
	UserID    int64
	JoinedAt  time.Time
}
