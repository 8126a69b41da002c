package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

// ProjectInput carries the fields needed to create a project.
type ProjectInput struct {
	Name        string
	Description string
	Category    string
	StartDate   time.Time
	EndDate     *time.Time
	Status      domain.ProjectStatus
	Budget      decimal.Decimal
	UserID      int64
}

// ProjectUpdate carries the mutable project fields; nil fields are left
// untouched. Ownership (UserID) is immutable after creation.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Category    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *domain.ProjectStatus
	Budget      *decimal.Decimal
}

// ProjectService coordinates project lifecycle and membership operations.
type ProjectService interface {
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Project, error)
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Project, error)
	ListByUserAndStatus(ctx context.Context, userID int64, status domain.ProjectStatus) ([]domain.Project, error)
	ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Project, error)
	ListByBudgetGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Project, error)
	Update(ctx context.Context, id int64, patch ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	Join(ctx context.Context, projectID, userID int64) error
	Leave(ctx context.Context, projectID, userID int64) error
	Members(ctx context.Context, projectID int64) ([]domain.ProjectMember, error)
}

type projectService struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	users    repository.UserRepository
}

func NewProjectService(projects repository.ProjectRepository, tasks repository.TaskRepository, users repository.UserRepository) ProjectService {
	return &projectService{projects: projects, tasks: tasks, users: users}
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*domain.Project, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewValidation("project name is required")
	}
	if in.UserID <= 0 {
		return nil, domain.NewValidation("project owner is required")
	}
	if in.StartDate.IsZero() {
		return nil, domain.NewValidation("project start date is required")
	}
	if in.Status == "" {
		in.Status = domain.ProjectStatusPlanned
	}
	if !in.Status.Valid() {
		return nil, domain.NewValidation("unknown project status: %s", in.Status)
	}
	if in.Budget.IsNegative() {
		return nil, domain.NewValidation("project budget must not be negative")
	}

	project := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
		Budget:      in.Budget,
		UserID:      in.UserID,
	}
	if _, err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.Get(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *projectService) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown project status: %s", status)
	}
	return s.projects.ListByStatus(ctx, status)
}

func (s *projectService) ListByCategory(ctx context.Context, category string) ([]domain.Project, error) {
	return s.projects.ListByCategory(ctx, category)
}

func (s *projectService) ListByUserAndStatus(ctx context.Context, userID int64, status domain.ProjectStatus) ([]domain.Project, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown project status: %s", status)
	}
	return s.projects.ListByUserAndStatus(ctx, userID, status)
}

func (s *projectService) ListByStartDateRange(ctx context.Context, start, end time.Time) ([]domain.Project, error) {
	if end.Before(start) {
		return nil, domain.NewValidation("end date must not precede start date")
	}
	return s.projects.ListByStartDateRange(ctx, start, end)
}

func (s *projectService) ListByBudgetGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Project, error) {
	return s.projects.ListByBudgetGreaterThan(ctx, min)
}

func (s *projectService) Update(ctx context.Context, id int64, patch ProjectUpdate) (*domain.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, domain.NewValidation("project name is required")
		}
		project.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.StartDate != nil {
		if patch.StartDate.IsZero() {
			return nil, domain.NewValidation("project start date is required")
		}
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, domain.NewValidation("unknown project status: %s", *patch.Status)
		}
		project.Status = *patch.Status
	}
	if patch.Budget != nil {
		if patch.Budget.IsNegative() {
			return nil, domain.NewValidation("project budget must not be negative")
		}
		project.Budget = *patch.Budget
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete rejects projects that still own tasks rather than cascading.
func (s *projectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.projects.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.tasks.CountByProject(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewConflict("project %d still has %d tasks", id, count)
	}
	return s.projects.Delete(ctx, id)
}

// Join is idempotent: joining a project twice succeeds without duplicating
// the membership.
func (s *projectService) Join(ctx context.Context, projectID, userID int64) error {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return err
	}
	return s.projects.AddMember(ctx, projectID, userID, time.Now().UTC())
}

// Leave removes the membership if present; leaving a project the user never
// joined is a silent no-op.
func (s *projectService) Leave(ctx context.Context, projectID, userID int64) error {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return err
	}
	return s.projects.RemoveMember(ctx, projectID, userID)
}

func (s *projectService) Members(ctx context.Context, projectID int64) ([]domain.ProjectMember, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.projects.ListMembers(ctx, projectID)
}
