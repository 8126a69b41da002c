package service

import (
	"context"
	"strings"
	"time"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

// TaskInput carries the fields needed to create a task.
type TaskInput struct {
	ProjectID   int64
	AssignedTo  *int64
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     time.Time
}

// TaskUpdate carries the mutable task fields; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time
	AssignedTo  *int64
}

// TaskService coordinates task lifecycle operations and the assign/complete
// transitions.
type TaskService interface {
	Create(ctx context.Context, in TaskInput) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListByAssignedUser(ctx context.Context, userID int64) ([]domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error)
	ListByProjectAndStatus(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error)
	ListByAssignedUserAndStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]domain.Task, error)
	ListOverdue(ctx context.Context, before time.Time) ([]domain.Task, error)
	Update(ctx context.Context, id int64, patch TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, taskID, userID int64) (*domain.Task, error)
	Complete(ctx context.Context, taskID int64) (*domain.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository) TaskService {
	return &taskService{tasks: tasks, users: users}
}

func (s *taskService) Create(ctx context.Context, in TaskInput) (*domain.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, domain.NewValidation("task title is required")
	}
	if in.ProjectID <= 0 {
		return nil, domain.NewValidation("task project is required")
	}
	if in.Status == "" {
		in.Status = domain.TaskStatusTodo
	}
	if !in.Status.Valid() {
		return nil, domain.NewValidation("unknown task status: %s", in.Status)
	}
	if in.Priority == "" {
		in.Priority = domain.TaskPriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, domain.NewValidation("unknown task priority: %s", in.Priority)
	}
	if in.AssignedTo != nil {
		if _, err := s.users.Get(ctx, *in.AssignedTo); err != nil {
			return nil, err
		}
	}

	task := &domain.Task{
		ProjectID:   in.ProjectID,
		AssignedTo:  in.AssignedTo,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) ListByAssignedUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.tasks.ListByAssignedUser(ctx, userID)
}

func (s *taskService) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown task status: %s", status)
	}
	return s.tasks.ListByStatus(ctx, status)
}

func (s *taskService) ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error) {
	if !priority.Valid() {
		return nil, domain.NewValidation("unknown task priority: %s", priority)
	}
	return s.tasks.ListByPriority(ctx, priority)
}

func (s *taskService) ListByProjectAndStatus(ctx context.Context, projectID int64, status domain.TaskStatus) ([]domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown task status: %s", status)
	}
	return s.tasks.ListByProjectAndStatus(ctx, projectID, status)
}

func (s *taskService) ListByAssignedUserAndStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewValidation("unknown task status: %s", status)
	}
	return s.tasks.ListByAssignedUserAndStatus(ctx, userID, status)
}

func (s *taskService) ListOverdue(ctx context.Context, before time.Time) ([]domain.Task, error) {
	return s.tasks.ListByDueDateBefore(ctx, before)
}

func (s *taskService) Update(ctx context.Context, id int64, patch TaskUpdate) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, domain.NewValidation("task title is required")
		}
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, domain.NewValidation("unknown task status: %s", *patch.Status)
		}
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, domain.NewValidation("unknown task priority: %s", *patch.Priority)
		}
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.AssignedTo != nil {
		if _, err := s.users.Get(ctx, *patch.AssignedTo); err != nil {
			return nil, err
		}
		task.AssignedTo = patch.AssignedTo
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

// Assign sets the task's assignee after checking the user exists.
func (s *taskService) Assign(ctx context.Context, taskID, userID int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	task.AssignedTo = &userID
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Complete marks the task DONE. Completing an already done task succeeds.
func (s *taskService) Complete(ctx context.Context, taskID int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatusDone
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
