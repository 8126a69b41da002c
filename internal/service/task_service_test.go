package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func TestTaskServiceCreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewTaskService(repos.tasks, repos.users)
	ctx := context.Background()

	owner := repos.seedUser(t, "td-owner@example.com")
	project := repos.seedProject(t, owner.ID)

	task, err := svc.Create(ctx, TaskInput{
		ProjectID: project.ID,
		Title:     "Prototype",
		DueDate:   time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.AssignedTo)
}

func TestTaskServiceCreateUnknownAssignee(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewTaskService(repos.tasks, repos.users)
	ctx := context.Background()

	owner := repos.seedUser(t, "ta-owner@example.com")
	project := repos.seedProject(t, owner.ID)

	ghost := int64(999)
	_, err := svc.Create(ctx, TaskInput{
		ProjectID:  project.ID,
		Title:      "Haunted",
		DueDate:    time.Now(),
		AssignedTo: &ghost,
	})
	assert.True(t, domain.IsNotFound(err), "got %v", err)
}

func TestTaskServiceAssign(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewTaskService(repos.tasks, repos.users)
	ctx := context.Background()

	owner := repos.seedUser(t, "as-owner@example.com")
	assignee := repos.seedUser(t, "as-assignee@example.com")
	project := repos.seedProject(t, owner.ID)

	task, err := svc.Create(ctx, TaskInput{
		ProjectID: project.ID,
		Title:     "Assignable",
		DueDate:   time.Now(),
	})
	require.NoError(t, err)

	assigned, err := svc.Assign(ctx, task.ID, assignee.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, assignee.ID, *assigned.AssignedTo)

	_, err = svc.Assign(ctx, task.ID, 999)
	assert.True(t, domain.IsNotFound(err))
}

func TestTaskServiceCompleteIdempotent(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewTaskService(repos.tasks, repos.users)
	ctx := context.Background()

	owner := repos.seedUser(t, "tc-owner@example.com")
	project := repos.seedProject(t, owner.ID)

	task, err := svc.Create(ctx, TaskInput{
		ProjectID: project.ID,
		Title:     "Finish me",
		DueDate:   time.Now(),
	})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, done.Status)

	// completing again still succeeds and stays DONE
	again, err := svc.Complete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, again.Status)
}

func TestTaskServiceListOverdue(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewTaskService(repos.tasks, repos.users)
	ctx := context.Background()

	owner := repos.seedUser(t, "to-owner@example.com")
	project := repos.seedProject(t, owner.ID)

	now := time.Now()
	for _, due := range []time.Time{now.Add(-time.Hour), now.Add(time.Hour)} {
		_, err := svc.Create(ctx, TaskInput{
			ProjectID: project.ID,
			Title:     "task",
			DueDate:   due,
		})
		require.NoError(t, err)
	}

	overdue, err := svc.ListOverdue(ctx, now)
	require.NoError(t, err)
	assert.Len(t, overdue, 1)
}

func TestTaskServiceUpdateValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewTaskService(repos.tasks, repos.users)
	ctx := context.Background()

	owner := repos.seedUser(t, "tu-owner@example.com")
	project := repos.seedProject(t, owner.ID)

	task, err := svc.Create(ctx, TaskInput{
		ProjectID: project.ID,
		Title:     "Valid",
		DueDate:   time.Now(),
	})
	require.NoError(t, err)

	bogus := domain.TaskStatus("WAITING")
	_, err = svc.Update(ctx, task.ID, TaskUpdate{Status: &bogus})
	assert.True(t, domain.IsValidation(err))

	empty := "  "
	_, err = svc.Update(ctx, task.ID, TaskUpdate{Title: &empty})
	assert.True(t, domain.IsValidation(err))
}
