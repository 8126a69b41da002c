package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func TestTaskRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "t-owner@example.com")
	project := seedProject(t, db, owner.ID, "Tasks")

	task := &domain.Task{
		ProjectID:   project.ID,
		AssignedTo:  &owner.ID,
		Title:       "Wire the sensor",
		Description: "solder and test",
		Status:      domain.TaskStatusTodo,
		Priority:    domain.TaskPriorityHigh,
		DueDate:     time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Wire the sensor", got.Title)
	assert.Equal(t, domain.TaskPriorityHigh, got.Priority)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, owner.ID, *got.AssignedTo)
}

func TestTaskRepositoryUnknownProject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.Create(context.Background(), &domain.Task{
		ProjectID: 404,
		Title:     "Orphan",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.TaskPriorityLow,
		DueDate:   time.Now(),
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestTaskRepositoryProjectStatusFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "f-owner@example.com")
	project := seedProject(t, db, owner.ID, "Filters")
	other := seedProject(t, db, owner.ID, "Other")

	mk := func(projectID int64, status domain.TaskStatus) {
		_, err := repo.Create(ctx, &domain.Task{
			ProjectID: projectID,
			Title:     "task",
			Status:    status,
			Priority:  domain.TaskPriorityMedium,
			DueDate:   time.Now(),
		})
		require.NoError(t, err)
	}
	mk(project.ID, domain.TaskStatusTodo)
	mk(project.ID, domain.TaskStatusDone)
	mk(other.ID, domain.TaskStatusTodo)

	byProject, err := repo.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byBoth, err := repo.ListByProjectAndStatus(ctx, project.ID, domain.TaskStatusTodo)
	require.NoError(t, err)
	assert.Len(t, byBoth, 1)

	count, err := repo.CountByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestTaskRepositoryDueDateBefore(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "due-owner@example.com")
	project := seedProject(t, db, owner.ID, "Due")

	cutoff := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, due := range []time.Time{cutoff.Add(-24 * time.Hour), cutoff.Add(24 * time.Hour)} {
		_, err := repo.Create(ctx, &domain.Task{
			ProjectID: project.ID,
			Title:     "task",
			Status:    domain.TaskStatusTodo,
			Priority:  domain.TaskPriorityMedium,
			DueDate:   due,
		})
		require.NoError(t, err)
	}

	overdue, err := repo.ListByDueDateBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.True(t, overdue[0].DueDate.Before(cutoff))
}

func TestTaskRepositoryUpdatePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "u-owner@example.com")
	project := seedProject(t, db, owner.ID, "Updates")

	task := &domain.Task{
		ProjectID: project.ID,
		Title:     "before",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.TaskPriorityMedium,
		DueDate:   time.Now(),
	}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)
	created := task.CreatedAt

	task.Title = "after"
	task.Status = domain.TaskStatusInProgress
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, domain.TaskStatusInProgress, got.Status)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestTaskRepositoryDeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "del-owner@example.com")
	project := seedProject(t, db, owner.ID, "Deletes")

	task := &domain.Task{
		ProjectID: project.ID,
		Title:     "gone",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.TaskPriorityMedium,
		DueDate:   time.Now(),
	}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.True(t, domain.IsNotFound(err))
}
