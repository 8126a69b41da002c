package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
	"hackaton-backend/internal/repository/sqlite"
)

type testRepos struct {
	users         repository.UserRepository
	projects      repository.ProjectRepository
	tasks         repository.TaskRepository
	events        repository.EventRepository
	transactions  repository.TransactionRepository
	contributions repository.ContributionRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := testRepos{
		users:         sqlite.NewUserRepository(db),
		projects:      sqlite.NewProjectRepository(db),
		tasks:         sqlite.NewTaskRepository(db),
		events:        sqlite.NewEventRepository(db),
		transactions:  sqlite.NewTransactionRepository(db),
		contributions: sqlite.NewContributionRepository(db),
	}

	ctx := context.Background()
	require.NoError(t, repos.users.Init(ctx))
	require.NoError(t, repos.projects.Init(ctx))
	require.NoError(t, repos.tasks.Init(ctx))
	require.NoError(t, repos.events.Init(ctx))
	require.NoError(t, repos.transactions.Init(ctx))
	require.NoError(t, repos.contributions.Init(ctx))
	return repos
}

func (r testRepos) seedUser(t *testing.T, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Role:         domain.RoleUser,
	}
	_, err := r.users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func (r testRepos) seedProject(t *testing.T, userID int64) *domain.Project {
	t.Helper()

	project := &domain.Project{
		Name:      "Seed project",
		StartDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Status:    domain.ProjectStatusPlanned,
		UserID:    userID,
	}
	_, err := r.projects.Create(context.Background(), project)
	require.NoError(t, err)
	return project
}
