package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, NewUserRepository(db).Init(ctx))
	require.NoError(t, NewProjectRepository(db).Init(ctx))
	require.NoError(t, NewTaskRepository(db).Init(ctx))
	require.NoError(t, NewEventRepository(db).Init(ctx))
	require.NoError(t, NewTransactionRepository(db).Init(ctx))
	require.NoError(t, NewContributionRepository(db).Init(ctx))
	return db
}

func seedUser(t *testing.T, db *sql.DB, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Role:         domain.RoleUser,
	}
	_, err := NewUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func seedProject(t *testing.T, db *sql.DB, userID int64, name string) *domain.Project {
	t.Helper()

	project := &domain.Project{
		Name:      name,
		StartDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Status:    domain.ProjectStatusPlanned,
		UserID:    userID,
	}
	_, err := NewProjectRepository(db).Create(context.Background(), project)
	require.NoError(t, err)
	return project
}
