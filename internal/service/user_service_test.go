package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
)

func TestUserServiceRegister(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Alice@Example.COM ", "supersecret", "Alice", "Doe")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Empty(t, user.PasswordHash, "hash must not leak")

	// stored hash still validates the password
	authed, err := svc.Authenticate(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestUserServiceRegisterValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users)
	ctx := context.Background()

	cases := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
	}{
		{"bad email", "not-an-email", "supersecret", "A", "B"},
		{"short password", "a@example.com", "short", "A", "B"},
		{"missing first name", "a@example.com", "supersecret", " ", "B"},
		{"missing last name", "a@example.com", "supersecret", "A", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.password, tc.firstName, tc.lastName)
			assert.True(t, domain.IsValidation(err), "got %v", err)
		})
	}
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup@example.com", "supersecret", "A", "B")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@example.com", "supersecret", "A", "B")
	assert.True(t, domain.IsConflict(err), "got %v", err)
}

func TestUserServiceAuthenticateFailures(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "auth@example.com", "supersecret", "A", "B")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "auth@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserServiceUpdatePassword(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users)
	ctx := context.Background()

	user, err := svc.Register(ctx, "rotate@example.com", "supersecret", "A", "B")
	require.NoError(t, err)

	short := "short"
	_, err = svc.Update(ctx, user.ID, UserUpdate{Password: &short})
	assert.True(t, domain.IsValidation(err), "got %v", err)

	next := "evenmoresecret"
	updated, err := svc.Update(ctx, user.ID, UserUpdate{Password: &next})
	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash, "hash must not leak")

	_, err = svc.Authenticate(ctx, "rotate@example.com", "evenmoresecret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "rotate@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserServiceUpdateRole(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users)
	ctx := context.Background()

	user, err := svc.Register(ctx, "promote@example.com", "supersecret", "A", "B")
	require.NoError(t, err)

	admin := domain.RoleAdmin
	updated, err := svc.Update(ctx, user.ID, UserUpdate{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)

	bogus := domain.Role("SUPERUSER")
	_, err = svc.Update(ctx, user.ID, UserUpdate{Role: &bogus})
	assert.True(t, domain.IsValidation(err))
}
