package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository/sqlite"
	"hackaton-backend/internal/service"
)

func newEventService(t *testing.T) service.EventService {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	users := sqlite.NewUserRepository(db)
	events := sqlite.NewEventRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, events.Init(ctx))

	user := &domain.User{
		Email:        "scheduler@example.com",
		PasswordHash: "x",
		FirstName:    "Sched",
		LastName:     "Uler",
		Role:         domain.RoleUser,
	}
	_, err = users.Create(ctx, user)
	require.NoError(t, err)

	svc := service.NewEventService(events, users)
	_, err = svc.Create(ctx, service.EventInput{
		UserID:    user.ID,
		Title:     "already over",
		StartDate: time.Now().Add(-2 * time.Hour),
		EndDate:   time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	return svc
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSchedulerSweepsEvents(t *testing.T) {
	svc := newEventService(t)
	s := New(svc, 10*time.Millisecond, quietLogger())

	s.Start(context.Background())
	defer s.Shutdown()

	require.Eventually(t, func() bool {
		events, err := svc.ListByStatus(context.Background(), domain.EventStatusCompleted)
		return err == nil && len(events) == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSchedulerDisabledWithoutInterval(t *testing.T) {
	svc := newEventService(t)
	s := New(svc, 0, quietLogger())

	s.Start(context.Background())
	s.Shutdown() // no-op, must not block or panic

	events, err := svc.ListByStatus(context.Background(), domain.EventStatusPlanned)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
