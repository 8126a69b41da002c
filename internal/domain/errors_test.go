package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	notFound := NewNotFound("task", 7)
	conflict := NewConflict("already %s", "PROCESSED")
	validation := NewValidation("title is required")

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(conflict))
	assert.True(t, IsConflict(conflict))
	assert.True(t, IsValidation(validation))

	// classification survives wrapping
	wrapped := fmt.Errorf("outer: %w", notFound)
	assert.True(t, IsNotFound(wrapped))

	assert.Contains(t, notFound.Error(), "task")
	assert.Contains(t, notFound.Error(), "7")
}

func TestNotFoundWithoutID(t *testing.T) {
	err := &NotFoundError{Entity: "user"}
	assert.NotContains(t, err.Error(), "0")
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, TaskStatusInProgress.Valid())
	assert.False(t, TaskStatus("WAITING").Valid())

	assert.True(t, TransactionStatusProcessed.Terminal())
	assert.True(t, TransactionStatusCancelled.Terminal())
	assert.False(t, TransactionStatusPending.Terminal())

	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("ROOT").Valid())
}
