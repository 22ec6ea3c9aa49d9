package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskClone(t *testing.T) {
	t.Parallel()

	original := Task{ID: 1, Title: "Pay bills", Tags: []string{"finance", "bills"}}
	clone := original.Clone()

	clone.Tags[0] = "changed"
	assert.Equal(t, "finance", original.Tags[0], "clone must not share the tags slice")

	empty := Task{ID: 2}.Clone()
	assert.NotNil(t, empty.Tags)
	assert.Empty(t, empty.Tags)
}

func TestTaskApplyFrom(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	target := Task{ID: 7, Title: "old"}
	src := Task{
		ID:          99,
		Title:       "new",
		Description: "desc",
		Deadline:    deadline,
		IsCompleted: true,
		Priority:    3,
		Tags:        []string{"a"},
	}

	target.ApplyFrom(src)

	assert.Equal(t, 7, target.ID, "identifier must not change")
	assert.Equal(t, "new", target.Title)
	assert.Equal(t, "desc", target.Description)
	assert.Equal(t, deadline, target.Deadline)
	assert.True(t, target.IsCompleted)
	assert.Equal(t, 3, target.Priority)
	assert.Equal(t, []string{"a"}, target.Tags)

	src.Tags[0] = "mutated"
	assert.Equal(t, "a", target.Tags[0])
}

func TestSameDate(t *testing.T) {
	t.Parallel()

	morning := time.Date(2030, 5, 1, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2030, 5, 1, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2030, 5, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(morning, evening, time.UTC))
	assert.False(t, SameDate(evening, nextDay, time.UTC))

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	assert.True(t, SameDate(evening, nextDay, plusTwo), "dates are compared in the given location")
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	ts := time.Date(2030, 5, 1, 17, 45, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}

func TestSeedTasks(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := SeedTasks(now)

	require.Len(t, tasks, 10)
	seen := make(map[int]bool)
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate seed id %d", task.ID)
		seen[task.ID] = true
		assert.True(t, task.Deadline.After(now), "seed deadlines are in the future")
	}

	groceries := tasks[2]
	assert.Equal(t, 3, groceries.ID)
	assert.Equal(t, 1, groceries.Priority)
	assert.False(t, groceries.IsCompleted)
	assert.Equal(t, []string{"groceries", "home"}, groceries.Tags)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "id", Message: "ID is required."},
		{Field: "id", Message: "ID must be greater than 0."},
		{Field: "priority", Message: "Please prioritize the task with a number from 1 to 5."},
	}

	var err error = errs
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "priority: Please prioritize")
	assert.Equal(t, []string{"id", "priority"}, errs.Fields())

	var target ValidationErrors
	require.True(t, errors.As(err, &target))
	assert.Len(t, target, 3)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("id", "has invalid format", ErrInvalidID)
	assert.Equal(t, "id has invalid format", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidID))
}
