// Package query implements filtering and sorting over task sequences.
//
// Every function is pure: inputs are never modified and results are fresh,
// non-nil slices, so callers never have to distinguish "no matches" from an
// absent result.
package query

import (
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// Criteria holds the optional constraints of a composite filter. Nil fields
// and an empty Tags slice are skipped.
type Criteria struct {
	IsCompleted *bool
	Priority    *int
	Deadline    *time.Time
	Tags        []string
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.IsCompleted == nil && c.Priority == nil && c.Deadline == nil && len(c.Tags) == 0
}

// where returns the tasks matching keep, preserving order.
func where(tasks []domain.Task, keep func(t *domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for i := range tasks {
		if keep(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// ByCompletion returns the tasks whose completion flag equals completed.
func ByCompletion(tasks []domain.Task, completed bool) []domain.Task {
	return where(tasks, func(t *domain.Task) bool { return t.IsCompleted == completed })
}

// ByPriority returns the tasks with exactly the given priority.
func ByPriority(tasks []domain.Task, priority int) []domain.Task {
	return where(tasks, func(t *domain.Task) bool { return t.Priority == priority })
}

// ByDeadlineDate returns the tasks whose deadline falls on the same calendar
// date as date. Time of day is ignored; dates are compared in date's location.
func ByDeadlineDate(tasks []domain.Task, date time.Time) []domain.Task {
	loc := date.Location()
	return where(tasks, func(t *domain.Task) bool { return domain.SameDate(t.Deadline, date, loc) })
}

// ByTags returns the tasks carrying every one of tags.
func ByTags(tasks []domain.Task, tags []string) []domain.Task {
	return where(tasks, func(t *domain.Task) bool {
		for _, tag := range tags {
			if !t.HasTag(tag) {
				return false
			}
		}
		return true
	})
}

// Filter applies each set criterion in turn, each one narrowing the result
// of the previous.
func Filter(tasks []domain.Task, c Criteria) []domain.Task {
	result := where(tasks, func(*domain.Task) bool { return true })

	if c.IsCompleted != nil {
		result = ByCompletion(result, *c.IsCompleted)
	}
	if c.Priority != nil {
		result = ByPriority(result, *c.Priority)
	}
	if c.Deadline != nil {
		result = ByDeadlineDate(result, *c.Deadline)
	}
	if len(c.Tags) > 0 {
		result = ByTags(result, c.Tags)
	}

	return result
}
