package domain

import (
	"slices"
	"time"
)

// Task is the single record tracked by the service. Identifiers are
// assigned by the caller, not generated.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	IsCompleted bool      `json:"isCompleted"`
	Priority    int       `json:"priority"`
	Tags        []string  `json:"tags"`
}

// Clone returns a deep copy of the task so callers never share the
// underlying tags slice with the store. A nil tags slice becomes empty.
func (t Task) Clone() Task {
	c := t
	if t.Tags == nil {
		c.Tags = []string{}
	} else {
		c.Tags = slices.Clone(t.Tags)
	}
	return c
}

// HasTag reports whether the task carries the exact tag.
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// ApplyFrom copies every mutable field from src onto t. The identifier is
// left untouched.
func (t *Task) ApplyFrom(src Task) {
	t.Title = src.Title
	t.Description = src.Description
	t.Deadline = src.Deadline
	t.IsCompleted = src.IsCompleted
	t.Priority = src.Priority
	t.Tags = src.Clone().Tags
}

// CloneTasks deep copies a slice of tasks. The result is never nil.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date when both
// are expressed in loc.
func SameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
