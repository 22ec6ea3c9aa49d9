package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task storage.
//
// Implementations keep tasks in insertion order and hand out copies: mutating
// a returned task never changes stored state.
type TaskStore interface {
	// GetAll returns every task in insertion order.
	// The result is never nil.
	GetAll(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int) (*domain.Task, error)

	// Insert appends a task to the store.
	// Returns ErrTaskExists if a task with the same ID is already stored.
	Insert(ctx context.Context, task *domain.Task) error

	// Remove deletes the task with the given identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	Remove(ctx context.Context, id int) error

	// Update mutates the stored task with the given identifier in place.
	// fn receives a copy of the task; the copy is committed only when fn
	// returns nil, so a failed mutation leaves the stored task unchanged.
	// fn must not change the task ID.
	// Returns ErrTaskNotFound if the task does not exist, or fn's error.
	Update(ctx context.Context, id int, fn func(task *domain.Task) error) (*domain.Task, error)

	// Reset replaces the store contents with tasks, in order.
	Reset(ctx context.Context, tasks []domain.Task) error
}
