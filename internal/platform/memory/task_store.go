package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore implements the store.TaskStore interface on an ordered slice
// held in process memory.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	logger *slog.Logger
}

// NewTaskStore creates a store holding copies of the given tasks, in order.
// If logger is nil, a default logger will be used.
func NewTaskStore(tasks []domain.Task, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  domain.CloneTasks(tasks),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// indexOf returns the slice position of id, or -1. Callers hold mu.
func (s *TaskStore) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetAll implements store.TaskStore.GetAll
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneTasks(s.tasks), nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found", slog.Int("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[i].Clone()
	return &task, nil
}

// Insert implements store.TaskStore.Insert
// Returns store.ErrTaskExists if a task with the same ID is already stored.
func (s *TaskStore) Insert(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return fmt.Errorf("%w: task is nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID) >= 0 {
		log.Debug("task id already stored", slog.Int("task_id", task.ID))
		return store.ErrTaskExists
	}

	s.tasks = append(s.tasks, task.Clone())

	log.Debug("task inserted",
		slog.Int("task_id", task.ID),
		slog.Int("count", len(s.tasks)))
	return nil
}

// Remove implements store.TaskStore.Remove
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Remove(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	log.Debug("task removed",
		slog.Int("task_id", id),
		slog.Int("count", len(s.tasks)))
	return nil
}

// Update implements store.TaskStore.Update
// The stored task is replaced only when fn succeeds.
func (s *TaskStore) Update(
	ctx context.Context,
	id int,
	fn func(task *domain.Task) error,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}

	working := s.tasks[i].Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	if working.ID != id {
		return nil, store.NewStoreError("task", "update",
			fmt.Sprintf("identifier changed from %d to %d", id, working.ID),
			store.ErrInvalidEntity)
	}

	s.tasks[i] = working.Clone()

	log.Debug("task updated", slog.Int("task_id", id))
	return &working, nil
}

// Reset implements store.TaskStore.Reset
func (s *TaskStore) Reset(ctx context.Context, tasks []domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fresh := domain.CloneTasks(tasks)

	s.mu.Lock()
	s.tasks = fresh
	s.mu.Unlock()

	log.Debug("task store reset", slog.Int("count", len(fresh)))
	return nil
}
