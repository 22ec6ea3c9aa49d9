package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/domain/query"
	"github.com/phrazzld/tasks-api/internal/domain/validation"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// TaskService provides task-related operations
type TaskService interface {
	// List returns every task in insertion order
	List(ctx context.Context) ([]domain.Task, error)

	// Get retrieves a task by its ID
	Get(ctx context.Context, id int) (*domain.Task, error)

	// ByCompletion returns the tasks whose completion flag equals completed
	ByCompletion(ctx context.Context, completed bool) ([]domain.Task, error)

	// ByPriority returns the tasks with exactly the given priority
	ByPriority(ctx context.Context, priority int) ([]domain.Task, error)

	// Sort returns every task ordered by sortBy ("deadline" or "priority")
	Sort(ctx context.Context, sortBy, sortOrder string) ([]domain.Task, error)

	// Filter returns the tasks matching every criterion that is set
	Filter(ctx context.Context, criteria query.Criteria) ([]domain.Task, error)

	// Create validates and stores a new task, returning the full task list
	Create(ctx context.Context, task domain.Task) ([]domain.Task, error)

	// Delete removes a task, returning the remaining tasks
	Delete(ctx context.Context, id int) ([]domain.Task, error)

	// Replace overwrites every mutable field of an existing task
	Replace(ctx context.Context, id int, task domain.Task) (*domain.Task, error)

	// UpdateTitle changes only the title of an existing task
	UpdateTitle(ctx context.Context, id int, title string) (*domain.Task, error)

	// Reset restores the store to its seed data
	Reset(ctx context.Context) error
}

// Option configures optional task service dependencies.
type Option func(*taskServiceImpl)

// WithClock sets the clock used for deadline validation and seeding.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed sets the function producing the tasks Reset restores.
func WithSeed(seed func(now time.Time) []domain.Task) Option {
	return func(s *taskServiceImpl) {
		if seed != nil {
			s.seed = seed
		}
	}
}

// WithMetrics sets the collectors the service records operations in.
func WithMetrics(m *Metrics) Option {
	return func(s *taskServiceImpl) {
		if m != nil {
			s.metrics = m
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore      store.TaskStore
	eventEmitter   events.EventEmitter
	taskValidator  *validation.Validator
	titleValidator *validation.Validator
	metrics        *Metrics
	now            func() time.Time
	seed           func(now time.Time) []domain.Task
	logger         *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	// Validate dependencies
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		taskStore:    taskStore,
		eventEmitter: eventEmitter,
		now:          time.Now,
		seed:         domain.SeedTasks,
		logger:       logger.With("component", "task_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		// Unregistered collectors keep the recording path uniform.
		s.metrics = NewMetrics(prometheus.NewRegistry())
	}

	s.taskValidator = validation.NewTaskValidator(s.now)
	s.titleValidator = validation.NewTitleValidator()

	return s, nil
}

// log returns the request logger tagged with this component, or the
// service logger when the context carries none.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "task_service")
	}
	return s.logger
}

// snapshot reads every stored task.
func (s *taskServiceImpl) snapshot(ctx context.Context, operation string) ([]domain.Task, error) {
	tasks, err := s.taskStore.GetAll(ctx)
	if err != nil {
		s.log(ctx).Error("failed to read tasks",
			"error", err,
			"operation", operation)
		return nil, NewTaskServiceError(operation, "failed to read tasks", err)
	}
	return tasks, nil
}

// emit publishes a task event. The mutation it describes has already been
// committed, so failures are logged and not returned.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, taskID int, payload any) {
	event, err := events.NewTaskEvent(eventType, taskID, payload)
	if err != nil {
		s.log(ctx).Error("failed to create task event",
			"error", err,
			"event_type", eventType,
			"task_id", taskID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Error("failed to emit task event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType,
			"task_id", taskID)
	}
}

// List returns every task in insertion order
func (s *taskServiceImpl) List(ctx context.Context) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("list", start, err) }(time.Now())

	tasks, err = s.snapshot(ctx, "list_tasks")
	if err != nil {
		return nil, err
	}
	s.metrics.setStored(len(tasks))
	return tasks, nil
}

// Get retrieves a task by its ID
func (s *taskServiceImpl) Get(ctx context.Context, id int) (task *domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("get", start, err) }(time.Now())

	task, err = s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("task not found", "task_id", id)
			return nil, ErrTaskNotFound
		}
		s.log(ctx).Error("failed to retrieve task",
			"error", err,
			"task_id", id)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// ByCompletion returns the tasks whose completion flag equals completed
func (s *taskServiceImpl) ByCompletion(ctx context.Context, completed bool) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("by_completion", start, err) }(time.Now())

	all, err := s.snapshot(ctx, "filter_by_completion")
	if err != nil {
		return nil, err
	}
	return query.ByCompletion(all, completed), nil
}

// ByPriority returns the tasks with exactly the given priority
func (s *taskServiceImpl) ByPriority(ctx context.Context, priority int) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("by_priority", start, err) }(time.Now())

	all, err := s.snapshot(ctx, "filter_by_priority")
	if err != nil {
		return nil, err
	}
	return query.ByPriority(all, priority), nil
}

// Sort returns every task ordered by sortBy
func (s *taskServiceImpl) Sort(ctx context.Context, sortBy, sortOrder string) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("sort", start, err) }(time.Now())

	all, err := s.snapshot(ctx, "sort_tasks")
	if err != nil {
		return nil, err
	}

	tasks, err = query.Sort(all, sortBy, sortOrder)
	if err != nil {
		s.log(ctx).Debug("rejected sort request",
			"sort_by", sortBy,
			"sort_order", sortOrder)
		return nil, NewTaskServiceError("sort_tasks", "invalid sort parameter", err)
	}
	return tasks, nil
}

// Filter returns the tasks matching every criterion that is set
func (s *taskServiceImpl) Filter(ctx context.Context, criteria query.Criteria) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("filter", start, err) }(time.Now())

	all, err := s.snapshot(ctx, "filter_tasks")
	if err != nil {
		return nil, err
	}
	return query.Filter(all, criteria), nil
}

// Create validates and stores a new task, returning the full task list
func (s *taskServiceImpl) Create(ctx context.Context, task domain.Task) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("create", start, err) }(time.Now())

	if err = s.taskValidator.Validate(&task); err != nil {
		s.log(ctx).Debug("task failed validation on create",
			"task_id", task.ID,
			"error", err)
		return nil, err
	}

	if err = s.taskStore.Insert(ctx, &task); err != nil {
		if store.IsDuplicateError(err) {
			s.log(ctx).Debug("task id already in use", "task_id", task.ID)
		} else {
			s.log(ctx).Error("failed to store task",
				"error", err,
				"task_id", task.ID)
		}
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}

	s.log(ctx).Info("task created successfully", "task_id", task.ID)
	s.emit(ctx, events.TaskCreated, task.ID, task)

	tasks, err = s.snapshot(ctx, "create_task")
	if err != nil {
		return nil, err
	}
	s.metrics.setStored(len(tasks))
	return tasks, nil
}

// Delete removes a task, returning the remaining tasks
func (s *taskServiceImpl) Delete(ctx context.Context, id int) (tasks []domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("delete", start, err) }(time.Now())

	if err = s.taskStore.Remove(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("task to delete not found", "task_id", id)
			return nil, ErrTaskNotFound
		}
		s.log(ctx).Error("failed to delete task",
			"error", err,
			"task_id", id)
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.log(ctx).Info("task deleted successfully", "task_id", id)
	s.emit(ctx, events.TaskDeleted, id, nil)

	tasks, err = s.snapshot(ctx, "delete_task")
	if err != nil {
		return nil, err
	}
	s.metrics.setStored(len(tasks))
	return tasks, nil
}

// Replace overwrites every mutable field of an existing task. Existence is
// checked before the replacement is validated; the ID in task is validated
// but never applied.
func (s *taskServiceImpl) Replace(ctx context.Context, id int, task domain.Task) (updated *domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("replace", start, err) }(time.Now())

	updated, err = s.taskStore.Update(ctx, id, func(stored *domain.Task) error {
		if err := s.taskValidator.Validate(&task); err != nil {
			return err
		}
		stored.ApplyFrom(task)
		return nil
	})
	if err != nil {
		return nil, s.mutationError(ctx, "replace_task", id, err)
	}

	s.log(ctx).Info("task replaced successfully", "task_id", id)
	s.emit(ctx, events.TaskReplaced, id, updated)

	return updated, nil
}

// UpdateTitle changes only the title of an existing task
func (s *taskServiceImpl) UpdateTitle(ctx context.Context, id int, title string) (updated *domain.Task, err error) {
	defer func(start time.Time) { s.metrics.observe("update_title", start, err) }(time.Now())

	updated, err = s.taskStore.Update(ctx, id, func(stored *domain.Task) error {
		candidate := *stored
		candidate.Title = title
		if err := s.titleValidator.Validate(&candidate); err != nil {
			return err
		}
		stored.Title = title
		return nil
	})
	if err != nil {
		return nil, s.mutationError(ctx, "update_task_title", id, err)
	}

	s.log(ctx).Info("task title updated successfully", "task_id", id)
	s.emit(ctx, events.TaskTitleUpdated, id, updated)

	return updated, nil
}

// mutationError logs and translates an error returned by store.Update.
func (s *taskServiceImpl) mutationError(ctx context.Context, operation string, id int, err error) error {
	switch {
	case store.IsNotFoundError(err):
		s.log(ctx).Debug("task to update not found",
			"operation", operation,
			"task_id", id)
	case isValidation(err):
		s.log(ctx).Debug("task update failed validation",
			"operation", operation,
			"task_id", id,
			"error", err)
	default:
		s.log(ctx).Error("failed to update task",
			"error", err,
			"operation", operation,
			"task_id", id)
	}
	return NewTaskServiceError(operation, "failed to update task", err)
}

// Reset restores the store to its seed data
func (s *taskServiceImpl) Reset(ctx context.Context) (err error) {
	defer func(start time.Time) { s.metrics.observe("reset", start, err) }(time.Now())

	seed := s.seed(s.now())
	if err = s.taskStore.Reset(ctx, seed); err != nil {
		s.log(ctx).Error("failed to reset task store", "error", err)
		return NewTaskServiceError("reset_tasks", "failed to reset task store", err)
	}

	s.metrics.setStored(len(seed))
	s.log(ctx).Debug("task store reset", "count", len(seed))
	return nil
}
