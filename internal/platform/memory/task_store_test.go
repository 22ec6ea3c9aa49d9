package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2030, time.June, 15, 9, 30, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(domain.SeedTasks(seedNow), nil)
}

func taskIDs(tasks []domain.Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestTaskStore_GetAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newSeededStore(t)
	tasks, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, taskIDs(tasks))

	empty := NewTaskStore(nil, nil)
	tasks, err = empty.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newSeededStore(t)

	tasks, err := s.GetAll(ctx)
	require.NoError(t, err)
	tasks[2].Title = "changed"
	tasks[2].Tags[0] = "changed"

	task, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", task.Title)
	assert.Equal(t, []string{"groceries", "home"}, task.Tags)

	task.Tags = append(task.Tags, "extra")
	again, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, again.Tags, 2)
}

func TestTaskStore_GetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newSeededStore(t)

	task, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, task.ID)
	assert.Equal(t, 1, task.Priority)

	task, err = s.GetByID(ctx, 42)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, store.ErrTaskNotFound))
}

func TestTaskStore_Insert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newSeededStore(t)

	newTask := &domain.Task{
		ID:       11,
		Title:    "Water plants",
		Deadline: seedNow.AddDate(0, 0, 1),
		Priority: 2,
		Tags:     []string{"home"},
	}
	require.NoError(t, s.Insert(ctx, newTask))

	newTask.Tags[0] = "mutated after insert"

	tasks, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 11)
	last := tasks[len(tasks)-1]
	assert.Equal(t, 11, last.ID, "inserted task is appended")
	assert.Equal(t, []string{"home"}, last.Tags)

	err = s.Insert(ctx, &domain.Task{ID: 3, Title: "dup"})
	assert.True(t, errors.Is(err, store.ErrTaskExists))
	assert.True(t, store.IsDuplicateError(err))

	err = s.Insert(ctx, nil)
	assert.True(t, errors.Is(err, store.ErrInvalidEntity))

	tasks, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 11)
}

func TestTaskStore_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newSeededStore(t)

	require.NoError(t, s.Remove(ctx, 5))

	tasks, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9, 10}, taskIDs(tasks), "order is preserved")

	err = s.Remove(ctx, 5)
	assert.True(t, errors.Is(err, store.ErrTaskNotFound))
}

func TestTaskStore_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		s := newSeededStore(t)

		updated, err := s.Update(ctx, 4, func(task *domain.Task) error {
			task.Title = "Call the plumber"
			task.Tags = append(task.Tags, "urgent")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "Call the plumber", updated.Title)

		stored, err := s.GetByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "Call the plumber", stored.Title)
		assert.Contains(t, stored.Tags, "urgent")
	})

	t.Run("leaves task unchanged when fn fails", func(t *testing.T) {
		s := newSeededStore(t)
		before, err := s.GetByID(ctx, 4)
		require.NoError(t, err)

		rejected := errors.New("rejected")
		updated, err := s.Update(ctx, 4, func(task *domain.Task) error {
			task.Priority = 9
			task.Tags[0] = "scribbled"
			return rejected
		})
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, rejected)

		after, err := s.GetByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("rejects identifier changes", func(t *testing.T) {
		s := newSeededStore(t)

		_, err := s.Update(ctx, 4, func(task *domain.Task) error {
			task.ID = 99
			return nil
		})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)

		_, err = s.GetByID(ctx, 99)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("missing task", func(t *testing.T) {
		s := newSeededStore(t)

		called := false
		_, err := s.Update(ctx, 42, func(task *domain.Task) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.False(t, called)
	})
}

func TestTaskStore_Reset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newSeededStore(t)

	require.NoError(t, s.Remove(ctx, 1))
	require.NoError(t, s.Reset(ctx, domain.SeedTasks(seedNow)))

	tasks, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 10)

	require.NoError(t, s.Reset(ctx, nil))
	tasks, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTaskStore(nil, nil)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = s.Insert(ctx, &domain.Task{ID: id, Title: "task", Priority: 1})
			_, _ = s.GetAll(ctx)
			_, _ = s.Update(ctx, id, func(task *domain.Task) error {
				task.IsCompleted = true
				return nil
			})
		}(i)
	}
	wg.Wait()

	tasks, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 50)
	for _, task := range tasks {
		assert.True(t, task.IsCompleted)
	}
}
