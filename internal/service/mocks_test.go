package service

import (
	"context"
	"errors"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventEmitter mocks the EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.TaskEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// failingStore is a TaskStore whose every operation fails with err.
type failingStore struct {
	err error
}

func (s *failingStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	return nil, s.err
}

func (s *failingStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	return nil, s.err
}

func (s *failingStore) Insert(ctx context.Context, task *domain.Task) error {
	return s.err
}

func (s *failingStore) Remove(ctx context.Context, id int) error {
	return s.err
}

func (s *failingStore) Update(
	ctx context.Context,
	id int,
	fn func(task *domain.Task) error,
) (*domain.Task, error) {
	return nil, s.err
}

func (s *failingStore) Reset(ctx context.Context, tasks []domain.Task) error {
	return s.err
}

var errStoreDown = errors.New("store unavailable")
