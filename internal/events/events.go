package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Task lifecycle event types.
const (
	TaskCreated      = "task.created"
	TaskReplaced     = "task.replaced"
	TaskTitleUpdated = "task.title_updated"
	TaskDeleted      = "task.deleted"
)

// TaskEvent records a change made to a stored task.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the task lifecycle event types
	Type string `json:"type"`

	// TaskID identifies the task the change applied to
	TaskID int `json:"task_id"`

	// Payload contains a JSON snapshot of the task after the change,
	// or null for deletions
	Payload json.RawMessage `json:"payload"`

	// OccurredAt is the timestamp when the event was created
	OccurredAt time.Time `json:"occurred_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *TaskEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewTaskEvent creates a new TaskEvent with the specified type, task and payload.
func NewTaskEvent(eventType string, taskID int, payload interface{}) (*TaskEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TaskID:     taskID,
		Payload:    payloadBytes,
		OccurredAt: time.Now(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}
