package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskRequest defines the payload for the create and replace endpoints.
// Deadline is kept as text so that date-only and zone-less values can be
// accepted alongside RFC 3339.
type TaskRequest struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deadline    string   `json:"deadline"`
	IsCompleted bool     `json:"isCompleted"`
	Priority    int      `json:"priority"`
	Tags        []string `json:"tags"`
}

// ToDomain converts the request into a domain.Task. An absent deadline maps
// to the zero time, which the deadline rule rejects.
func (r TaskRequest) ToDomain() (domain.Task, error) {
	task := domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		Priority:    r.Priority,
		Tags:        r.Tags,
	}

	if strings.TrimSpace(r.Deadline) != "" {
		deadline, err := parseDateTime(r.Deadline)
		if err != nil {
			return domain.Task{}, domain.NewValidationError("deadline",
				"must be an RFC 3339 timestamp or a YYYY-MM-DD date", domain.ErrInvalidFormat)
		}
		task.Deadline = deadline
	}

	return task, nil
}

// UpdateTitleRequest defines the payload for the title patch endpoint. The
// body is either a bare JSON string or an object with a title field.
type UpdateTitleRequest struct {
	Title *string `json:"title" validate:"required"`
}

// UnmarshalJSON accepts both "New title" and {"title":"New title"}.
func (r *UpdateTitleRequest) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		r.Title = &title
		return nil
	}

	type object UpdateTitleRequest
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = UpdateTitleRequest(obj)
	return nil
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	IsCompleted bool      `json:"isCompleted"`
	Priority    int       `json:"priority"`
	Tags        []string  `json:"tags"`
}

// taskToResponse converts a domain.Task to a TaskResponse. Tags are always
// encoded as an array.
func taskToResponse(task domain.Task) TaskResponse {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Deadline:    task.Deadline,
		IsCompleted: task.IsCompleted,
		Priority:    task.Priority,
		Tags:        tags,
	}
}

// tasksToResponse converts a list of tasks. The result is never nil so an
// empty list encodes as [].
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
