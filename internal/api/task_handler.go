package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// RegisterRoutes mounts the task endpoints under /tasks on r.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/sort", h.SortTasks)
		r.Get("/filter", h.FilterTasks)
		r.Get("/isCompleted/{isCompleted}", h.GetTasksByCompletion)
		r.Get("/priority/{priority}", h.GetTasksByPriority)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.ReplaceTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Patch("/{id}/Title", h.UpdateTaskTitle)
		r.Patch("/{id}/title", h.UpdateTaskTitle)
	})
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests
// An unknown ID is answered with 204 No Content.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		log.Debug("invalid task ID", slog.String("id", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if errors.Is(err, service.ErrTaskNotFound) {
		log.Debug("task not found", slog.Int("task_id", id))
		shared.RespondNoContent(w, r)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(*task))
}

// GetTasksByCompletion handles GET /tasks/isCompleted/{isCompleted} requests
func (h *TaskHandler) GetTasksByCompletion(w http.ResponseWriter, r *http.Request) {
	completed, err := getPathBool(r, "isCompleted")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ByCompletion(r.Context(), completed)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to filter tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTasksByPriority handles GET /tasks/priority/{priority} requests
func (h *TaskHandler) GetTasksByPriority(w http.ResponseWriter, r *http.Request) {
	priority, err := getPathInt(r, "priority")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ByPriority(r.Context(), priority)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to filter tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// SortTasks handles GET /tasks/sort?sortBy=&sortOrder= requests
func (h *TaskHandler) SortTasks(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	tasks, err := h.taskService.Sort(r.Context(), values.Get("sortBy"), values.Get("sortOrder"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to sort tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// FilterTasks handles GET /tasks/filter requests
func (h *TaskHandler) FilterTasks(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseFilterCriteria(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.Filter(r.Context(), criteria)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to filter tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /tasks requests
// On success it returns 201 Created with the full task list.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := req.ToDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.Create(r.Context(), task)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created", slog.Int("task_id", task.ID), slog.Int("count", len(tasks)))

	if len(tasks) == 0 {
		shared.RespondNoContent(w, r)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, tasksToResponse(tasks))
}

// DeleteTask handles DELETE /tasks/{id} requests
// It returns the remaining tasks, or 204 No Content when the ID is unknown
// or no task remains.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.Delete(r.Context(), id)
	if errors.Is(err, service.ErrTaskNotFound) {
		log.Debug("task to delete not found", slog.Int("task_id", id))
		shared.RespondNoContent(w, r)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	if len(tasks) == 0 {
		shared.RespondNoContent(w, r)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// ReplaceTask handles PUT /tasks/{id} requests
// An unknown ID is answered with 204 No Content, before the body is validated.
func (h *TaskHandler) ReplaceTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := req.ToDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	updated, err := h.taskService.Replace(r.Context(), id, task)
	if errors.Is(err, service.ErrTaskNotFound) {
		log.Debug("task to replace not found", slog.Int("task_id", id))
		shared.RespondNoContent(w, r)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(*updated))
}

// UpdateTaskTitle handles PATCH /tasks/{id}/Title requests
// An unknown ID is answered with 404 Not Found.
func (h *TaskHandler) UpdateTaskTitle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTitleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := h.taskService.UpdateTitle(r.Context(), id, *req.Title)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task title")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(*updated))
}
