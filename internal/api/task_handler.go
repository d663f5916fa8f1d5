package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks  service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks service.TaskService, logger *slog.Logger) *TaskHandler {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task service cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// RegisterRoutes mounts the task endpoints on r.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	res := h.tasks.Create(r.Context(), shared.GetUserID(r.Context()), in)
	writeResult(w, r, res, http.StatusCreated)
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	res := h.tasks.List(r.Context(), shared.GetUserID(r.Context()))
	writeResult(w, r, res, http.StatusOK)
}

// UpdateTask handles PUT /tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	res := h.tasks.Update(r.Context(), shared.GetUserID(r.Context()), taskID, in)
	writeResult(w, r, res, http.StatusOK)
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	res := h.tasks.Delete(r.Context(), shared.GetUserID(r.Context()), taskID)
	writeResult(w, r, res, http.StatusOK)
}

func (h *TaskHandler) pathTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	taskID, err := getPathTaskID(r, "id")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid task ID in path",
			slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidTaskID)
		return 0, false
	}
	return taskID, true
}

func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (domain.TaskInput, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return domain.TaskInput{}, false
	}

	in, err := req.ToInput()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return domain.TaskInput{}, false
	}
	return in, true
}

// writeResult writes a service result envelope with the status its kind implies.
func writeResult[T any](w http.ResponseWriter, r *http.Request, res service.Result[T], okStatus int) {
	shared.RespondWithJSON(w, r, StatusForKind(res.Kind, okStatus), res)
}
