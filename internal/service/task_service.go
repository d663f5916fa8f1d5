package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Messages carried by the result envelope.
const (
	MsgNotAuthenticated = "User is not authenticated."

	MsgTaskCreated  = "Task created successfully."
	MsgTasksFetched = "Tasks fetched successfully."
	MsgTaskUpdated  = "Task updated successfully."
	MsgTaskDeleted  = "Task deleted successfully."

	MsgCreateFailed = "Failed to create task."
	MsgFetchFailed  = "Failed to fetch tasks."
	MsgUpdateFailed = "Failed to update task."
	MsgDeleteFailed = "Failed to delete task."
)

// ErrNilTaskStore is returned by NewTaskService when no store is supplied.
var ErrNilTaskStore = errors.New("task store cannot be nil")

// TaskService provides the task operations available to a caller.
//
// caller is the authenticated identity, or "" when the request carries none.
// Every operation rejects an empty caller without touching the store.
type TaskService interface {
	// Create stores a new task owned by caller and returns it with its ID.
	Create(ctx context.Context, caller string, in domain.TaskInput) Result[*domain.Task]

	// List returns the caller's tasks, an empty slice when there are none.
	List(ctx context.Context, caller string) Result[[]*domain.Task]

	// Update replaces the fields of task taskID if caller owns it. A task
	// that does not exist or belongs to someone else is left untouched and
	// the call still succeeds.
	Update(ctx context.Context, caller string, taskID int64, in domain.TaskInput) Result[struct{}]

	// Delete removes task taskID if caller owns it, with the same no-op
	// policy as Update.
	Delete(ctx context.Context, caller string, taskID int64) Result[struct{}]
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the task store is nil.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, ErrNilTaskStore
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(ctx context.Context, caller string, in domain.TaskInput) Result[*domain.Task] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if caller == "" {
		log.Debug("rejected create without identity")
		return Unauthenticated[*domain.Task]()
	}

	task, err := domain.NewTask(caller, in)
	if err != nil {
		s.logFailure(log, "create", caller, err)
		return Failed[*domain.Task](MsgCreateFailed)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logFailure(log, "create", caller, err)
		return Failed[*domain.Task](MsgCreateFailed)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", caller))
	return OK(task, MsgTaskCreated)
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context, caller string) Result[[]*domain.Task] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if caller == "" {
		log.Debug("rejected list without identity")
		return Unauthenticated[[]*domain.Task]()
	}

	tasks, err := s.tasks.ListByUser(ctx, caller)
	if err != nil {
		s.logFailure(log, "list", caller, err)
		return Failed[[]*domain.Task](MsgFetchFailed)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("tasks fetched",
		slog.String("user_id", caller),
		slog.Int("count", len(tasks)))
	return OK(tasks, MsgTasksFetched)
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(
	ctx context.Context,
	caller string,
	taskID int64,
	in domain.TaskInput,
) Result[struct{}] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if caller == "" {
		log.Debug("rejected update without identity", slog.Int64("task_id", taskID))
		return Unauthenticated[struct{}]()
	}

	task := &domain.Task{ID: taskID, UserID: caller}
	task.Apply(in)

	n, err := s.tasks.Update(ctx, task)
	if err != nil {
		s.logFailure(log, "update", caller, err, slog.Int64("task_id", taskID))
		return Failed[struct{}](MsgUpdateFailed)
	}

	if n == 0 {
		log.Info("update matched no task owned by caller",
			slog.Int64("task_id", taskID),
			slog.String("user_id", caller))
	}
	return OK(struct{}{}, MsgTaskUpdated)
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, caller string, taskID int64) Result[struct{}] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if caller == "" {
		log.Debug("rejected delete without identity", slog.Int64("task_id", taskID))
		return Unauthenticated[struct{}]()
	}

	n, err := s.tasks.Delete(ctx, taskID, caller)
	if err != nil {
		s.logFailure(log, "delete", caller, err, slog.Int64("task_id", taskID))
		return Failed[struct{}](MsgDeleteFailed)
	}

	if n == 0 {
		log.Info("delete matched no task owned by caller",
			slog.Int64("task_id", taskID),
			slog.String("user_id", caller))
	}
	return OK(struct{}{}, MsgTaskDeleted)
}

// logFailure records a store failure. The raw error never leaves this
// package; only its redacted text is logged.
func (s *taskServiceImpl) logFailure(log *slog.Logger, op, caller string, err error, attrs ...any) {
	args := []any{
		slog.String("operation", op),
		slog.String("user_id", caller),
		slog.String("error", redact.Error(err)),
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error_class", errorClass(err)),
	}
	log.Error("task operation failed", append(args, attrs...)...)
}

// errorClass buckets store errors for log filtering.
func errorClass(err error) string {
	switch {
	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid_entity"
	case store.IsDuplicateError(err):
		return "duplicate"
	case store.IsNotFoundError(err):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
