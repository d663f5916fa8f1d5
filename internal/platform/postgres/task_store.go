package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

const taskEntity = "task"

const (
	insertTaskQuery = `
		INSERT INTO tasks (title, description, due_date, priority, status, user_id)
		VALUES ($1, $2, $3, $4, COALESCE($5, '` + domain.DefaultStatus + `'), $6)
		RETURNING id, status
	`

	listTasksByUserQuery = `
		SELECT id, title, description, due_date, priority, status, user_id
		FROM tasks
		WHERE user_id = $1
	`

	updateTaskQuery = `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, priority = $4, status = $5
		WHERE id = $6 AND user_id = $7
	`

	deleteTaskQuery = `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
// The store assigns the ID, and the status column default when task.Status is nil.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var status sql.NullString
	err := s.db.QueryRowContext(
		ctx,
		insertTaskQuery,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		task.UserID,
	).Scan(&task.ID, &status)
	if err != nil {
		logFailure(ctx, log, "failed to create task", err,
			slog.String("user_id", task.UserID))
		return store.NewStoreError(taskEntity, "create", "failed to insert task", MapError(err))
	}

	if status.Valid {
		task.Status = &status.String
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", task.UserID))
	return nil
}

// ListByUser implements store.TaskStore.ListByUser.
// Tasks come back in whatever order PostgreSQL returns them.
func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listTasksByUserQuery, userID)
	if err != nil {
		logFailure(ctx, log, "failed to query tasks", err,
			slog.String("user_id", userID))
		return nil, store.NewStoreError(taskEntity, "list", "failed to query tasks", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close task rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			logFailure(ctx, log, "failed to scan task row", err,
				slog.String("user_id", userID))
			return nil, store.NewStoreError(taskEntity, "list", "failed to scan task", MapError(err))
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		logFailure(ctx, log, "error iterating task rows", err,
			slog.String("user_id", userID))
		return nil, store.NewStoreError(taskEntity, "list", "failed to read tasks", MapError(err))
	}

	log.Debug("tasks listed",
		slog.String("user_id", userID),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		task.ID,
		task.UserID,
	)
	if err != nil {
		logFailure(ctx, log, "failed to update task", err,
			slog.Int64("task_id", task.ID),
			slog.String("user_id", task.UserID))
		return 0, store.NewStoreError(taskEntity, "update", "failed to update task", MapError(err))
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, store.NewStoreError(taskEntity, "update", "failed to read result", err)
	}

	log.Debug("task update executed",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", task.UserID),
		slog.Int64("rows_affected", n))
	return n, nil
}

// Delete implements store.TaskStore.Delete.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id, userID)
	if err != nil {
		logFailure(ctx, log, "failed to delete task", err,
			slog.Int64("task_id", id),
			slog.String("user_id", userID))
		return 0, store.NewStoreError(taskEntity, "delete", "failed to delete task", MapError(err))
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, store.NewStoreError(taskEntity, "delete", "failed to read result", err)
	}

	log.Debug("task delete executed",
		slog.Int64("task_id", id),
		slog.String("user_id", userID),
		slog.Int64("rows_affected", n))
	return n, nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanTask(rows *sql.Rows) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
		dueDate     sql.NullTime
		priority    sql.NullString
		status      sql.NullString
	)

	if err := rows.Scan(
		&task.ID,
		&task.Title,
		&description,
		&dueDate,
		&priority,
		&status,
		&task.UserID,
	); err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		t := dueDate.Time
		task.DueDate = &t
	}
	if priority.Valid {
		task.Priority = &priority.String
	}
	if status.Valid {
		task.Status = &status.String
	}
	return &task, nil
}

// logFailure logs a failed statement. Constraint violations come from
// caller input and are logged at warn; everything else at error.
func logFailure(ctx context.Context, log *slog.Logger, msg string, err error, attrs ...any) {
	level := slog.LevelError
	if IsConstraintViolation(err) {
		level = slog.LevelWarn
	}
	args := []any{
		slog.String("error", redact.Error(err)),
		slog.String("sqlstate", SQLState(err)),
	}
	log.Log(ctx, level, msg, append(args, attrs...)...)
}
