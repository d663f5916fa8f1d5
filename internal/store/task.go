package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every method issues exactly one statement. Update and Delete are scoped by
// both task ID and owner: a row owned by someone else simply does not match,
// and the method reports zero rows affected rather than an error.
type TaskStore interface {
	// Create inserts a new task and populates its store-assigned ID.
	// A nil Status is replaced by the column default (domain.DefaultStatus),
	// and the task is updated to reflect it.
	// Returns ErrInvalidEntity if a column constraint rejects the row.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser returns every task owned by userID, in store-native order.
	// Returns an empty, non-nil slice when the user has no tasks.
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)

	// Update overwrites the mutable fields of the task matching both
	// task.ID and task.UserID. Returns the number of rows affected (0 or 1).
	Update(ctx context.Context, task *domain.Task) (int64, error)

	// Delete removes the task matching both id and userID.
	// Returns the number of rows affected (0 or 1).
	Delete(ctx context.Context, id int64, userID string) (int64, error)

	// WithTx returns a TaskStore that issues its statements on tx.
	WithTx(tx *sql.Tx) TaskStore
}
