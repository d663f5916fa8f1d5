//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTask(t *testing.T, userID, title string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(userID, domain.TaskInput{Title: title})
	require.NoError(t, err)
	return task
}

func TestPostgresTaskStore_Create(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		ctx := context.Background()

		t.Run("nil status takes column default", func(t *testing.T) {
			task := newTask(t, "user-create", "Buy milk")
			require.NoError(t, s.Create(ctx, task))

			assert.NotZero(t, task.ID)
			require.NotNil(t, task.Status)
			assert.Equal(t, domain.DefaultStatus, *task.Status)
		})

		t.Run("explicit fields stored", func(t *testing.T) {
			due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			task, err := domain.NewTask("user-create", domain.TaskInput{
				Title:       "Write report",
				Description: strPtr("quarterly"),
				DueDate:     &due,
				Priority:    strPtr("High"),
				Status:      strPtr("in progress"),
			})
			require.NoError(t, err)
			require.NoError(t, s.Create(ctx, task))

			tasks, err := s.ListByUser(ctx, "user-create")
			require.NoError(t, err)

			var found *domain.Task
			for _, got := range tasks {
				if got.ID == task.ID {
					found = got
				}
			}
			require.NotNil(t, found)
			assert.Equal(t, "Write report", found.Title)
			assert.Equal(t, "quarterly", *found.Description)
			assert.Equal(t, "High", *found.Priority)
			assert.Equal(t, "in progress", *found.Status)
			require.NotNil(t, found.DueDate)
			assert.True(t, due.Equal(found.DueDate.UTC()), "due date round-trips")
		})

		t.Run("offset due date keeps its instant", func(t *testing.T) {
			due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))
			task, err := domain.NewTask("user-offset", domain.TaskInput{Title: "Call", DueDate: &due})
			require.NoError(t, err)
			require.NoError(t, s.Create(ctx, task))

			tasks, err := s.ListByUser(ctx, "user-offset")
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			require.NotNil(t, tasks[0].DueDate)
			assert.True(t, tasks[0].DueDate.Equal(due), "got %v, want %v", tasks[0].DueDate, due.UTC())

			later := time.Date(2026, 3, 2, 21, 30, 0, 0, time.FixedZone("UTC-7", -7*60*60))
			task.Apply(domain.TaskInput{Title: "Call", DueDate: &later})
			n, err := s.Update(ctx, task)
			require.NoError(t, err)
			require.Equal(t, int64(1), n)

			tasks, err = s.ListByUser(ctx, "user-offset")
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			require.NotNil(t, tasks[0].DueDate)
			assert.True(t, tasks[0].DueDate.Equal(later), "got %v, want %v", tasks[0].DueDate, later.UTC())
		})

		t.Run("sequential ids are distinct", func(t *testing.T) {
			a := newTask(t, "user-create", "a")
			b := newTask(t, "user-create", "b")
			require.NoError(t, s.Create(ctx, a))
			require.NoError(t, s.Create(ctx, b))
			assert.NotEqual(t, a.ID, b.ID)
		})
	})
}

func TestPostgresTaskStore_CreateConstraintViolations(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	tests := []struct {
		name string
		task *domain.Task
	}{
		{
			name: "empty title",
			task: &domain.Task{Title: "", UserID: "user-bad"},
		},
		{
			name: "title too long",
			task: &domain.Task{Title: strings.Repeat("x", domain.MaxTitleLength+1), UserID: "user-bad"},
		},
		{
			name: "priority too long",
			task: &domain.Task{
				Title:    "ok",
				Priority: strPtr(strings.Repeat("p", domain.MaxPriorityLength+1)),
				UserID:   "user-bad",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
				s := postgres.NewPostgresTaskStore(tx, nil)
				err := s.Create(context.Background(), tt.task)
				require.Error(t, err)
				assert.ErrorIs(t, err, store.ErrInvalidEntity)
			})
		})
	}
}

func TestPostgresTaskStore_ListByUser(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		ctx := context.Background()

		require.NoError(t, s.Create(ctx, newTask(t, "user-a", "a1")))
		require.NoError(t, s.Create(ctx, newTask(t, "user-a", "a2")))
		require.NoError(t, s.Create(ctx, newTask(t, "user-b", "b1")))

		tasks, err := s.ListByUser(ctx, "user-a")
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
		for _, task := range tasks {
			assert.Equal(t, "user-a", task.UserID)
			assert.Nil(t, task.Description)
			assert.Nil(t, task.DueDate)
		}

		empty, err := s.ListByUser(ctx, "user-nobody")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})
}

func TestPostgresTaskStore_UpdateScopedByOwner(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		ctx := context.Background()

		task := newTask(t, "owner", "original")
		require.NoError(t, s.Create(ctx, task))

		intruder := *task
		intruder.UserID = "intruder"
		intruder.Title = "hijacked"
		n, err := s.Update(ctx, &intruder)
		require.NoError(t, err)
		assert.Zero(t, n)

		task.Apply(domain.TaskInput{Title: "renamed", Status: strPtr("done")})
		n, err = s.Update(ctx, task)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		tasks, err := s.ListByUser(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "renamed", tasks[0].Title)
		assert.Equal(t, "done", *tasks[0].Status)

		missing := *task
		missing.ID = task.ID + 100000
		n, err = s.Update(ctx, &missing)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestPostgresTaskStore_DeleteScopedByOwner(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		ctx := context.Background()

		task := newTask(t, "owner", "keep me")
		require.NoError(t, s.Create(ctx, task))

		n, err := s.Delete(ctx, task.ID, "intruder")
		require.NoError(t, err)
		assert.Zero(t, n)

		tasks, err := s.ListByUser(ctx, "owner")
		require.NoError(t, err)
		assert.Len(t, tasks, 1)

		n, err = s.Delete(ctx, task.ID, "owner")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.Delete(ctx, task.ID, "owner")
		require.NoError(t, err)
		assert.Zero(t, n, "second delete matches nothing")
	})
}

func TestPostgresTaskStore_WithTxIsolation(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	base := postgres.NewPostgresTaskStore(db, nil)
	ctx := context.Background()
	userID := "user-tx-" + time.Now().Format("150405.000000000")

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, base.WithTx(tx).Create(ctx, newTask(t, userID, "uncommitted")))
	require.NoError(t, tx.Rollback())

	tasks, err := base.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
