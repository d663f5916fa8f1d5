package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	CreateFn     func(ctx context.Context, task *domain.Task) error
	ListByUserFn func(ctx context.Context, userID string) ([]*domain.Task, error)
	UpdateFn     func(ctx context.Context, task *domain.Task) (int64, error)
	DeleteFn     func(ctx context.Context, id int64, userID string) (int64, error)

	// Default response values
	NextID       int64
	Tasks        []*domain.Task
	RowsAffected int64
	Err          error

	mu sync.Mutex

	CreateCalls struct {
		Count int
		Tasks []*domain.Task
	}
	ListByUserCalls struct {
		Count   int
		UserIDs []string
	}
	UpdateCalls struct {
		Count int
		Tasks []*domain.Task
	}
	DeleteCalls struct {
		Count   int
		IDs     []int64
		UserIDs []string
	}
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore. Without CreateFn it assigns NextID and
// the default status, mirroring the database.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.CreateCalls.Count++
	m.CreateCalls.Tasks = append(m.CreateCalls.Tasks, task)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.Err != nil {
		return m.Err
	}

	task.ID = m.NextID
	if task.Status == nil {
		status := domain.DefaultStatus
		task.Status = &status
	}
	return nil
}

// ListByUser implements store.TaskStore
func (m *MockTaskStore) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	m.mu.Lock()
	m.ListByUserCalls.Count++
	m.ListByUserCalls.UserIDs = append(m.ListByUserCalls.UserIDs, userID)
	m.mu.Unlock()

	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.Tasks, m.Err
}

// Update implements store.TaskStore
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) (int64, error) {
	m.mu.Lock()
	m.UpdateCalls.Count++
	m.UpdateCalls.Tasks = append(m.UpdateCalls.Tasks, task)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.RowsAffected, m.Err
}

// Delete implements store.TaskStore
func (m *MockTaskStore) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	m.mu.Lock()
	m.DeleteCalls.Count++
	m.DeleteCalls.IDs = append(m.DeleteCalls.IDs, id)
	m.DeleteCalls.UserIDs = append(m.DeleteCalls.UserIDs, userID)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}
	return m.RowsAffected, m.Err
}

// WithTx returns the mock itself; transactions are not simulated.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

// TotalCalls reports how many store methods were invoked.
func (m *MockTaskStore) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls.Count + m.ListByUserCalls.Count + m.UpdateCalls.Count + m.DeleteCalls.Count
}
