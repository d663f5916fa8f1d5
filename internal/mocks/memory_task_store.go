package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// InMemoryTaskStore is a store.TaskStore backed by a map. It applies the
// same ownership scoping as the PostgreSQL store.
type InMemoryTaskStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Task
}

var _ store.TaskStore = (*InMemoryTaskStore)(nil)

// NewInMemoryTaskStore returns an empty store whose first ID is 1.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{rows: make(map[int64]domain.Task)}
}

// Create implements store.TaskStore
func (s *InMemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if task.Title == "" {
		return store.NewStoreError("task", "create", "title is empty", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task.ID = s.nextID
	if task.Status == nil {
		status := domain.DefaultStatus
		task.Status = &status
	}
	s.rows[task.ID] = *task
	return nil
}

// ListByUser implements store.TaskStore. Tasks are returned in ID order.
func (s *InMemoryTaskStore) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0)
	for _, row := range s.rows {
		if row.UserID == userID {
			task := row
			tasks = append(tasks, &task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Update implements store.TaskStore
func (s *InMemoryTaskStore) Update(ctx context.Context, task *domain.Task) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[task.ID]
	if !ok || row.UserID != task.UserID {
		return 0, nil
	}
	row.Apply(domain.TaskInput{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Status:      task.Status,
	})
	s.rows[task.ID] = row
	return 1, nil
}

// Delete implements store.TaskStore
func (s *InMemoryTaskStore) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

// WithTx returns the store itself; transactions are not simulated.
func (s *InMemoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return s
}

// Snapshot returns a copy of every stored task regardless of owner, in ID order.
func (s *InMemoryTaskStore) Snapshot() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
