package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// MockTaskService implements service.TaskService for testing.
// Without a function field, each method returns a successful result with
// the matching default message.
type MockTaskService struct {
	CreateFn func(ctx context.Context, caller string, in domain.TaskInput) service.Result[*domain.Task]
	ListFn   func(ctx context.Context, caller string) service.Result[[]*domain.Task]
	UpdateFn func(ctx context.Context, caller string, taskID int64, in domain.TaskInput) service.Result[struct{}]
	DeleteFn func(ctx context.Context, caller string, taskID int64) service.Result[struct{}]

	mu sync.Mutex

	CreateCalls struct {
		Count   int
		Callers []string
		Inputs  []domain.TaskInput
	}
	ListCalls struct {
		Count   int
		Callers []string
	}
	UpdateCalls struct {
		Count   int
		Callers []string
		TaskIDs []int64
		Inputs  []domain.TaskInput
	}
	DeleteCalls struct {
		Count   int
		Callers []string
		TaskIDs []int64
	}
}

var _ service.TaskService = (*MockTaskService)(nil)

// Create implements service.TaskService
func (m *MockTaskService) Create(ctx context.Context, caller string, in domain.TaskInput) service.Result[*domain.Task] {
	m.mu.Lock()
	m.CreateCalls.Count++
	m.CreateCalls.Callers = append(m.CreateCalls.Callers, caller)
	m.CreateCalls.Inputs = append(m.CreateCalls.Inputs, in)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, caller, in)
	}
	task, _ := domain.NewTask(caller, in)
	return service.OK(task, service.MsgTaskCreated)
}

// List implements service.TaskService
func (m *MockTaskService) List(ctx context.Context, caller string) service.Result[[]*domain.Task] {
	m.mu.Lock()
	m.ListCalls.Count++
	m.ListCalls.Callers = append(m.ListCalls.Callers, caller)
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, caller)
	}
	return service.OK([]*domain.Task{}, service.MsgTasksFetched)
}

// Update implements service.TaskService
func (m *MockTaskService) Update(
	ctx context.Context,
	caller string,
	taskID int64,
	in domain.TaskInput,
) service.Result[struct{}] {
	m.mu.Lock()
	m.UpdateCalls.Count++
	m.UpdateCalls.Callers = append(m.UpdateCalls.Callers, caller)
	m.UpdateCalls.TaskIDs = append(m.UpdateCalls.TaskIDs, taskID)
	m.UpdateCalls.Inputs = append(m.UpdateCalls.Inputs, in)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, caller, taskID, in)
	}
	return service.OK(struct{}{}, service.MsgTaskUpdated)
}

// Delete implements service.TaskService
func (m *MockTaskService) Delete(ctx context.Context, caller string, taskID int64) service.Result[struct{}] {
	m.mu.Lock()
	m.DeleteCalls.Count++
	m.DeleteCalls.Callers = append(m.DeleteCalls.Callers, caller)
	m.DeleteCalls.TaskIDs = append(m.DeleteCalls.TaskIDs, taskID)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, caller, taskID)
	}
	return service.OK(struct{}{}, service.MsgTaskDeleted)
}

// TotalCalls reports how many service methods were invoked.
func (m *MockTaskService) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls.Count + m.ListCalls.Count + m.UpdateCalls.Count + m.DeleteCalls.Count
}
