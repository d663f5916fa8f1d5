package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(svc service.TaskService, userID string) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userID != "" {
				req = req.WithContext(shared.WithUserID(req.Context(), userID))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", NewTaskHandler(svc, nil).RegisterRoutes)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func TestNewTaskHandler_NilServicePanics(t *testing.T) {
	assert.Panics(t, func() { NewTaskHandler(nil, nil) })
}

func TestTaskHandler_CreateTask(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		body        string
		wantStatus  int
		wantMessage string
		wantCalls   int
		checkInput  func(t *testing.T, caller string, in domain.TaskInput)
	}{
		{
			name:        "created",
			userID:      "user-1",
			body:        `{"title":"Buy milk","description":"2%","dueDate":"2026-03-01","priority":"Low","status":null}`,
			wantStatus:  http.StatusCreated,
			wantMessage: service.MsgTaskCreated,
			wantCalls:   1,
			checkInput: func(t *testing.T, caller string, in domain.TaskInput) {
				assert.Equal(t, "user-1", caller)
				assert.Equal(t, "Buy milk", in.Title)
				assert.Equal(t, "2%", *in.Description)
				assert.Equal(t, "Low", *in.Priority)
				assert.Nil(t, in.Status)
				require.NotNil(t, in.DueDate)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *in.DueDate)
			},
		},
		{
			name:        "RFC 3339 due date",
			userID:      "user-1",
			body:        `{"title":"Call","dueDate":"2026-03-01T09:30:00Z"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: service.MsgTaskCreated,
			wantCalls:   1,
			checkInput: func(t *testing.T, caller string, in domain.TaskInput) {
				require.NotNil(t, in.DueDate)
				assert.Equal(t, 9, in.DueDate.Hour())
			},
		},
		{
			name:        "offset due date becomes UTC",
			userID:      "user-1",
			body:        `{"title":"Call","dueDate":"2026-03-01T09:00:00+05:00"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: service.MsgTaskCreated,
			wantCalls:   1,
			checkInput: func(t *testing.T, caller string, in domain.TaskInput) {
				require.NotNil(t, in.DueDate)
				assert.Equal(t, time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC), *in.DueDate)
			},
		},
		{
			name:        "no identity reaches the service",
			body:        `{"title":"Buy milk"}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: service.MsgNotAuthenticated,
			wantCalls:   1,
			checkInput: func(t *testing.T, caller string, in domain.TaskInput) {
				assert.Empty(t, caller)
			},
		},
		{
			name:        "malformed JSON",
			userID:      "user-1",
			body:        `{"title":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidRequest,
		},
		{
			name:        "bad due date",
			userID:      "user-1",
			body:        `{"title":"x","dueDate":"next tuesday"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockTaskService{}
			if tt.userID == "" {
				svc.CreateFn = func(ctx context.Context, caller string, in domain.TaskInput) service.Result[*domain.Task] {
					return service.Unauthenticated[*domain.Task]()
				}
			}

			rec, env := doRequest(t, newTestRouter(svc, tt.userID), http.MethodPost, "/api/tasks", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, tt.wantStatus < 300, env.Success)
			require.Equal(t, tt.wantCalls, svc.CreateCalls.Count)
			if tt.checkInput != nil {
				tt.checkInput(t, svc.CreateCalls.Callers[0], svc.CreateCalls.Inputs[0])
			}
		})
	}
}

func TestTaskHandler_ListTasks(t *testing.T) {
	tests := []struct {
		name       string
		result     service.Result[[]*domain.Task]
		wantStatus int
		wantData   string
	}{
		{
			name: "tasks",
			result: service.OK([]*domain.Task{{ID: 1, Title: "a", UserID: "user-1"}},
				service.MsgTasksFetched),
			wantStatus: http.StatusOK,
			wantData: `[{"id":1,"title":"a","description":null,"dueDate":null,` +
				`"priority":null,"status":null,"userId":"user-1"}]`,
		},
		{
			name:       "empty",
			result:     service.OK([]*domain.Task{}, service.MsgTasksFetched),
			wantStatus: http.StatusOK,
			wantData:   `[]`,
		},
		{
			name:       "unauthenticated",
			result:     service.Unauthenticated[[]*domain.Task](),
			wantStatus: http.StatusUnauthorized,
			wantData:   `null`,
		},
		{
			name:       "failure",
			result:     service.Failed[[]*domain.Task](service.MsgFetchFailed),
			wantStatus: http.StatusInternalServerError,
			wantData:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockTaskService{
				ListFn: func(ctx context.Context, caller string) service.Result[[]*domain.Task] {
					return tt.result
				},
			}

			rec, env := doRequest(t, newTestRouter(svc, "user-1"), http.MethodGet, "/api/tasks", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.result.Message, env.Message)
			assert.JSONEq(t, tt.wantData, string(env.Data))
			assert.Equal(t, []string{"user-1"}, svc.ListCalls.Callers)
		})
	}
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		wantMessage string
		wantCalls   int
	}{
		{
			name:        "updated",
			path:        "/api/tasks/5",
			body:        `{"title":"renamed","status":"done"}`,
			wantStatus:  http.StatusOK,
			wantMessage: service.MsgTaskUpdated,
			wantCalls:   1,
		},
		{
			name:        "non-integer id",
			path:        "/api/tasks/abc",
			body:        `{"title":"renamed"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidTaskID,
		},
		{
			name:        "zero id",
			path:        "/api/tasks/0",
			body:        `{"title":"renamed"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidTaskID,
		},
		{
			name:        "empty body",
			path:        "/api/tasks/5",
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockTaskService{}

			rec, env := doRequest(t, newTestRouter(svc, "user-2"), http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Nil(t, env.Data, "update carries no data")
			require.Equal(t, tt.wantCalls, svc.UpdateCalls.Count)
			if tt.wantCalls > 0 {
				assert.Equal(t, "user-2", svc.UpdateCalls.Callers[0])
				assert.Equal(t, int64(5), svc.UpdateCalls.TaskIDs[0])
				assert.Equal(t, "done", *svc.UpdateCalls.Inputs[0].Status)
			}
		})
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &mocks.MockTaskService{}
		rec, env := doRequest(t, newTestRouter(svc, "user-1"), http.MethodDelete, "/api/tasks/42", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, service.MsgTaskDeleted, env.Message)
		assert.Equal(t, []int64{42}, svc.DeleteCalls.TaskIDs)
	})

	t.Run("failure maps to 500", func(t *testing.T) {
		svc := &mocks.MockTaskService{
			DeleteFn: func(ctx context.Context, caller string, taskID int64) service.Result[struct{}] {
				return service.Failed[struct{}](service.MsgDeleteFailed)
			},
		}
		rec, env := doRequest(t, newTestRouter(svc, "user-1"), http.MethodDelete, "/api/tasks/42", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, service.MsgDeleteFailed, env.Message)
	})

	t.Run("bad id never reaches service", func(t *testing.T) {
		svc := &mocks.MockTaskService{}
		rec, _ := doRequest(t, newTestRouter(svc, "user-1"), http.MethodDelete, "/api/tasks/-3", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.TotalCalls())
	})
}
