package api

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/service"
)

// Client-facing messages for requests rejected before reaching the service.
const (
	MsgInvalidRequest = "Invalid request format."
	MsgInvalidTaskID  = "Invalid task ID."
)

// StatusForKind maps a service result kind to an HTTP status code.
// okStatus is used for successful results.
func StatusForKind(kind service.Kind, okStatus int) int {
	switch kind {
	case service.KindOK:
		return okStatus
	case service.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
