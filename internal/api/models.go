package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// dateOnlyLayout is accepted for dueDate alongside RFC 3339 timestamps.
const dateOnlyLayout = "2006-01-02"

// ErrInvalidDueDate is returned when dueDate is neither RFC 3339 nor YYYY-MM-DD.
var ErrInvalidDueDate = errors.New("invalid dueDate")

// TaskRequest is the body of create and update requests.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// ToInput converts the request into a domain.TaskInput. Values other than
// dueDate are passed through unchanged.
func (req TaskRequest) ToInput() (domain.TaskInput, error) {
	in := domain.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return domain.TaskInput{}, err
		}
		in.DueDate = &due
	}
	return in, nil
}

// parseDueDate returns the instant in UTC; the due_date column keeps no offset.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, value)
}
