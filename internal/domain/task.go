package domain

import (
	"errors"
	"time"
)

// DefaultStatus is the status the store assigns when a task is created without one.
const DefaultStatus = "pending"

// Column bounds enforced by the tasks table.
const (
	MaxTitleLength    = 255
	MaxPriorityLength = 50
	MaxStatusLength   = 50
	MaxUserIDLength   = 255
)

// ErrTaskUserIDEmpty is returned when a task would be created without an owner.
var ErrTaskUserIDEmpty = errors.New("task user ID cannot be empty")

// Task is a single to-do item owned by exactly one user identity.
//
// Priority and Status are free-form labels ("High", "in progress", ...);
// no transition rules apply to Status.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	UserID      string     `json:"userId"`
}

// TaskInput is the caller-supplied part of a task, shared by create and update.
// Values are taken as-is; the store enforces its own column constraints.
type TaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
}

// NewTask builds an unsaved task owned by userID. The ID is assigned by the
// store on insert.
func NewTask(userID string, in TaskInput) (*Task, error) {
	if userID == "" {
		return nil, ErrTaskUserIDEmpty
	}

	task := &Task{UserID: userID}
	task.Apply(in)
	return task, nil
}

// Apply overwrites every mutable field with the values from in.
// A nil pointer clears the corresponding field. ID and UserID are untouched.
// DueDate is stored in UTC since the column has no time zone.
func (t *Task) Apply(in TaskInput) {
	t.Title = in.Title
	t.Description = in.Description
	t.DueDate = nil
	if in.DueDate != nil {
		due := in.DueDate.UTC()
		t.DueDate = &due
	}
	t.Priority = in.Priority
	t.Status = in.Status
}
