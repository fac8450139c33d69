// Package models defines the data records exchanged with the taskquest
// backend and held in client state.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/mvolkova/taskquest/internal/common"
)

// Priority classifies how urgent a todo is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is a single task record. The backend owns the canonical copy; the
// client holds a projection for the current user only.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      string     `json:"userId,omitempty"`
}

// CreateTodoRequest is the payload for creating a todo. Title is the only
// required field.
type CreateTodoRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
}

// Validate checks the request before any network call is attempted.
func (r CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", common.ErrorValidation, r.Priority)
	}
	return nil
}

// UpdateTodoRequest is a partial update; nil fields are left untouched
// server-side.
type UpdateTodoRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
}

// TodoResponse is the envelope returned by single-todo endpoints.
type TodoResponse struct {
	Message string `json:"message"`
	Todo    Todo   `json:"todo"`
}

// TodosResponse is the envelope returned by the list endpoint.
type TodosResponse struct {
	Todos []Todo `json:"todos"`
}

// MessageResponse is the envelope for endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}
