// Package task defines the Task record, its closed status variant, and the
// timestamp wire codec shared by the store and the registry.
package task

import (
	"fmt"
)

// Task is a single persisted record representing one unit of tracked work.
type Task struct {
	// ID is a positive integer, unique within the collection, assigned by
	// the registry at creation time. Never reused after deletion.
	ID int `json:"id"`

	// Description is free-form text supplied by the caller.
	Description string `json:"description"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// CreatedAt is captured at creation time and immutable thereafter.
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is nil until the first mutation, then set on every
	// subsequent mutation. Serializes as null while absent.
	UpdatedAt *Timestamp `json:"updated_at"`
}

// New creates a Task with the given id and description, status todo, and a
// creation timestamp of now.
func New(id int, description string) Task {
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   Now(),
	}
}

// SetDescription replaces the description and records the mutation time.
func (t *Task) SetDescription(description string) {
	t.Description = description
	t.touch()
}

// SetStatus replaces the status and records the mutation time, even when the
// new status equals the old one: a status-setting command is a mutation
// event.
func (t *Task) SetStatus(status Status) {
	t.Status = status
	t.touch()
}

func (t *Task) touch() {
	now := Now()
	t.UpdatedAt = &now
}

// Validate checks the record against the schema invariants: positive id and
// a recognized status. UpdatedAt, when present, must not precede CreatedAt.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("task %d has unrecognized status %q", t.ID, t.Status)
	}
	if t.UpdatedAt != nil && t.UpdatedAt.Before(t.CreatedAt.Time) {
		return fmt.Errorf("task %d updated_at precedes created_at", t.ID)
	}
	return nil
}
