package task

import (
	"tasktracker/internal/errors"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is actively being worked on.
	StatusInProgress Status = "in-progress"

	// StatusDone indicates the task is finished.
	StatusDone Status = "done"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if s is one of the three recognized statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Statuses returns all recognized statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus converts raw CLI text into a Status. Unrecognized values fail
// with a validation error; after this boundary invalid statuses are
// unrepresentable.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", errors.NewValidationError("status must be one of: todo, in-progress, done").
			WithField("status").
			WithValue(raw)
	}
	return s, nil
}
