package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned by a store when a write targets a record that is
	// missing or whose version no longer matches what the writer read.
	ErrConflict = errors.New("conflicting write")
)

type Task struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`

	// Version is the optimistic concurrency token. Zero means "any version".
	Version int `json:"-"`
}

// TaskFilter narrows a listing. A nil Completed returns every task.
type TaskFilter struct {
	Completed *bool
}

func (f TaskFilter) Match(t Task) bool {
	if f.Completed != nil && t.IsCompleted != *f.Completed {
		return false
	}
	return true
}

func Incomplete() TaskFilter {
	completed := false
	return TaskFilter{Completed: &completed}
}
