package tasks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"todolist/internal/model"
)

var ErrTaskRefRequired = errors.New("task reference required")

type incompleteLister interface {
	ListIncomplete(ctx context.Context) ([]model.Task, error)
}

// resolveTaskRef accepts either a task id or the 1-based number shown by
// "tasks list". Numbers are resolved against the current incomplete listing.
func resolveTaskRef(ctx context.Context, c incompleteLister, ref string) (uuid.UUID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return uuid.Nil, ErrTaskRefRequired
	}
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}
	if !isAllDigits(ref) {
		return uuid.Nil, fmt.Errorf("invalid task reference: %s", ref)
	}

	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return uuid.Nil, fmt.Errorf("task number out of range: %s", ref)
	}

	tasks, err := c.ListIncomplete(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if num > len(tasks) {
		return uuid.Nil, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1].ID, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
