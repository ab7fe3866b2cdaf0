package task

import (
	"strings"

	"github.com/google/uuid"

	"todolist/internal/model"
)

// ValidateDescription rejects empty and whitespace-only descriptions.
// The description itself is stored as given.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ValidateReplacement checks a full-replace request before it reaches the store.
func ValidateReplacement(pathID uuid.UUID, t model.Task) error {
	if pathID != t.ID {
		return ErrIDMismatch
	}
	return ValidateDescription(t.Description)
}
