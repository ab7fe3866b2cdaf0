package task

import (
	"context"

	"github.com/google/uuid"

	"todolist/internal/model"
)

// TaskRepository is the persistent task collection the service runs on.
// Insert assigns t.ID when it is uuid.Nil. Update returns model.ErrConflict when
// no row matches t.ID (and t.Version, if non-zero) and bumps t.Version on success.
type TaskRepository interface {
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (model.Task, error)
	Insert(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	ExistsID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsIncompleteDescription(ctx context.Context, description string) (bool, error)
}
