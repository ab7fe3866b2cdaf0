package task

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"todolist/internal/model"
	"todolist/internal/observability/jsonlog"
)

type Service struct {
	repo   TaskRepository
	logger *jsonlog.Logger
}

func NewService(repo TaskRepository, logger *jsonlog.Logger) *Service {
	if logger == nil {
		logger = jsonlog.Discard()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListIncomplete(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, model.Incomplete())
}

func (s *Service) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return s.repo.List(ctx, filter)
}

// Get returns model.ErrNotFound when no task has the id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

// Create persists t as given. The store fills in t.ID.
// Callers validate the description first (see ValidateDescription, DescriptionExists).
func (s *Service) Create(ctx context.Context, t *model.Task) error {
	return s.repo.Insert(ctx, t)
}

// Update replaces the stored task with t. It returns model.ErrConflict when
// t.ID is unknown or the stored version moved on.
func (s *Service) Update(ctx context.Context, t *model.Task) error {
	return s.repo.Update(ctx, t)
}

// MarkComplete reports whether the task moved from incomplete to completed.
// Absent and already-completed tasks yield false. A failed write is logged
// and also yields false; only a failed lookup is returned as an error.
func (s *Service) MarkComplete(ctx context.Context, id uuid.UUID) (bool, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if t.IsCompleted {
		return false, nil
	}

	t.IsCompleted = true
	if err := s.repo.Update(ctx, &t); err != nil {
		s.logger.Warn("mark complete not persisted", jsonlog.Fields{
			"task_id": id.String(),
			"err":     err,
		})
		return false, nil
	}
	return true, nil
}

func (s *Service) IDExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ExistsID(ctx, id)
}

// DescriptionExists matches case-insensitively against incomplete tasks only.
func (s *Service) DescriptionExists(ctx context.Context, description string) (bool, error) {
	return s.repo.ExistsIncompleteDescription(ctx, description)
}
