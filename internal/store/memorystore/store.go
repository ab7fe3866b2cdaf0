package memorystore

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"todolist/internal/model"
)

// TaskStore keeps tasks in memory in insertion order.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]model.Task
	order []uuid.UUID
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]model.Task)}
}

func (s *TaskStore) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		t := s.tasks[id]
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TaskStore) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}
	return t, nil
}

func (s *TaskStore) Insert(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if _, exists := s.tasks[t.ID]; exists {
		return fmt.Errorf("insert task %s: %w", t.ID, model.ErrConflict)
	}

	t.Version = 1
	s.tasks[t.ID] = *t
	s.order = append(s.order, t.ID)
	return nil
}

func (s *TaskStore) Update(ctx context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.tasks[t.ID]
	if !ok {
		return fmt.Errorf("update task %s: %w", t.ID, model.ErrConflict)
	}
	if t.Version != 0 && t.Version != cur.Version {
		return fmt.Errorf("update task %s at version %d (stored %d): %w", t.ID, t.Version, cur.Version, model.ErrConflict)
	}

	t.Version = cur.Version + 1
	s.tasks[t.ID] = *t
	return nil
}

func (s *TaskStore) ExistsID(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tasks[id]
	return ok, nil
}

func (s *TaskStore) ExistsIncompleteDescription(ctx context.Context, description string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if !t.IsCompleted && strings.EqualFold(t.Description, description) {
			return true, nil
		}
	}
	return false, nil
}

// PingContext lets the store back the readiness probe.
func (s *TaskStore) PingContext(ctx context.Context) error {
	return ctx.Err()
}
