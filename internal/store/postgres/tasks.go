package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"todolist/internal/model"
)

const uniqueViolation = "23505"

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Open connects through the pgx stdlib driver and pings once.
func Open(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	q := `SELECT id, description, is_completed, version FROM tasks`
	var args []any
	if filter.Completed != nil {
		q += ` WHERE is_completed = $1`
		args = append(args, *filter.Completed)
	}
	q += ` ORDER BY created_at, id;`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.IsCompleted, &t.Version); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) Get(ctx context.Context, id uuid.UUID) (model.Task, error) {
	const q = `
SELECT id, description, is_completed, version
FROM tasks
WHERE id = $1;
`
	var t model.Task
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Description, &t.IsCompleted, &t.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}

func (r *TaskRepo) Insert(ctx context.Context, t *model.Task) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	const q = `
INSERT INTO tasks (id, description, is_completed, version)
VALUES ($1, $2, $3, 1)
RETURNING version;
`
	err := r.db.QueryRowContext(ctx, q, t.ID, t.Description, t.IsCompleted).Scan(&t.Version)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("insert task %s: %w", t.ID, model.ErrConflict)
		}
		return fmt.Errorf("insert task %s: %w", t.ID, err)
	}
	return nil
}

// Update matches on id, and on version too when t.Version is non-zero.
func (r *TaskRepo) Update(ctx context.Context, t *model.Task) error {
	const q = `
UPDATE tasks
SET description = $2,
    is_completed = $3,
    version = version + 1,
    updated_at = now()
WHERE id = $1
  AND ($4::int = 0 OR version = $4::int)
RETURNING version;
`
	var version int
	err := r.db.QueryRowContext(ctx, q, t.ID, t.Description, t.IsCompleted, t.Version).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update task %s: %w", t.ID, model.ErrConflict)
		}
		return fmt.Errorf("update task %s: %w", t.ID, err)
	}
	t.Version = version
	return nil
}

func (r *TaskRepo) ExistsID(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1);`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("task id exists: %w", err)
	}
	return ok, nil
}

func (r *TaskRepo) ExistsIncompleteDescription(ctx context.Context, description string) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1 FROM tasks
    WHERE NOT is_completed
      AND lower(description) = lower($1)
);
`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, description).Scan(&ok); err != nil {
		return false, fmt.Errorf("task description exists: %w", err)
	}
	return ok, nil
}

func (r *TaskRepo) PingContext(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}
