package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"todolist/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		t.Skip("DB_URL not set (integration test)")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatal(err)
	}
	return db
}

// uniqueDescription keeps runs against a shared database independent.
func uniqueDescription(prefix string) string {
	return prefix + " " + time.Now().UTC().Format("20060102_150405.000000000")
}

func TestTaskRepo_InsertGetRoundTrip(t *testing.T) {
	repo := NewTaskRepo(openTestDB(t))
	ctx := context.Background()

	task := model.Task{Description: uniqueDescription("round trip")}
	if err := repo.Insert(ctx, &task); err != nil {
		t.Fatal(err)
	}
	if task.ID == uuid.Nil || task.Version != 1 {
		t.Fatalf("unexpected inserted task: %+v", task)
	}

	got, err := repo.Get(ctx, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != task {
		t.Fatalf("got %+v want %+v", got, task)
	}

	dup := model.Task{ID: task.ID, Description: "dup"}
	if err := repo.Insert(ctx, &dup); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate id, got %v", err)
	}
}

func TestTaskRepo_GetMissing(t *testing.T) {
	repo := NewTaskRepo(openTestDB(t))
	if _, err := repo.Get(context.Background(), uuid.New()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskRepo_UpdateVersionCheck(t *testing.T) {
	repo := NewTaskRepo(openTestDB(t))
	ctx := context.Background()

	task := model.Task{Description: uniqueDescription("versioned")}
	if err := repo.Insert(ctx, &task); err != nil {
		t.Fatal(err)
	}
	stale := task

	task.IsCompleted = true
	if err := repo.Update(ctx, &task); err != nil {
		t.Fatal(err)
	}
	if task.Version != 2 {
		t.Fatalf("version=%d", task.Version)
	}

	stale.Description = "stale write"
	if err := repo.Update(ctx, &stale); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}

	missing := model.Task{ID: uuid.New(), Description: "nobody"}
	if err := repo.Update(ctx, &missing); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict on missing id, got %v", err)
	}
}

func TestTaskRepo_ExistsIncompleteDescription(t *testing.T) {
	repo := NewTaskRepo(openTestDB(t))
	ctx := context.Background()

	desc := uniqueDescription("Buy Milk")
	task := model.Task{Description: desc}
	if err := repo.Insert(ctx, &task); err != nil {
		t.Fatal(err)
	}

	ok, err := repo.ExistsIncompleteDescription(ctx, "buy milk"+desc[len("Buy Milk"):])
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected case-insensitive match")
	}

	task.IsCompleted = true
	if err := repo.Update(ctx, &task); err != nil {
		t.Fatal(err)
	}
	ok, err = repo.ExistsIncompleteDescription(ctx, desc)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("completed task should not block the description")
	}

	exists, err := repo.ExistsID(ctx, task.ID)
	if err != nil || !exists {
		t.Fatalf("expected id to exist, ok=%v err=%v", exists, err)
	}
}

func TestTaskRepo_ListIncompleteOnly(t *testing.T) {
	repo := NewTaskRepo(openTestDB(t))
	ctx := context.Background()

	open := model.Task{Description: uniqueDescription("open")}
	done := model.Task{Description: uniqueDescription("done"), IsCompleted: true}
	for _, task := range []*model.Task{&open, &done} {
		if err := repo.Insert(ctx, task); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := repo.List(ctx, model.Incomplete())
	if err != nil {
		t.Fatal(err)
	}
	var sawOpen bool
	for _, task := range tasks {
		if task.IsCompleted {
			t.Fatalf("listing returned completed task %+v", task)
		}
		if task.ID == open.ID {
			sawOpen = true
		}
	}
	if !sawOpen {
		t.Fatalf("expected %s in incomplete listing", open.ID)
	}
}
