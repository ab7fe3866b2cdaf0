package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"todolist/internal/client"
	"todolist/internal/httpapi"
	"todolist/internal/model"
	"todolist/internal/store/memorystore"
	"todolist/internal/task"
)

func newClient(t *testing.T) (*client.Client, *memorystore.TaskStore) {
	t.Helper()

	repo := memorystore.NewTaskStore()
	srv := httptest.NewServer(httpapi.NewServer(task.NewService(repo, nil), httpapi.Options{}))
	t.Cleanup(srv.Close)

	return client.New(srv.URL+"/", client.WithHTTPClient(srv.Client())), repo
}

func TestClient_CreateListComplete(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	wash, err := c.Create(ctx, "Wash car")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if wash.ID == uuid.Nil || wash.IsCompleted {
		t.Fatalf("unexpected created task: %+v", wash)
	}
	if _, err := c.Create(ctx, "Buy milk"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tasks, err := c.ListIncomplete(ctx)
	if err != nil {
		t.Fatalf("ListIncomplete: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Description != "Wash car" || tasks[1].Description != "Buy milk" {
		t.Fatalf("unexpected listing: %+v", tasks)
	}

	if err := c.MarkComplete(ctx, wash.ID); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}

	tasks, err = c.ListIncomplete(ctx)
	if err != nil {
		t.Fatalf("ListIncomplete: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Description != "Buy milk" {
		t.Fatalf("unexpected listing after completion: %+v", tasks)
	}

	done, err := c.ListCompleted(ctx)
	if err != nil {
		t.Fatalf("ListCompleted: %v", err)
	}
	if len(done) != 1 || done[0].ID != wash.ID {
		t.Fatalf("unexpected completed listing: %+v", done)
	}

	// completing twice is reported as not found
	err = c.MarkComplete(ctx, wash.ID)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second completion, got %v", err)
	}
}

func TestClient_CreateRejected(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	if _, err := c.Create(ctx, "Wash car"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := c.Create(ctx, "wash CAR")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message == "" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if !errors.Is(err, client.ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}

	if _, err := c.Create(ctx, "   "); !errors.Is(err, client.ErrRejected) {
		t.Fatalf("expected ErrRejected for blank description, got %v", err)
	}
}

func TestClient_GetAndUpdate(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	created, err := c.Create(ctx, "Task 1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Description = "Task 1 (edited)"
	if err := c.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := c.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description != "Task 1 (edited)" {
		t.Fatalf("update not applied: %+v", got)
	}

	_, err = c.Get(ctx, uuid.New())
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	err = c.Update(ctx, model.Task{ID: uuid.New(), Description: "ghost"})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestClient_EmptyListIsEmptySlice(t *testing.T) {
	c, _ := newClient(t)

	tasks, err := c.ListIncomplete(context.Background())
	if err != nil {
		t.Fatalf("ListIncomplete: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", tasks)
	}
}

func TestClient_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	c := client.New(slow.URL, client.WithHTTPClient(slow.Client()), client.WithTimeout(50*time.Millisecond))
	_, err := c.ListIncomplete(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.New(srv.URL, client.WithHTTPClient(srv.Client())).ListIncomplete(context.Background())
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "bad gateway" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, client.ErrRejected) {
		t.Fatalf("502 must not map to a sentinel: %v", err)
	}
}
