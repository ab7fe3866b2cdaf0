package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"todolist/internal/model"
	"todolist/internal/observability/jsonlog"
)

const tasksPath = "/api/tasks"

// TaskService is what the HTTP layer needs from the task service.
type TaskService interface {
	ListIncomplete(ctx context.Context) ([]model.Task, error)
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (model.Task, error)
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	MarkComplete(ctx context.Context, id uuid.UUID) (bool, error)
	IDExists(ctx context.Context, id uuid.UUID) (bool, error)
	DescriptionExists(ctx context.Context, description string) (bool, error)
}

type Options struct {
	Logger         *jsonlog.Logger
	RequestTimeout time.Duration
	// Pinger backs /readyz. Without one the probe always reports ready.
	Pinger DBPinger
}

type Server struct {
	service TaskService
	logger  *jsonlog.Logger
	mux     *http.ServeMux
	handler http.Handler
}

func NewServer(service TaskService, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = jsonlog.Discard()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 3 * time.Second
	}
	if opts.Pinger == nil {
		opts.Pinger = alwaysReady{}
	}

	srv := &Server{
		service: service,
		logger:  opts.Logger,
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)
	srv.mux.HandleFunc("GET /readyz", ReadyzHandler(opts.Pinger))

	srv.mux.HandleFunc("GET "+tasksPath, srv.handleListTasks)
	srv.mux.HandleFunc("POST "+tasksPath, srv.handleCreateTask)
	srv.mux.HandleFunc("GET "+tasksPath+"/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PUT "+tasksPath+"/{id}", srv.handleUpdateTask)
	srv.mux.HandleFunc("PUT "+tasksPath+"/mark-as-complete/{id}", srv.handleMarkComplete)

	srv.handler = WithRequestID()(
		Logging(opts.Logger)(
			Timeout(opts.RequestTimeout)(srv.mux),
		),
	)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

type alwaysReady struct{}

func (alwaysReady) PingContext(ctx context.Context) error { return nil }
