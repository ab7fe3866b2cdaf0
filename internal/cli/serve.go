package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/httpapi"
	"todolist/internal/observability/jsonlog"
	"todolist/internal/store/memorystore"
	"todolist/internal/store/postgres"
	"todolist/internal/task"
)

var (
	serveAddr           string
	serveStore          string
	serveDBURL          string
	serveRequestTimeout time.Duration
	serveMigrate        bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the task API server",
	Long:  "Serves the REST API under /api/tasks until SIGINT or SIGTERM. Flags override TODOLIST_* environment variables.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&serveStore, "store", config.StoreMemory, "task store: memory or postgres")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "postgres connection URL (defaults to DB_URL)")
	serveCmd.Flags().DurationVar(&serveRequestTimeout, "request-timeout", config.DefaultRequestTimeout, "per-request timeout")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply the postgres schema before serving")
}

// taskStore is what serve needs from a store: the repository plus a readiness ping.
type taskStore interface {
	task.TaskRepository
	httpapi.DBPinger
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyServeFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := jsonlog.New(os.Stdout).With(jsonlog.Fields{"svc": "todolist"})

	store, closeStore, err := openStore(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := httpapi.NewServer(task.NewService(store, logger), httpapi.Options{
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
		Pinger:         store,
	})

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, ln, handler, cfg.ShutdownTimeout, logger)
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = serveAddr
	}
	if flags.Changed("store") {
		cfg.Store = serveStore
	}
	if flags.Changed("db-url") {
		cfg.DBURL = serveDBURL
	}
	if flags.Changed("request-timeout") {
		cfg.RequestTimeout = serveRequestTimeout
	}
}

func openStore(ctx context.Context, cfg config.Config, logger *jsonlog.Logger) (taskStore, func(), error) {
	if cfg.Store == config.StoreMemory {
		logger.Info("using in-memory store", nil)
		return memorystore.NewTaskStore(), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	if serveMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("schema applied", nil)
	}
	logger.Info("using postgres store", nil)
	return postgres.NewTaskRepo(db), func() { db.Close() }, nil
}

// serve runs the HTTP server on ln until ctx is done, then drains in-flight
// requests for at most shutdownTimeout.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration, logger *jsonlog.Logger) error {
	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", jsonlog.Fields{"addr": ln.Addr().String()})
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", jsonlog.Fields{"err": err})
		return err
	}
	logger.Info("bye", nil)
	return nil
}
