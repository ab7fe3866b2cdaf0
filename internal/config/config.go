package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	DefaultAddr            = ":8080"
	DefaultServerURL       = "http://localhost:8080"
	DefaultRequestTimeout  = 3 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// Config is the server configuration. Load fills it from the environment;
// command-line flags may override fields before Validate is called.
type Config struct {
	Addr            string
	Store           string
	DBURL           string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Addr:            envOr("TODOLIST_ADDR", DefaultAddr),
		Store:           strings.ToLower(envOr("TODOLIST_STORE", StoreMemory)),
		DBURL:           os.Getenv("DB_URL"),
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("TODOLIST_REQUEST_TIMEOUT", DefaultRequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("TODOLIST_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is required")
	}
	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DBURL == "" {
			return errors.New("DB_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreMemory, StorePostgres)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

// ServerURL is the API base URL used by the client commands.
func ServerURL() string {
	return strings.TrimRight(envOr("TODOLIST_SERVER", DefaultServerURL), "/")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
