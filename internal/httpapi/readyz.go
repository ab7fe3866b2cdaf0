package httpapi

import (
	"context"
	"net/http"
	"time"
)

// DBPinger is satisfied by *sql.DB and by both task stores.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

func ReadyzHandler(db DBPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "not ready")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
