package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"todolist/internal/observability/jsonlog"
	"todolist/internal/store/postgres"
)

var migrateDBURL string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the postgres schema",
	Long:  "Creates the tasks table and its indexes if they do not exist. Safe to run repeatedly.",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDBURL, "db-url", "", "postgres connection URL (defaults to DB_URL)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dbURL := migrateDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
	}
	if dbURL == "" {
		return errors.New("DB_URL is required")
	}

	logger := jsonlog.New(cmd.OutOrStdout())

	db, err := postgres.Open(cmd.Context(), dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	logger.Info("schema applied", nil)
	return nil
}
