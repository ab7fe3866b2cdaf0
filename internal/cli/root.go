package cli

import (
	"github.com/spf13/cobra"

	"todolist/internal/cli/tasks"
)

var rootCmd = &cobra.Command{
	Use:          "todolist",
	Short:        "Minimal task tracker",
	Long:         `todolist runs the task API server and talks to it from the command line.`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tasks.TasksCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
