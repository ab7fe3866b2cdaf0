package tasks

import (
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add <description...>",
	Short: "Add a task",
	Long:  "Adds an incomplete task. Remaining arguments are joined with spaces.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	created, err := newClient().Create(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return userError(err)
	}
	if !quiet {
		output.NewPrinter(cmd.OutOrStdout()).Created(created)
	}
	return nil
}
