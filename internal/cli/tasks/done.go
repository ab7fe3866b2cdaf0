package tasks

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"todolist/internal/model"
	"todolist/internal/output"
)

var doneCmd = &cobra.Command{
	Use:   "done <number|id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	c := newClient()

	id, err := resolveTaskRef(cmd.Context(), c, args[0])
	if err != nil {
		return userError(err)
	}

	if err := c.MarkComplete(cmd.Context(), id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("task not found or already complete: %s", args[0])
		}
		return userError(err)
	}

	if !quiet {
		output.NewPrinter(cmd.OutOrStdout()).OK()
	}
	return nil
}
