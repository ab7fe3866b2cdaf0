package tasks

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"todolist/internal/model"
	"todolist/internal/output"
)

var editDescription string

var editCmd = &cobra.Command{
	Use:   "edit <number|id> --description <text>",
	Short: "Change a task's description",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "new description")
	_ = editCmd.MarkFlagRequired("description")
}

func runEdit(cmd *cobra.Command, args []string) error {
	c := newClient()

	id, err := resolveTaskRef(cmd.Context(), c, args[0])
	if err != nil {
		return userError(err)
	}

	// PUT is a full replace, so start from the stored task.
	t, err := c.Get(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("task not found: %s", args[0])
		}
		return userError(err)
	}
	t.Description = editDescription

	if err := c.Update(cmd.Context(), t); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("task not found: %s", args[0])
		}
		return userError(err)
	}

	if !quiet {
		output.NewPrinter(cmd.OutOrStdout()).OK()
	}
	return nil
}
