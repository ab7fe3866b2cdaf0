package tasks

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"todolist/internal/model"
	"todolist/internal/output"
)

var getCmd = &cobra.Command{
	Use:   "get <number|id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	c := newClient()

	id, err := resolveTaskRef(cmd.Context(), c, args[0])
	if err != nil {
		return userError(err)
	}

	t, err := c.Get(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("task not found: %s", args[0])
		}
		return userError(err)
	}

	output.NewPrinter(cmd.OutOrStdout()).Task(t)
	return nil
}
