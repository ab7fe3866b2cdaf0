package tasks

import (
	"github.com/spf13/cobra"

	"todolist/internal/model"
	"todolist/internal/output"
)

var listCompleted bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List incomplete tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "list completed tasks instead")
}

func runList(cmd *cobra.Command, args []string) error {
	c := newClient()

	var (
		tasks []model.Task
		err   error
	)
	if listCompleted {
		tasks, err = c.ListCompleted(cmd.Context())
	} else {
		tasks, err = c.ListIncomplete(cmd.Context())
	}
	if err != nil {
		return userError(err)
	}

	output.NewPrinter(cmd.OutOrStdout()).Tasks(tasks)
	return nil
}
