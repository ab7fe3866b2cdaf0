package tasks

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"todolist/internal/client"
	"todolist/internal/config"
)

var (
	serverURL string
	quiet     bool
)

// TasksCmd is the parent command for the client-side task subcommands.
var TasksCmd = &cobra.Command{
	Use:          "tasks",
	Aliases:      []string{"t"},
	Short:        "List, add and complete tasks on a todolist server",
	SilenceUsage: true,
}

func init() {
	TasksCmd.PersistentFlags().StringVar(&serverURL, "server", config.ServerURL(), "todolist server URL (TODOLIST_SERVER)")
	TasksCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")

	TasksCmd.AddCommand(listCmd)
	TasksCmd.AddCommand(addCmd)
	TasksCmd.AddCommand(doneCmd)
	TasksCmd.AddCommand(getCmd)
	TasksCmd.AddCommand(editCmd)
}

func newClient() *client.Client {
	return client.New(serverURL)
}

// userError turns a rejected request into the server's own message.
func userError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return err
}
