package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasktracker/internal/task"
)

func init() {
	rootCmd.AddCommand(
		newMarkCmd("mark-todo", task.StatusTodo),
		newMarkCmd("mark-in-progress", task.StatusInProgress),
		newMarkCmd("mark-done", task.StatusDone),
	)
}

// newMarkCmd builds one of the three mark commands. Marking always touches
// the task's update time, even when the status is unchanged.
func newMarkCmd(name string, status task.Status) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [id]",
		Short: fmt.Sprintf("Mark a task as %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			reg, cleanup, err := openRegistry(name)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := reg.SetStatus(id, status); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Marked task %d as %s.\n", id, status)
			return nil
		},
	}
}
