package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tasktracker/internal/task"
)

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks, optionally filtered by status",
	Long: `List all tasks in ascending id order. With a status argument
(todo, in-progress, done), only tasks with that status are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var filter *task.Status
	if len(args) == 1 {
		status, err := task.ParseStatus(args[0])
		if err != nil {
			return err
		}
		filter = &status
	}

	reg, cleanup, err := openRegistry("list")
	if err != nil {
		return err
	}
	defer cleanup()

	tasks := reg.List(filter)
	if len(tasks) == 0 && filter != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No tasks with the status %s.\n", *filter)
		return nil
	}

	for _, t := range tasks {
		printTask(cmd.OutOrStdout(), t)
	}
	return nil
}

// printTask renders one task as a two-line entry: id, status badge, and
// description on the first line; timestamps on the second.
func printTask(w io.Writer, t task.Task) {
	updated := "-"
	if t.UpdatedAt != nil {
		updated = t.UpdatedAt.Format(task.TimeLayout)
	}

	fmt.Fprintf(w, "%s %s %s\n",
		idStyle.Render(fmt.Sprintf("%d", t.ID)),
		statusStyle(t.Status).Render("["+t.Status.String()+"]"),
		descriptionStyle.Render(t.Description),
	)
	fmt.Fprintf(w, "     %s\n",
		metaStyle.Render(fmt.Sprintf("created %s  updated %s", t.CreatedAt.Format(task.TimeLayout), updated)),
	)
}
