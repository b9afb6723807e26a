package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a new task",
	Long: `Add a new task with the given description. The task starts in the
todo status and is assigned the next free id.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	reg, cleanup, err := openRegistry("add")
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := reg.Add(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d.\n", id)
	return nil
}
