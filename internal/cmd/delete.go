package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task",
	Long: `Delete the task with the given id. Remaining tasks keep their ids;
deleted ids are never reassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	reg, cleanup, err := openRegistry("delete")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := reg.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d.\n", id)
	return nil
}
