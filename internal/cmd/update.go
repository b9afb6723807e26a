package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [id] [description]",
	Short: "Update a task's description",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	reg, cleanup, err := openRegistry("update")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := reg.Update(id, args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d.\n", id)
	return nil
}
