package main

import (
	"context"

	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status TASK_ID",
	Short: "Fetch the current state of a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := newAPIClient()
	task := &vidu.Task{TaskID: args[0]}

	if err := client.Poll(context.Background(), task); err != nil {
		exitWithError(err)
	}

	printTask(task, nil)
	return nil
}
