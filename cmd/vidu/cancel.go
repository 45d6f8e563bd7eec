package main

import (
	"context"

	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel TASK_ID",
	Short: "Request cancellation of a running task",
	Long: `Ask the server to cancel a task. Cancellation is cooperative: a task
that is already terminal is rejected with a conflict, and a cancelled task
may still finish before the cancellation lands.`,
	Args: cobra.ExactArgs(1),
	RunE: runCancel,
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	client := newAPIClient()
	task := &vidu.Task{TaskID: args[0]}
	ctx := context.Background()

	if err := client.Cancel(ctx, task); err != nil {
		exitWithError(err)
	}

	// Re-poll so the caller sees the post-cancellation state.
	if err := client.Poll(ctx, task); err != nil {
		exitWithError(err)
	}

	printTask(task, nil)
	return nil
}
