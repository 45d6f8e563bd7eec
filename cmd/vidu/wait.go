package main

import (
	"context"
	"time"

	"github.com/genmedia/vidu/internal/config"
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var waitFlags struct {
	timeout  int
	interval int
}

var waitCmd = &cobra.Command{
	Use:   "wait TASK_ID",
	Short: "Block until a task reaches a terminal state",
	Long: `Poll a task until it succeeds or fails, or until the timeout elapses.
The remote job keeps running after a timeout; use "vidu cancel" to stop it.`,
	Args: cobra.ExactArgs(1),
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)

	f := waitCmd.Flags()
	f.IntVar(&waitFlags.timeout, "timeout", 0, "Wait timeout in seconds (default from config)")
	f.IntVar(&waitFlags.interval, "interval", 0, "Poll interval in seconds (default from config)")
}

// waitTimings resolves the wait and poll durations from flags and config.
func waitTimings() (timeout, interval time.Duration) {
	timeout = config.GetTimeout()
	if waitFlags.timeout > 0 {
		timeout = time.Duration(waitFlags.timeout) * time.Second
	}
	interval = config.GetPollInterval()
	if waitFlags.interval > 0 {
		interval = time.Duration(waitFlags.interval) * time.Second
	}
	return timeout, interval
}

func runWait(cmd *cobra.Command, args []string) error {
	client := newAPIClient()
	task := &vidu.Task{TaskID: args[0]}

	timeout, interval := waitTimings()
	if err := client.Wait(context.Background(), task, timeout, interval); err != nil {
		exitWithError(err)
	}

	printTask(task, nil)
	return nil
}
