package main

import (
	"context"

	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var downloadFlags struct {
	dir    string
	prefix string
}

var downloadCmd = &cobra.Command{
	Use:   "download TASK_ID",
	Short: "Download all artifacts of a succeeded task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	f := downloadCmd.Flags()
	f.StringVar(&downloadFlags.dir, "dir", "", "Download directory (default from config)")
	f.StringVar(&downloadFlags.prefix, "prefix", "", "Downloaded filename prefix (default task id)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	client := newAPIClient()
	task := &vidu.Task{TaskID: args[0]}
	ctx := context.Background()

	if err := client.Poll(ctx, task); err != nil {
		exitWithError(err)
	}

	files, err := downloadAndRecord(ctx, client, task, downloadFlags.dir, downloadFlags.prefix)
	if err != nil {
		exitWithError(err)
	}

	printTask(task, files)
	return nil
}
