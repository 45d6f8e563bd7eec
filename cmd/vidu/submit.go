package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/genmedia/vidu/internal/config"
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

// Flags shared by all submit subcommands.
var (
	submitWait     bool
	submitDownload bool
	submitDir      string
	submitPrefix   string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a generation task",
	Long: `Submit an asynchronous generation task.

Each subcommand validates its parameters locally before anything is sent;
constraint violations (wrong image count, off-whitelist duration, oversized
prompt) fail fast without a network call.`,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.PersistentFlags().BoolVar(&submitWait, "wait", false, "Block until the task reaches a terminal state")
	submitCmd.PersistentFlags().BoolVar(&submitDownload, "download", false, "Wait, then download all artifacts (implies --wait)")
	submitCmd.PersistentFlags().StringVar(&submitDir, "dir", "", "Download directory (default from config)")
	submitCmd.PersistentFlags().StringVar(&submitPrefix, "prefix", "", "Downloaded filename prefix (default task id)")
}

// runSubmit is the shared tail of every submit subcommand.
func runSubmit(req vidu.SubmitRequest) error {
	client := newAPIClient()
	ctx := context.Background()

	task, err := client.Submit(ctx, req)
	if err != nil {
		exitWithError(err)
	}

	if submitDownload {
		submitWait = true
	}
	if submitWait {
		if err := client.Wait(ctx, task, config.GetTimeout(), config.GetPollInterval()); err != nil {
			exitWithError(err)
		}
	}

	var files map[string]string
	if submitDownload && task.State == vidu.StateSucceeded {
		files, err = downloadAndRecord(ctx, client, task, submitDir, submitPrefix)
		if err != nil {
			exitWithError(err)
		}
	}

	printTask(task, files)
	return nil
}

// seedFlag converts a seed flag value to the optional request field. The
// flag default -1 means "let the service choose".
func seedFlag(seed int) *int {
	if seed < 0 {
		return nil
	}
	return &seed
}

// resolveImages passes URLs and data URIs through and inlines local file
// paths as base64 data URIs.
func resolveImages(images []string) ([]string, error) {
	resolved := make([]string, len(images))
	for i, img := range images {
		if strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") || strings.HasPrefix(img, "data:") {
			resolved[i] = img
			continue
		}
		encoded, err := vidu.EncodeImageFile(img, contentTypeFor(img))
		if err != nil {
			return nil, err
		}
		resolved[i] = encoded
	}
	return resolved, nil
}

// contentTypeFor guesses an image content type from the file extension.
func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
