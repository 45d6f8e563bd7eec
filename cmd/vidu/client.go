package main

import (
	"context"
	"fmt"
	"os"

	"github.com/genmedia/vidu/internal/config"
	"github.com/genmedia/vidu/internal/history"
	"github.com/genmedia/vidu/internal/vidu"
)

// newAPIClient builds the API client from config and environment.
func newAPIClient() *vidu.Client {
	var opts []vidu.ClientOption
	if key := config.GetAPIKey(); key != "" {
		opts = append(opts, vidu.WithAPIKey(key))
	} else {
		if humanOutput {
			fmt.Fprintln(os.Stderr, "error: no API key configured (set VIDU_API_KEY or api_key in "+config.Path()+")")
		} else {
			outputJSON(ErrorResponse{Error: "no API key configured"})
		}
		os.Exit(ExitConfigError)
	}
	if base := config.GetBaseURL(); base != "" {
		opts = append(opts, vidu.WithBaseURL(base))
	}
	return vidu.NewClient(opts...)
}

// downloadAndRecord downloads all artifacts of a succeeded task and logs
// them in the download ledger. Ledger failures are warnings, not errors:
// the files are already on disk.
func downloadAndRecord(ctx context.Context, client *vidu.Client, task *vidu.Task, dir, prefix string) (map[string]string, error) {
	if dir == "" {
		dir = config.GetDownloadDir()
	}

	files, err := client.DownloadArtifacts(ctx, task, dir, prefix)
	if err != nil {
		return nil, err
	}

	ledger, err := history.Open(config.HistoryDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: download ledger unavailable: %v\n", err)
		return files, nil
	}
	defer ledger.Close()

	artifacts := task.Artifacts()
	for label, path := range files {
		rec := history.Record{TaskID: task.TaskID, Path: path}
		if info, err := os.Stat(path); err == nil {
			rec.Bytes = info.Size()
		}
		for i, a := range artifacts {
			if label == fmt.Sprintf("main_%d", i) {
				rec.ArtifactID, rec.URL = a.ID, a.URL
			}
			if label == fmt.Sprintf("cover_%d", i) {
				rec.ArtifactID, rec.URL = a.ID, a.CoverURL
			}
		}
		if err := ledger.Add(rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording download: %v\n", err)
		}
	}

	return files, nil
}
