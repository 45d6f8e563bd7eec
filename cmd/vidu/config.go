package main

import (
	"fmt"

	"github.com/genmedia/vidu/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration the client would use, after merging the config
file with environment variables. The API key is reported only as set or
unset, never printed.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configView is the JSON view of the effective configuration.
type configView struct {
	Path         string `json:"path"`
	APIKeySet    bool   `json:"api_key_set"`
	BaseURL      string `json:"base_url,omitempty"`
	DownloadDir  string `json:"download_dir"`
	Timeout      string `json:"timeout"`
	PollInterval string `json:"poll_interval"`
	HistoryDB    string `json:"history_db"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		exitWithError(err)
	}

	view := configView{
		Path:         config.Path(),
		APIKeySet:    config.GetAPIKey() != "",
		BaseURL:      config.GetBaseURL(),
		DownloadDir:  config.GetDownloadDir(),
		Timeout:      config.GetTimeout().String(),
		PollInterval: config.GetPollInterval().String(),
		HistoryDB:    config.HistoryDBPath(),
	}

	if humanOutput {
		fmt.Printf("config file:   %s\n", view.Path)
		fmt.Printf("api key:       set=%t\n", view.APIKeySet)
		if view.BaseURL != "" {
			fmt.Printf("base url:      %s\n", view.BaseURL)
		}
		fmt.Printf("download dir:  %s\n", view.DownloadDir)
		fmt.Printf("wait timeout:  %s\n", view.Timeout)
		fmt.Printf("poll interval: %s\n", view.PollInterval)
		fmt.Printf("history db:    %s\n", view.HistoryDB)
		return nil
	}
	return outputJSON(view)
}
