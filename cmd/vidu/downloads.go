package main

import (
	"fmt"

	"github.com/genmedia/vidu/internal/config"
	"github.com/genmedia/vidu/internal/history"
	"github.com/spf13/cobra"
)

var downloadsLimit int

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "List recorded downloads, newest first",
	RunE:  runDownloads,
}

func init() {
	rootCmd.AddCommand(downloadsCmd)

	downloadsCmd.Flags().IntVar(&downloadsLimit, "limit", 20, "Maximum records to show (0 = all)")
}

func runDownloads(cmd *cobra.Command, args []string) error {
	ledger, err := history.Open(config.HistoryDBPath())
	if err != nil {
		exitWithError(err)
	}
	defer ledger.Close()

	records, err := ledger.List(downloadsLimit)
	if err != nil {
		exitWithError(err)
	}

	if humanOutput {
		if len(records) == 0 {
			fmt.Println("no downloads recorded")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  task %s  %s (%d bytes)\n",
				rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.TaskID, rec.Path, rec.Bytes)
		}
		return nil
	}

	if records == nil {
		records = []history.Record{}
	}
	return outputJSON(records)
}
