package main

import (
	"fmt"

	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List voice characters for text-driven lip-sync",
	RunE:  runVoices,
}

func init() {
	rootCmd.AddCommand(voicesCmd)
}

func runVoices(cmd *cobra.Command, args []string) error {
	voices := vidu.Voices()

	if humanOutput {
		for _, v := range voices {
			fmt.Printf("%-28s %s\n", v.ID, v.Label)
		}
		return nil
	}
	return outputJSON(voices)
}
