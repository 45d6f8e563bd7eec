// Package main provides the vidu CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vidu",
	Short: "Client for the Vidu generative-media API",
	Long: `vidu submits asynchronous video and audio generation tasks to the
Vidu API, polls them to completion, and downloads the results.

Credentials come from VIDU_API_KEY (environment or .env file) or from
~/.config/vidu/config.yml. All commands output JSON by default for easy
scripting; use --human for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env if present (for VIDU_API_KEY / VIDU_BASE_URL)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
