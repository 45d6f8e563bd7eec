package main

import (
	"fmt"
	"strings"

	"github.com/genmedia/vidu/internal/upload"
	"github.com/spf13/cobra"
)

var uploadFlags struct {
	kind     string
	dir      string
	maxBytes int64
}

var uploadCmd = &cobra.Command{
	Use:   "stage FILE",
	Short: "Stage a local media file under a unique name",
	Long: `Copy a local media file into the staging directory under a unique
collision-free name, enforcing the per-kind extension allow-list. The
staging directory is trimmed oldest-first when it grows past --max-bytes.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	f := uploadCmd.Flags()
	f.StringVar(&uploadFlags.kind, "kind", "image", "Media kind ("+strings.Join(upload.Kinds(), ", ")+")")
	f.StringVar(&uploadFlags.dir, "dir", "uploads", "Staging directory")
	f.Int64Var(&uploadFlags.maxBytes, "max-bytes", 1<<30, "Staging directory size cap in bytes")
}

func runUpload(cmd *cobra.Command, args []string) error {
	staged, err := upload.Stage(args[0], uploadFlags.dir, uploadFlags.kind)
	if err != nil {
		exitWithError(err)
	}

	if err := upload.CleanupOldest(uploadFlags.dir, uploadFlags.maxBytes); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: trimming staging directory: %v\n", err)
	}

	if humanOutput {
		fmt.Println(staged)
		return nil
	}
	return outputJSON(map[string]string{"path": staged})
}
