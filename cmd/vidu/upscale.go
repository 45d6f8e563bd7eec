package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var upscaleFlags struct {
	videoURL   string
	creationID string
	resolution string
	payload    string
	callback   string
}

var upscaleCmd = &cobra.Command{
	Use:   "upscale",
	Short: "Upscale an existing video",
	Long: `Create an upscaling task for a video, referenced either by URL or by
the creation id of an earlier Vidu task.`,
	RunE: runUpscale,
}

func init() {
	submitCmd.AddCommand(upscaleCmd)

	f := upscaleCmd.Flags()
	f.StringVar(&upscaleFlags.videoURL, "video-url", "", "Source video URL")
	f.StringVar(&upscaleFlags.creationID, "creation-id", "", "Creation id of an earlier Vidu task")
	f.StringVar(&upscaleFlags.resolution, "resolution", "", "Target resolution (1080p, 2K, 4K, 8K)")
	f.StringVar(&upscaleFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&upscaleFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runUpscale(cmd *cobra.Command, args []string) error {
	req := &vidu.UpscaleProRequest{
		VideoURL:          upscaleFlags.videoURL,
		VideoCreationID:   upscaleFlags.creationID,
		UpscaleResolution: upscaleFlags.resolution,
		Payload:           upscaleFlags.payload,
		CallbackURL:       upscaleFlags.callback,
	}

	return runSubmit(req)
}
