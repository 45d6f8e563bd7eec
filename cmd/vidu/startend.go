package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var startEndFlags struct {
	model      string
	images     []string
	prompt     string
	duration   int
	seed       int
	resolution string
	movement   string
	bgm        bool
	payload    string
	callback   string
}

var startEndCmd = &cobra.Command{
	Use:   "startend2video",
	Short: "Interpolate between a start and an end frame",
	Long: `Create a start/end-to-video task from exactly two images: the first
frame and the last frame of the clip.`,
	RunE: runStartEnd,
}

func init() {
	submitCmd.AddCommand(startEndCmd)

	f := startEndCmd.Flags()
	f.StringVar(&startEndFlags.model, "model", string(vidu.ModelVidu2), "Model name (viduq1, viduq1-classic, vidu2.0, vidu1.5)")
	f.StringArrayVar(&startEndFlags.images, "image", nil, "Frame image (URL or local file); exactly two required")
	f.StringVar(&startEndFlags.prompt, "prompt", "", "Text prompt (max 1500 characters)")
	f.IntVar(&startEndFlags.duration, "duration", 0, "Clip length in seconds (0 = model default)")
	f.IntVar(&startEndFlags.seed, "seed", -1, "Random seed (-1 = service chooses)")
	f.StringVar(&startEndFlags.resolution, "resolution", "", "Output resolution (360p, 720p, 1080p)")
	f.StringVar(&startEndFlags.movement, "movement", "", "Movement amplitude (auto, small, medium, large)")
	f.BoolVar(&startEndFlags.bgm, "bgm", false, "Add background music")
	f.StringVar(&startEndFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&startEndFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runStartEnd(cmd *cobra.Command, args []string) error {
	images, err := resolveImages(startEndFlags.images)
	if err != nil {
		exitWithError(err)
	}

	req := &vidu.StartEndToVideoRequest{
		Model:             vidu.Model(startEndFlags.model),
		Images:            images,
		Prompt:            startEndFlags.prompt,
		Duration:          startEndFlags.duration,
		Seed:              seedFlag(startEndFlags.seed),
		Resolution:        vidu.Resolution(startEndFlags.resolution),
		MovementAmplitude: vidu.MovementAmplitude(startEndFlags.movement),
		Payload:           startEndFlags.payload,
		CallbackURL:       startEndFlags.callback,
	}
	if cmd.Flags().Changed("bgm") {
		req.BGM = &startEndFlags.bgm
	}

	return runSubmit(req)
}
