package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var text2videoFlags struct {
	model       string
	style       string
	prompt      string
	duration    int
	seed        int
	aspectRatio string
	resolution  string
	movement    string
	bgm         bool
	payload     string
	callback    string
}

var text2videoCmd = &cobra.Command{
	Use:   "text2video",
	Short: "Generate a video from a text prompt",
	RunE:  runText2Video,
}

func init() {
	submitCmd.AddCommand(text2videoCmd)

	f := text2videoCmd.Flags()
	f.StringVar(&text2videoFlags.model, "model", string(vidu.ModelVidu15), "Model name (viduq1, vidu1.5)")
	f.StringVar(&text2videoFlags.style, "style", "general", "Style (general, anime)")
	f.StringVar(&text2videoFlags.prompt, "prompt", "", "Text prompt (required, max 1500 characters)")
	f.IntVar(&text2videoFlags.duration, "duration", 0, "Clip length in seconds (0 = model default)")
	f.IntVar(&text2videoFlags.seed, "seed", -1, "Random seed (-1 = service chooses)")
	f.StringVar(&text2videoFlags.aspectRatio, "aspect-ratio", "", "Aspect ratio (16:9, 9:16, 1:1)")
	f.StringVar(&text2videoFlags.resolution, "resolution", "", "Output resolution (360p, 720p, 1080p)")
	f.StringVar(&text2videoFlags.movement, "movement", "", "Movement amplitude (auto, small, medium, large)")
	f.BoolVar(&text2videoFlags.bgm, "bgm", false, "Add background music")
	f.StringVar(&text2videoFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&text2videoFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runText2Video(cmd *cobra.Command, args []string) error {
	req := &vidu.TextToVideoRequest{
		Model:             vidu.Model(text2videoFlags.model),
		Style:             text2videoFlags.style,
		Prompt:            text2videoFlags.prompt,
		Duration:          text2videoFlags.duration,
		Seed:              seedFlag(text2videoFlags.seed),
		AspectRatio:       vidu.AspectRatio(text2videoFlags.aspectRatio),
		Resolution:        vidu.Resolution(text2videoFlags.resolution),
		MovementAmplitude: vidu.MovementAmplitude(text2videoFlags.movement),
		Payload:           text2videoFlags.payload,
		CallbackURL:       text2videoFlags.callback,
	}
	if cmd.Flags().Changed("bgm") {
		req.BGM = &text2videoFlags.bgm
	}

	return runSubmit(req)
}
