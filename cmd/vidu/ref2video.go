package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var ref2videoFlags struct {
	model       string
	images      []string
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

var ref2videoCmd = &cobra.Command{
	Use:   "ref2video",
	Short: "Generate a video guided by reference images",
	Long: `Create a reference-to-video task from 1 to 7 reference images and a
required prompt.`,
	RunE: runRef2Video,
}

func init() {
	submitCmd.AddCommand(ref2videoCmd)

	f := ref2videoCmd.Flags()
	f.StringVar(&ref2videoFlags.model, "model", string(vidu.ModelVidu2), "Model name (viduq1, viduq1-classic, vidu2.0, vidu1.5)")
	f.StringArrayVar(&ref2videoFlags.images, "image", nil, "Reference image (URL or local file); repeat for up to 7")
	f.StringVar(&ref2videoFlags.prompt, "prompt", "", "Text prompt (required, max 1500 characters)")
	f.IntVar(&ref2videoFlags.duration, "duration", 0, "Clip length in seconds (0 = model default)")
	f.IntVar(&ref2videoFlags.seed, "seed", -1, "Random seed (-1 = service chooses)")
	f.StringVar(&ref2videoFlags.aspectRatio, "aspect-ratio", "", "Aspect ratio (16:9, 9:16, 1:1)")
	f.StringVar(&ref2videoFlags.resolution, "resolution", "", "Output resolution (360p, 720p, 1080p)")
	f.StringVar(&ref2videoFlags.movement, "movement", "", "Movement amplitude (auto, small, medium, large)")
	f.BoolVar(&ref2videoFlags.bgm, "bgm", false, "Add background music")
	f.StringVar(&ref2videoFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&ref2videoFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runRef2Video(cmd *cobra.Command, args []string) error {
	images, err := resolveImages(ref2videoFlags.images)
	if err != nil {
		exitWithError(err)
	}

	req := &vidu.ReferenceToVideoRequest{
		Model:             vidu.Model(ref2videoFlags.model),
		Images:            images,
		Prompt:            ref2videoFlags.prompt,
		Duration:          ref2videoFlags.duration,
		Seed:              seedFlag(ref2videoFlags.seed),
		AspectRatio:       vidu.AspectRatio(ref2videoFlags.aspectRatio),
		Resolution:        vidu.Resolution(ref2videoFlags.resolution),
		MovementAmplitude: vidu.MovementAmplitude(ref2videoFlags.movement),
		Payload:           ref2videoFlags.payload,
		CallbackURL:       ref2videoFlags.callback,
	}
	if cmd.Flags().Changed("bgm") {
		req.BGM = &ref2videoFlags.bgm
	}

	return runSubmit(req)
}
