package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var img2videoFlags struct {
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

var img2videoCmd = &cobra.Command{
	Use:   "img2video",
	Short: "Animate a single source image",
	Long: `Create an image-to-video task from exactly one source image.

The image may be a URL or a local file path; local files are inlined as
base64 data URIs.

Example:
  vidu submit img2video --image cat.png --prompt "the cat stretches" --model vidu2.0 --duration 4 --download`,
	RunE: runImg2Video,
}

func init() {
	submitCmd.AddCommand(img2videoCmd)

	f := img2videoCmd.Flags()
	f.StringVar(&img2videoFlags.model, "model", string(vidu.ModelVidu2), "Model name (viduq1, viduq1-classic, vidu2.0, vidu1.5)")
	f.StringArrayVar(&img2videoFlags.images, "image", nil, "Source image (URL or local file); exactly one required")
	f.StringVar(&img2videoFlags.prompt, "prompt", "", "Text prompt (max 1500 characters)")
	f.IntVar(&img2videoFlags.duration, "duration", 0, "Clip length in seconds (0 = model default)")
	f.IntVar(&img2videoFlags.seed, "seed", -1, "Random seed (-1 = service chooses)")
	f.StringVar(&img2videoFlags.resolution, "resolution", "", "Output resolution (360p, 720p, 1080p)")
	f.StringVar(&img2videoFlags.movement, "movement", "", "Movement amplitude (auto, small, medium, large)")
	f.BoolVar(&img2videoFlags.bgm, "bgm", false, "Add background music")
	f.StringVar(&img2videoFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&img2videoFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runImg2Video(cmd *cobra.Command, args []string) error {
	images, err := resolveImages(img2videoFlags.images)
	if err != nil {
		exitWithError(err)
	}

	req := &vidu.ImageToVideoRequest{
		Model:             vidu.Model(img2videoFlags.model),
		Images:            images,
		Prompt:            img2videoFlags.prompt,
		Duration:          img2videoFlags.duration,
		Seed:              seedFlag(img2videoFlags.seed),
		Resolution:        vidu.Resolution(img2videoFlags.resolution),
		MovementAmplitude: vidu.MovementAmplitude(img2videoFlags.movement),
		Payload:           img2videoFlags.payload,
		CallbackURL:       img2videoFlags.callback,
	}
	if cmd.Flags().Changed("bgm") {
		req.BGM = &img2videoFlags.bgm
	}

	return runSubmit(req)
}
