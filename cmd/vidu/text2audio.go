package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var text2audioFlags struct {
	model    string
	prompt   string
	duration float64
	seed     int
	payload  string
	callback string
}

var text2audioCmd = &cobra.Command{
	Use:   "text2audio",
	Short: "Generate an audio clip from a text prompt",
	RunE:  runText2Audio,
}

func init() {
	submitCmd.AddCommand(text2audioCmd)

	f := text2audioCmd.Flags()
	f.StringVar(&text2audioFlags.model, "model", string(vidu.AudioModel1), "Audio model name")
	f.StringVar(&text2audioFlags.prompt, "prompt", "", "Text prompt (required, max 1500 characters)")
	f.Float64Var(&text2audioFlags.duration, "duration", 0, "Clip length in seconds (2-10, 0 = service default)")
	f.IntVar(&text2audioFlags.seed, "seed", -1, "Random seed (-1 = service chooses)")
	f.StringVar(&text2audioFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&text2audioFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runText2Audio(cmd *cobra.Command, args []string) error {
	req := &vidu.TextToAudioRequest{
		Model:       vidu.AudioModel(text2audioFlags.model),
		Prompt:      text2audioFlags.prompt,
		Duration:    text2audioFlags.duration,
		Seed:        seedFlag(text2audioFlags.seed),
		Payload:     text2audioFlags.payload,
		CallbackURL: text2audioFlags.callback,
	}

	return runSubmit(req)
}
