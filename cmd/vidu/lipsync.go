package main

import (
	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var lipSyncFlags struct {
	videoURL  string
	audioURL  string
	text      string
	speed     float64
	character string
	volume    int
	language  string
	payload   string
	callback  string
}

var lipSyncCmd = &cobra.Command{
	Use:   "lipsync",
	Short: "Re-voice a video from audio or synthesized speech",
	Long: `Create a lip-sync task for a video. Provide either --audio-url (audio
drive) or --text with an optional --character voice (text drive).

Run "vidu voices" to list available voice characters.`,
	RunE: runLipSync,
}

func init() {
	submitCmd.AddCommand(lipSyncCmd)

	f := lipSyncCmd.Flags()
	f.StringVar(&lipSyncFlags.videoURL, "video-url", "", "Video URL (required)")
	f.StringVar(&lipSyncFlags.audioURL, "audio-url", "", "Audio URL (audio-drive mode)")
	f.StringVar(&lipSyncFlags.text, "text", "", "Speech text (text-drive mode, 4-2000 characters)")
	f.Float64Var(&lipSyncFlags.speed, "speed", 0, "Speech speed (0.5-1.5, 0 = service default)")
	f.StringVar(&lipSyncFlags.character, "character", "", "Voice character id (text-drive mode)")
	f.IntVar(&lipSyncFlags.volume, "volume", -1, "Volume (0-10, -1 = service default)")
	f.StringVar(&lipSyncFlags.language, "language", "", "Speech language (text-drive mode)")
	f.StringVar(&lipSyncFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&lipSyncFlags.callback, "callback-url", "", "Callback URL for task updates")
}

func runLipSync(cmd *cobra.Command, args []string) error {
	req := &vidu.LipSyncRequest{
		VideoURL:    lipSyncFlags.videoURL,
		AudioURL:    lipSyncFlags.audioURL,
		Text:        lipSyncFlags.text,
		CharacterID: lipSyncFlags.character,
		Language:    lipSyncFlags.language,
		Payload:     lipSyncFlags.payload,
		CallbackURL: lipSyncFlags.callback,
	}
	if cmd.Flags().Changed("speed") {
		req.Speed = &lipSyncFlags.speed
	}
	if lipSyncFlags.volume >= 0 {
		req.Volume = &lipSyncFlags.volume
	}

	return runSubmit(req)
}
