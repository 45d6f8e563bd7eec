package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/genmedia/vidu/internal/vidu"
	"github.com/spf13/cobra"
)

var timing2audioFlags struct {
	model    string
	events   []string
	duration float64
	seed     int
	payload  string
	callback string
}

var timing2audioCmd = &cobra.Command{
	Use:   "timing2audio",
	Short: "Generate audio from a timeline of sound events",
	Long: `Create a controllable audio task from timed sound events. Each --event
takes the form FROM:TO:PROMPT in seconds; events may overlap.

Example:
  vidu submit timing2audio --duration 6 --event "0:3:rain on a tin roof" --event "2:6:distant thunder"`,
	RunE: runTiming2Audio,
}

func init() {
	submitCmd.AddCommand(timing2audioCmd)

	f := timing2audioCmd.Flags()
	f.StringVar(&timing2audioFlags.model, "model", string(vidu.AudioModel1), "Audio model name")
	f.StringArrayVar(&timing2audioFlags.events, "event", nil, "Timed event as FROM:TO:PROMPT; repeatable")
	f.Float64Var(&timing2audioFlags.duration, "duration", 0, "Clip length in seconds (2-10, 0 = service default)")
	f.IntVar(&timing2audioFlags.seed, "seed", -1, "Random seed (-1 = service chooses)")
	f.StringVar(&timing2audioFlags.payload, "payload", "", "Opaque pass-through payload")
	f.StringVar(&timing2audioFlags.callback, "callback-url", "", "Callback URL for task updates")
}

// parseTimingEvent parses a FROM:TO:PROMPT event flag.
func parseTimingEvent(raw string) (vidu.TimingPrompt, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return vidu.TimingPrompt{}, fmt.Errorf("malformed event %q (expected FROM:TO:PROMPT)", raw)
	}
	from, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return vidu.TimingPrompt{}, fmt.Errorf("malformed event start %q: %w", parts[0], err)
	}
	to, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return vidu.TimingPrompt{}, fmt.Errorf("malformed event end %q: %w", parts[1], err)
	}
	return vidu.TimingPrompt{From: from, To: to, Prompt: parts[2]}, nil
}

func runTiming2Audio(cmd *cobra.Command, args []string) error {
	events := make([]vidu.TimingPrompt, 0, len(timing2audioFlags.events))
	for _, raw := range timing2audioFlags.events {
		event, err := parseTimingEvent(raw)
		if err != nil {
			exitWithError(err)
		}
		events = append(events, event)
	}

	req := &vidu.TimingToAudioRequest{
		Model:         vidu.AudioModel(timing2audioFlags.model),
		TimingPrompts: events,
		Duration:      timing2audioFlags.duration,
		Seed:          seedFlag(timing2audioFlags.seed),
		Payload:       timing2audioFlags.payload,
		CallbackURL:   timing2audioFlags.callback,
	}

	return runSubmit(req)
}
