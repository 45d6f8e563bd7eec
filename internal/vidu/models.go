package vidu

import "fmt"

// Model identifies a Vidu video generation model.
type Model string

const (
	ModelViduQ1        Model = "viduq1"
	ModelViduQ1Classic Model = "viduq1-classic"
	ModelVidu2         Model = "vidu2.0"
	ModelVidu15        Model = "vidu1.5"
)

// AudioModel identifies a Vidu audio generation model.
type AudioModel string

const (
	AudioModel1 AudioModel = "audio1.0"
)

// Resolution is an output video resolution.
type Resolution string

const (
	Resolution360p  Resolution = "360p"
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
)

// AspectRatio is an output aspect ratio.
type AspectRatio string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio1x1  AspectRatio = "1:1"
)

// MovementAmplitude controls how much motion the model generates.
type MovementAmplitude string

const (
	MovementAuto   MovementAmplitude = "auto"
	MovementSmall  MovementAmplitude = "small"
	MovementMedium MovementAmplitude = "medium"
	MovementLarge  MovementAmplitude = "large"
)

// Cross-cutting parameter limits enforced before any network call.
const (
	MaxPromptLen  = 1500
	MaxPayloadLen = 1048576
)

// Duration whitelists per operation family. The service enforces different
// limits per family, so an out-of-whitelist duration is rejected locally
// instead of burning a round trip.
var (
	imageDurations = map[Model][]int{
		ModelViduQ1:        {5},
		ModelViduQ1Classic: {5},
		ModelVidu2:         {4, 8},
		ModelVidu15:        {4, 8},
	}

	referenceDurations = map[Model][]int{
		ModelViduQ1:        {5},
		ModelViduQ1Classic: {5},
		ModelVidu2:         {4},
		ModelVidu15:        {4, 8},
	}

	startEndDurations = map[Model][]int{
		ModelViduQ1:        {5},
		ModelViduQ1Classic: {5},
		ModelVidu2:         {4, 8},
		ModelVidu15:        {4, 8},
	}

	textDurations = map[Model][]int{
		ModelViduQ1: {5},
		ModelVidu15: {4, 8},
	}

	defaultDurations = map[Model]int{
		ModelViduQ1:        5,
		ModelViduQ1Classic: 5,
		ModelVidu2:         4,
		ModelVidu15:        4,
	}
)

// resolveDuration validates duration against one operation family's
// whitelist, substituting the model default when duration is zero.
func resolveDuration(table map[Model][]int, model Model, duration int) (int, error) {
	allowed, ok := table[model]
	if !ok {
		return 0, &ValidationError{Field: "model", Reason: fmt.Sprintf("unsupported model %q", model)}
	}
	if duration == 0 {
		return defaultDurations[model], nil
	}
	for _, d := range allowed {
		if d == duration {
			return duration, nil
		}
	}
	return 0, &ValidationError{
		Field:  "duration",
		Reason: fmt.Sprintf("model %s does not support %d second clips (supported: %v)", model, duration, allowed),
	}
}
