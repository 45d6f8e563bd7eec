package vidu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// SubmitRequest is the closed set of task submission variants. Each variant
// knows its endpoint and its own parameter constraints; Validate runs
// before any network call and may fill defaults (the model's default
// duration when none is given).
type SubmitRequest interface {
	endpoint() string
	Validate() error
}

// Submit validates req locally and dispatches it, returning a Task handle
// in state created holding the server-issued id. Validation failures are
// ValidationErrors and never reach the network.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := c.dispatch(ctx, http.MethodPost, req.endpoint(), req)
	if err != nil {
		return nil, err
	}

	var created struct {
		TaskID string `json:"task_id"`
		State  State  `json:"state"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, &ParseError{Err: err}
	}
	if created.TaskID == "" {
		return nil, fmt.Errorf("%w: submission response missing task_id", ErrProtocol)
	}

	state := created.State
	if state == "" {
		state = StateCreated
	}
	if !state.known() {
		return nil, fmt.Errorf("%w: unknown task state %q", ErrProtocol, state)
	}

	return &Task{TaskID: created.TaskID, State: state}, nil
}

// validatePrompt checks a free-text prompt field against the shared length
// ceiling. Required prompts must be non-blank.
func validatePrompt(field, prompt string, required bool) error {
	if required && strings.TrimSpace(prompt) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(prompt) > MaxPromptLen {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must not exceed %d characters", MaxPromptLen)}
	}
	return nil
}

// validatePayload checks the opaque pass-through payload length.
func validatePayload(payload string) error {
	if len(payload) > MaxPayloadLen {
		return &ValidationError{Field: "payload", Reason: fmt.Sprintf("must not exceed %d characters", MaxPayloadLen)}
	}
	return nil
}

// ImageToVideoRequest animates a single source image.
type ImageToVideoRequest struct {
	Model             Model             `json:"model"`
	Images            []string          `json:"images"`
	Prompt            string            `json:"prompt,omitempty"`
	Duration          int               `json:"duration"`
	Seed              *int              `json:"seed,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               *bool             `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

func (r *ImageToVideoRequest) endpoint() string { return "/ent/v2/img2video" }

// Validate enforces the image-to-video constraints: exactly one image, the
// shared prompt/payload ceilings, and the image-to-video duration
// whitelist.
func (r *ImageToVideoRequest) Validate() error {
	if len(r.Images) != 1 {
		return &ValidationError{Field: "images", Reason: "must contain exactly 1 image"}
	}
	if err := validatePrompt("prompt", r.Prompt, false); err != nil {
		return err
	}
	if err := validatePayload(r.Payload); err != nil {
		return err
	}
	duration, err := resolveDuration(imageDurations, r.Model, r.Duration)
	if err != nil {
		return err
	}
	r.Duration = duration
	return nil
}

// ReferenceToVideoRequest generates a video guided by 1-7 reference images.
type ReferenceToVideoRequest struct {
	Model             Model             `json:"model"`
	Images            []string          `json:"images"`
	Prompt            string            `json:"prompt"`
	Duration          int               `json:"duration"`
	Seed              *int              `json:"seed,omitempty"`
	AspectRatio       AspectRatio       `json:"aspect_ratio,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               *bool             `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

func (r *ReferenceToVideoRequest) endpoint() string { return "/ent/v2/reference2video" }

func (r *ReferenceToVideoRequest) Validate() error {
	if len(r.Images) < 1 || len(r.Images) > 7 {
		return &ValidationError{Field: "images", Reason: "must contain 1 to 7 images"}
	}
	if err := validatePrompt("prompt", r.Prompt, true); err != nil {
		return err
	}
	if err := validatePayload(r.Payload); err != nil {
		return err
	}
	duration, err := resolveDuration(referenceDurations, r.Model, r.Duration)
	if err != nil {
		return err
	}
	r.Duration = duration
	return nil
}

// StartEndToVideoRequest interpolates between a start frame and an end
// frame.
type StartEndToVideoRequest struct {
	Model             Model             `json:"model"`
	Images            []string          `json:"images"`
	Prompt            string            `json:"prompt,omitempty"`
	Duration          int               `json:"duration"`
	Seed              *int              `json:"seed,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               *bool             `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

func (r *StartEndToVideoRequest) endpoint() string { return "/ent/v2/start-end2video" }

func (r *StartEndToVideoRequest) Validate() error {
	if len(r.Images) != 2 {
		return &ValidationError{Field: "images", Reason: "must contain exactly 2 images (start and end frame)"}
	}
	if err := validatePrompt("prompt", r.Prompt, false); err != nil {
		return err
	}
	if err := validatePayload(r.Payload); err != nil {
		return err
	}
	duration, err := resolveDuration(startEndDurations, r.Model, r.Duration)
	if err != nil {
		return err
	}
	r.Duration = duration
	return nil
}

// TextToVideoRequest generates a video from a text prompt alone.
type TextToVideoRequest struct {
	Model             Model             `json:"model"`
	Style             string            `json:"style"`
	Prompt            string            `json:"prompt"`
	Duration          int               `json:"duration"`
	Seed              *int              `json:"seed,omitempty"`
	AspectRatio       AspectRatio       `json:"aspect_ratio,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               *bool             `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

func (r *TextToVideoRequest) endpoint() string { return "/ent/v2/text2video" }

func (r *TextToVideoRequest) Validate() error {
	if err := validatePrompt("prompt", r.Prompt, true); err != nil {
		return err
	}
	if r.Style != "general" && r.Style != "anime" {
		return &ValidationError{Field: "style", Reason: `must be "general" or "anime"`}
	}
	if err := validatePayload(r.Payload); err != nil {
		return err
	}
	duration, err := resolveDuration(textDurations, r.Model, r.Duration)
	if err != nil {
		return err
	}
	r.Duration = duration
	return nil
}

// LipSyncRequest re-voices a video, driven either by an audio file or by
// synthesized speech from text.
type LipSyncRequest struct {
	VideoURL    string   `json:"video_url"`
	AudioURL    string   `json:"audio_url,omitempty"`
	Text        string   `json:"text,omitempty"`
	Speed       *float64 `json:"speed,omitempty"`
	CharacterID string   `json:"character_id,omitempty"`
	Volume      *int     `json:"volume,omitempty"`
	Language    string   `json:"language,omitempty"`
	Payload     string   `json:"payload,omitempty"`
	CallbackURL string   `json:"callback_url,omitempty"`
}

func (r *LipSyncRequest) endpoint() string { return "/ent/v2/lip-sync" }

func (r *LipSyncRequest) Validate() error {
	if r.VideoURL == "" {
		return &ValidationError{Field: "video_url", Reason: "is required"}
	}
	if r.AudioURL == "" && r.Text == "" {
		return &ValidationError{Field: "audio_url", Reason: "either audio_url or text must be provided"}
	}
	if r.Text != "" && (len(r.Text) < 4 || len(r.Text) > 2000) {
		return &ValidationError{Field: "text", Reason: "length must be between 4 and 2000 characters"}
	}
	if r.Speed != nil && (*r.Speed < 0.5 || *r.Speed > 1.5) {
		return &ValidationError{Field: "speed", Reason: "must be between 0.5 and 1.5"}
	}
	if r.Volume != nil && (*r.Volume < 0 || *r.Volume > 10) {
		return &ValidationError{Field: "volume", Reason: "must be between 0 and 10"}
	}
	return validatePayload(r.Payload)
}

// TextToAudioRequest generates an audio clip from a text prompt.
type TextToAudioRequest struct {
	Model       AudioModel `json:"model"`
	Prompt      string     `json:"prompt"`
	Duration    float64    `json:"duration,omitempty"`
	Seed        *int       `json:"seed,omitempty"`
	Payload     string     `json:"payload,omitempty"`
	CallbackURL string     `json:"callback_url,omitempty"`
}

func (r *TextToAudioRequest) endpoint() string { return "/ent/v2/text2audio" }

func (r *TextToAudioRequest) Validate() error {
	if err := validatePrompt("prompt", r.Prompt, true); err != nil {
		return err
	}
	if r.Duration != 0 && (r.Duration < 2 || r.Duration > 10) {
		return &ValidationError{Field: "duration", Reason: "must be between 2 and 10 seconds"}
	}
	return validatePayload(r.Payload)
}

// TimingPrompt is one timed sound event for controllable audio generation.
// Events may overlap.
type TimingPrompt struct {
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Prompt string  `json:"prompt"`
}

// TimingToAudioRequest generates audio from a timeline of sound events.
type TimingToAudioRequest struct {
	Model         AudioModel     `json:"model"`
	TimingPrompts []TimingPrompt `json:"timing_prompts"`
	Duration      float64        `json:"duration,omitempty"`
	Seed          *int           `json:"seed,omitempty"`
	Payload       string         `json:"payload,omitempty"`
	CallbackURL   string         `json:"callback_url,omitempty"`
}

func (r *TimingToAudioRequest) endpoint() string { return "/ent/v2/timing2audio" }

func (r *TimingToAudioRequest) Validate() error {
	if len(r.TimingPrompts) == 0 {
		return &ValidationError{Field: "timing_prompts", Reason: "must not be empty"}
	}
	if r.Duration != 0 && (r.Duration < 2 || r.Duration > 10) {
		return &ValidationError{Field: "duration", Reason: "must be between 2 and 10 seconds"}
	}

	// Events are checked against the effective clip length.
	clip := r.Duration
	if clip == 0 {
		clip = 10
	}
	for i, event := range r.TimingPrompts {
		field := fmt.Sprintf("timing_prompts[%d]", i)
		if event.From < 0 || event.To > clip {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("time range must lie within [0, %g]", clip)}
		}
		if event.From >= event.To {
			return &ValidationError{Field: field, Reason: "from must be less than to"}
		}
		if len(event.Prompt) > MaxPromptLen {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("prompt must not exceed %d characters", MaxPromptLen)}
		}
	}
	return validatePayload(r.Payload)
}

// UpscaleProRequest upscales an existing video, referenced either by URL or
// by the creation id of an earlier Vidu task.
type UpscaleProRequest struct {
	VideoURL          string `json:"video_url,omitempty"`
	VideoCreationID   string `json:"video_creation_id,omitempty"`
	UpscaleResolution string `json:"upscale_resolution,omitempty"`
	Payload           string `json:"payload,omitempty"`
	CallbackURL       string `json:"callback_url,omitempty"`
}

func (r *UpscaleProRequest) endpoint() string { return "/ent/v2/upscale-new" }

func (r *UpscaleProRequest) Validate() error {
	if r.VideoURL == "" && r.VideoCreationID == "" {
		return &ValidationError{Field: "video_url", Reason: "either video_url or video_creation_id must be provided"}
	}
	switch r.UpscaleResolution {
	case "", "1080p", "2K", "4K", "8K":
	default:
		return &ValidationError{Field: "upscale_resolution", Reason: "must be one of 1080p, 2K, 4K, 8K"}
	}
	return validatePayload(r.Payload)
}
