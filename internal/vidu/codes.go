// Package vidu implements a client for the Vidu generative-media API:
// request dispatch, error classification, the asynchronous task lifecycle,
// and artifact download.
package vidu

import (
	"fmt"
	"time"
)

// Code is a wire-level error code reported by the Vidu API. Codes are
// opaque numeric strings namespaced by HTTP status family.
type Code string

// Error codes returned by the API, grouped by family.
const (
	// CodeSuccess is the error_code value of a successful response.
	CodeSuccess Code = "0"

	// Parameter errors (400)
	CodeInvalidParameter         Code = "400"
	CodeMissingRequiredParameter Code = "400001"
	CodeInvalidModel             Code = "400002"
	CodeInvalidImageFormat       Code = "400003"
	CodeInvalidImageSize         Code = "400004"
	CodeInvalidImageRatio        Code = "400005"
	CodeInvalidPromptLength      Code = "400006"
	CodeInvalidDuration          Code = "400007"
	CodeInvalidResolution        Code = "400008"
	CodeInvalidAspectRatio       Code = "400009"
	CodeInvalidMovementAmplitude Code = "400010"
	CodeInvalidSeed              Code = "400011"
	CodeInvalidPayloadLength     Code = "400012"
	CodeInvalidCallbackURL       Code = "400013"
	CodeInvalidVideoURL          Code = "400014"
	CodeInvalidAudioURL          Code = "400015"
	CodeInvalidVoiceID           Code = "400016"
	CodeInvalidTimingParameters  Code = "400017"

	// Authentication errors (401)
	CodeUnauthorized  Code = "401"
	CodeInvalidAPIKey Code = "401001"
	CodeAPIKeyExpired Code = "401002"
	CodeInvalidToken  Code = "401003"

	// Permission errors (403)
	CodeForbidden               Code = "403"
	CodeInsufficientPermissions Code = "403001"
	CodeAccountSuspended        Code = "403002"
	CodeRateLimitExceeded       Code = "403003"
	CodeQuotaExceeded           Code = "403004"

	// Resource errors (404)
	CodeNotFound      Code = "404"
	CodeTaskNotFound  Code = "404001"
	CodeModelNotFound Code = "404002"
	CodeVoiceNotFound Code = "404003"

	// Request rate errors (429)
	CodeTooManyRequests Code = "429"
	CodeRateLimitHit    Code = "429001"

	// Server errors (500)
	CodeInternalServerError Code = "500"
	CodeServiceUnavailable  Code = "500001"
	CodeProcessingError     Code = "500002"
	CodeModelError          Code = "500003"
	CodeStorageError        Code = "500004"

	// Task state conflicts (409)
	CodeTaskAlreadyCompleted Code = "409001"
	CodeTaskAlreadyCancelled Code = "409002"
	CodeTaskInProgress       Code = "409003"

	// File errors
	CodeFileTooLarge          Code = "413001"
	CodeUnsupportedFileFormat Code = "415001"
	CodeFileCorrupted         Code = "422001"
)

// Descriptor holds the static semantics of one error code: its message,
// HTTP status, retry policy, and suggested remediation.
type Descriptor struct {
	Code        Code          `json:"code"`
	Message     string        `json:"message"`
	HTTPStatus  int           `json:"http_status"`
	Retryable   bool          `json:"retryable"`
	BaseBackoff time.Duration `json:"base_backoff"`
	Action      string        `json:"action,omitempty"`
}

// MaxBackoff caps the delay returned by BackoffDelay.
const MaxBackoff = 300 * time.Second

// registry is the immutable code-to-descriptor table, built once at
// startup. All classification of server-reported errors goes through it.
var registry = map[Code]Descriptor{
	CodeInvalidParameter:         {Message: "invalid request parameter", HTTPStatus: 400},
	CodeMissingRequiredParameter: {Message: "missing required parameter", HTTPStatus: 400},
	CodeInvalidModel:             {Message: "invalid model name", HTTPStatus: 400},
	CodeInvalidImageFormat:       {Message: "invalid image format", HTTPStatus: 400},
	CodeInvalidImageSize:         {Message: "image size exceeds limit", HTTPStatus: 400, Action: "ensure the image is no larger than 50MB"},
	CodeInvalidImageRatio:        {Message: "image aspect ratio out of range", HTTPStatus: 400, Action: "ensure the image ratio is between 1:4 and 4:1"},
	CodeInvalidPromptLength:      {Message: "prompt length exceeds limit", HTTPStatus: 400, Action: "shorten the prompt to at most 1500 characters"},
	CodeInvalidDuration:          {Message: "invalid video duration", HTTPStatus: 400},
	CodeInvalidResolution:        {Message: "invalid resolution", HTTPStatus: 400},
	CodeInvalidAspectRatio:       {Message: "invalid aspect ratio", HTTPStatus: 400},
	CodeInvalidMovementAmplitude: {Message: "invalid movement amplitude", HTTPStatus: 400},
	CodeInvalidSeed:              {Message: "invalid random seed", HTTPStatus: 400},
	CodeInvalidPayloadLength:     {Message: "payload length exceeds limit", HTTPStatus: 400, Action: "shorten the payload to at most 1048576 characters"},
	CodeInvalidCallbackURL:       {Message: "invalid callback URL", HTTPStatus: 400},
	CodeInvalidVideoURL:          {Message: "invalid video URL", HTTPStatus: 400},
	CodeInvalidAudioURL:          {Message: "invalid audio URL", HTTPStatus: 400},
	CodeInvalidVoiceID:           {Message: "invalid voice ID", HTTPStatus: 400},
	CodeInvalidTimingParameters:  {Message: "invalid timing parameters", HTTPStatus: 400},

	CodeUnauthorized:  {Message: "authentication failed", HTTPStatus: 401},
	CodeInvalidAPIKey: {Message: "invalid API key", HTTPStatus: 401, Action: "check that the API key is correct"},
	CodeAPIKeyExpired: {Message: "API key expired", HTTPStatus: 401, Action: "rotate the API key"},
	CodeInvalidToken:  {Message: "invalid access token", HTTPStatus: 401},

	CodeForbidden:               {Message: "permission denied", HTTPStatus: 403},
	CodeInsufficientPermissions: {Message: "insufficient permissions", HTTPStatus: 403},
	CodeAccountSuspended:        {Message: "account suspended", HTTPStatus: 403},
	CodeRateLimitExceeded:       {Message: "request rate limit exceeded", HTTPStatus: 403, Action: "reduce the request rate"},
	CodeQuotaExceeded:           {Message: "quota exhausted", HTTPStatus: 403, Action: "upgrade the account or wait for the quota to reset"},

	CodeNotFound:      {Message: "resource not found", HTTPStatus: 404},
	CodeTaskNotFound:  {Message: "task not found", HTTPStatus: 404, Action: "check that the task ID is correct"},
	CodeModelNotFound: {Message: "model not found", HTTPStatus: 404, Action: "check that the model name is correct"},
	CodeVoiceNotFound: {Message: "voice not found", HTTPStatus: 404, Action: "check that the voice ID is correct"},

	CodeTooManyRequests: {Message: "too many requests", HTTPStatus: 429, Retryable: true, BaseBackoff: 60 * time.Second},
	CodeRateLimitHit:    {Message: "request rate limit hit", HTTPStatus: 429, Retryable: true, BaseBackoff: 30 * time.Second},

	CodeInternalServerError: {Message: "internal server error", HTTPStatus: 500, Retryable: true, BaseBackoff: 2 * time.Second, Action: "retry later; contact support if the problem persists"},
	CodeServiceUnavailable:  {Message: "service unavailable", HTTPStatus: 500, Retryable: true, BaseBackoff: 5 * time.Second, Action: "retry later"},
	CodeProcessingError:     {Message: "error during processing", HTTPStatus: 500, Retryable: true, BaseBackoff: 2 * time.Second},
	CodeModelError:          {Message: "model processing error", HTTPStatus: 500, Retryable: true, BaseBackoff: 2 * time.Second},
	CodeStorageError:        {Message: "storage error", HTTPStatus: 500, Retryable: true, BaseBackoff: 2 * time.Second},

	CodeTaskAlreadyCompleted: {Message: "task already completed", HTTPStatus: 409},
	CodeTaskAlreadyCancelled: {Message: "task already cancelled", HTTPStatus: 409},
	CodeTaskInProgress:       {Message: "task is in progress", HTTPStatus: 409},

	CodeFileTooLarge:          {Message: "file too large", HTTPStatus: 413, Action: "compress the file or use a smaller one"},
	CodeUnsupportedFileFormat: {Message: "unsupported file format", HTTPStatus: 415, Action: "use a supported image format (png, jpeg, jpg, webp)"},
	CodeFileCorrupted:         {Message: "file corrupted", HTTPStatus: 422},
}

func init() {
	for code, d := range registry {
		d.Code = code
		if d.BaseBackoff == 0 {
			d.BaseBackoff = time.Second
		}
		registry[code] = d
	}
}

// Describe returns the descriptor for a code. It is total: unknown codes
// yield a generic non-retryable descriptor with HTTP status 500.
func Describe(code Code) Descriptor {
	if d, ok := registry[code]; ok {
		return d
	}
	return Descriptor{
		Code:        code,
		Message:     fmt.Sprintf("unknown error: %s", code),
		HTTPStatus:  500,
		BaseBackoff: time.Second,
		Action:      "check the request parameters and retry",
	}
}

// Retryable reports whether re-issuing a request that failed with this code
// may succeed without caller intervention. Only transient server errors and
// request-rate errors qualify; parameter, auth, not-found, conflict, and
// file errors are permanent.
func Retryable(code Code) bool {
	return Describe(code).Retryable
}

// BackoffDelay returns the suggested delay before retry attempt n for a
// code. attempt is 1-indexed; attempt 1 yields the code's base backoff.
// The delay doubles per attempt and never exceeds MaxBackoff.
func BackoffDelay(code Code, attempt int) time.Duration {
	delay := Describe(code).BaseBackoff
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= MaxBackoff {
			return MaxBackoff
		}
	}
	if delay > MaxBackoff {
		return MaxBackoff
	}
	return delay
}

// SuggestedAction returns the remediation hint for a code, falling back to
// a generic hint when the registry has none.
func SuggestedAction(code Code) string {
	if action := Describe(code).Action; action != "" {
		return action
	}
	return "check the request parameters and retry"
}
