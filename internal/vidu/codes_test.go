package vidu

import (
	"testing"
	"time"
)

func TestRegistry_Descriptors(t *testing.T) {
	validStatuses := map[int]bool{
		400: true, 401: true, 403: true, 404: true, 409: true,
		413: true, 415: true, 422: true, 429: true, 500: true,
	}

	for code, d := range registry {
		if d.Code != code {
			t.Errorf("descriptor for %s carries code %s", code, d.Code)
		}
		if d.Message == "" {
			t.Errorf("descriptor for %s has empty message", code)
		}
		if !validStatuses[d.HTTPStatus] {
			t.Errorf("descriptor for %s has unexpected HTTP status %d", code, d.HTTPStatus)
		}
		if d.BaseBackoff <= 0 {
			t.Errorf("descriptor for %s has non-positive base backoff %v", code, d.BaseBackoff)
		}
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeInternalServerError, true},
		{CodeServiceUnavailable, true},
		{CodeProcessingError, true},
		{CodeModelError, true},
		{CodeStorageError, true},
		{CodeTooManyRequests, true},
		{CodeRateLimitHit, true},
		{CodeInvalidParameter, false},
		{CodeInvalidAPIKey, false},
		{CodeQuotaExceeded, false},
		{CodeRateLimitExceeded, false}, // 403 quota, not a transient throttle
		{CodeTaskNotFound, false},
		{CodeTaskAlreadyCompleted, false},
		{CodeFileTooLarge, false},
		{Code("999999"), false},
	}

	for _, tt := range tests {
		if got := Retryable(tt.code); got != tt.want {
			t.Errorf("Retryable(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestDescribe_UnknownCode(t *testing.T) {
	d := Describe(Code("123456"))

	if d.Code != Code("123456") {
		t.Errorf("Code = %s, want 123456", d.Code)
	}
	if d.HTTPStatus != 500 {
		t.Errorf("HTTPStatus = %d, want 500", d.HTTPStatus)
	}
	if d.Retryable {
		t.Error("unknown codes must not be retryable")
	}
	if d.Message == "" {
		t.Error("unknown codes must still carry a message")
	}
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		attempt int
		want    time.Duration
	}{
		{"rate limit hit first attempt", CodeRateLimitHit, 1, 30 * time.Second},
		{"rate limit hit doubles", CodeRateLimitHit, 2, 60 * time.Second},
		{"too many requests first attempt", CodeTooManyRequests, 1, 60 * time.Second},
		{"too many requests caps at max", CodeTooManyRequests, 4, MaxBackoff},
		{"service unavailable base", CodeServiceUnavailable, 1, 5 * time.Second},
		{"server error base", CodeInternalServerError, 1, 2 * time.Second},
		{"server error doubles", CodeInternalServerError, 3, 8 * time.Second},
		{"unknown code default base", Code("999999"), 1, time.Second},
		{"deep attempt stays capped", CodeInternalServerError, 30, MaxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackoffDelay(tt.code, tt.attempt); got != tt.want {
				t.Errorf("BackoffDelay(%s, %d) = %v, want %v", tt.code, tt.attempt, got, tt.want)
			}
		})
	}
}

func TestBackoffDelay_Monotone(t *testing.T) {
	prev := time.Duration(0)
	for attempt := 1; attempt <= 12; attempt++ {
		delay := BackoffDelay(CodeInternalServerError, attempt)
		if delay < prev {
			t.Fatalf("delay decreased at attempt %d: %v < %v", attempt, delay, prev)
		}
		if delay > MaxBackoff {
			t.Fatalf("delay at attempt %d exceeds cap: %v", attempt, delay)
		}
		prev = delay
	}
}

func TestSuggestedAction(t *testing.T) {
	if got := SuggestedAction(CodeInvalidAPIKey); got != "check that the API key is correct" {
		t.Errorf("SuggestedAction(401001) = %q", got)
	}
	// Codes without a specific action fall back to the generic hint.
	if got := SuggestedAction(CodeInvalidParameter); got != "check the request parameters and retry" {
		t.Errorf("SuggestedAction(400) = %q", got)
	}
}
