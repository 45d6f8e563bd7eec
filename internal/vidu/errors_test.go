package vidu

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode Code
	}{
		{"no error code", `{"task_id": "abc"}`, ""},
		{"explicit success", `{"error_code": "0"}`, ""},
		{"rate limit", `{"error_code": "429001"}`, CodeRateLimitHit},
		{"auth failure", `{"error_code": "401001"}`, CodeInvalidAPIKey},
		{"unknown code", `{"error_code": "777777"}`, Code("777777")},
		{"not even json", `garbage`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResponse([]byte(tt.body))
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("CheckResponse() = %v, want nil", err)
				}
				return
			}

			var ae *APIError
			if !errors.As(err, &ae) {
				t.Fatalf("CheckResponse() = %v, want *APIError", err)
			}
			if ae.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", ae.Code, tt.wantCode)
			}
			if ae.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}

func TestCheckResponse_Details(t *testing.T) {
	err := CheckResponse([]byte(`{"error_code": "400007", "details": {"field": "duration"}}`))

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("CheckResponse() = %v, want *APIError", err)
	}
	if ae.Details["field"] != "duration" {
		t.Errorf("Details[field] = %v, want duration", ae.Details["field"])
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport error", &TransportError{Op: "POST /x", Err: errors.New("connection refused")}, true},
		{"retryable api error", newAPIError(CodeRateLimitHit, nil), true},
		{"server error", newAPIError(CodeInternalServerError, nil), true},
		{"parameter error", newAPIError(CodeInvalidDuration, nil), false},
		{"parse error", &ParseError{Err: errors.New("bad json")}, false},
		{"validation error", &ValidationError{Field: "images", Reason: "empty"}, false},
		{"plain error", errors.New("whatever"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := newAPIError(CodeTaskNotFound, nil)
	auth := newAPIError(CodeInvalidAPIKey, nil)
	forbidden := newAPIError(CodeQuotaExceeded, nil)
	throttled := newAPIError(CodeTooManyRequests, nil)
	validation := &ValidationError{Field: "prompt", Reason: "too long"}

	if !IsNotFound(notFound) || IsNotFound(auth) {
		t.Error("IsNotFound misclassified")
	}
	if !IsAuthError(auth) || !IsAuthError(forbidden) || IsAuthError(notFound) {
		t.Error("IsAuthError misclassified")
	}
	if !IsRateLimited(throttled) || IsRateLimited(forbidden) {
		t.Error("IsRateLimited misclassified")
	}
	if !IsValidation(validation) || IsValidation(notFound) {
		t.Error("IsValidation misclassified")
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: timeout")
	err := &TransportError{Op: "GET /ent/v2/tasks/x/creations", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "GET /ent/v2/tasks/x/creations") {
		t.Errorf("Error() = %q, missing operation", err.Error())
	}
}

func TestTimeoutError_Message(t *testing.T) {
	err := &TimeoutError{TaskID: "task-1", Timeout: 90 * time.Second}
	if !strings.Contains(err.Error(), "task-1") || !strings.Contains(err.Error(), "1m30s") {
		t.Errorf("Error() = %q", err.Error())
	}
}
