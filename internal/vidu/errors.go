package vidu

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrProtocol indicates the server sent a response this client does not
// understand, such as an unrecognized task state. Fatal, never retried.
var ErrProtocol = errors.New("vidu protocol violation")

// APIError is a failure explicitly reported by the Vidu API via a non-zero
// error code in the response envelope.
type APIError struct {
	Code    Code
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vidu API error (code %s): %s", e.Code, e.Message)
}

// newAPIError builds an APIError from the registry descriptor for code.
func newAPIError(code Code, details map[string]any) *APIError {
	return &APIError{
		Code:    code,
		Message: Describe(code).Message,
		Details: details,
	}
}

// TransportError is a network-level failure (connection refused, timeout,
// DNS) that occurred before any API response was received. Always eligible
// for caller-driven retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vidu transport error (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError indicates a response body that could not be decoded as JSON.
// Never retried: the same request would yield the same garbage.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vidu parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError is a local rejection of request parameters. It is raised
// before any network call and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TimeoutError is returned by Wait when the task does not reach a terminal
// state within the configured wall-clock timeout. The remote job keeps
// running; only the local wait gives up.
type TimeoutError struct {
	TaskID  string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("task %s did not complete within %s", e.TaskID, e.Timeout)
}

// envelope is the error portion of every API response.
type envelope struct {
	ErrorCode Code           `json:"error_code"`
	Details   map[string]any `json:"details"`
}

// CheckResponse inspects a decoded response body for a non-zero error code
// and returns the corresponding APIError. It is the single choke point
// through which every server-reported failure passes; no other code
// interprets raw error codes.
func CheckResponse(body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.ErrorCode == "" || env.ErrorCode == CodeSuccess {
		return nil
	}
	return newAPIError(env.ErrorCode, env.Details)
}

// IsRetryable reports whether the caller may retry the operation that
// produced err. Transport errors always qualify; API errors qualify only
// when their code is on the retryable allow-list.
func IsRetryable(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return true
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return Retryable(ae.Code)
	}
	return false
}

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return Describe(ae.Code).HTTPStatus == 404
	}
	return false
}

// IsAuthError reports whether err indicates an authentication or
// permission problem.
func IsAuthError(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		status := Describe(ae.Code).HTTPStatus
		return status == 401 || status == 403
	}
	return false
}

// IsRateLimited reports whether err indicates request-rate throttling.
func IsRateLimited(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return Describe(ae.Code).HTTPStatus == 429
	}
	return false
}

// IsValidation reports whether err is a local parameter rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
