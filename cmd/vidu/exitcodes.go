package main

import (
	"errors"

	"github.com/genmedia/vidu/internal/vidu"
)

// Exit codes.
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError     = 2 // Configuration error (missing API key, bad config file)
	ExitValidationError = 3 // Parameters rejected locally before any network call
	ExitAPIError        = 4 // The API reported an error code
	ExitTimeout         = 5 // Task did not reach a terminal state in time
)

// exitCodeFor maps a client error to a CLI exit code.
func exitCodeFor(err error) int {
	var te *vidu.TimeoutError
	if errors.As(err, &te) {
		return ExitTimeout
	}
	if vidu.IsValidation(err) {
		return ExitValidationError
	}
	var ae *vidu.APIError
	if errors.As(err, &ae) {
		return ExitAPIError
	}
	return ExitError
}
