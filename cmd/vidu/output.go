package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/genmedia/vidu/internal/vidu"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits with a code derived from the error kind.
func exitWithError(err error) {
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	} else {
		resp := ErrorResponse{Error: err.Error()}
		var ae *vidu.APIError
		if errors.As(err, &ae) {
			resp.Code = string(ae.Code)
			resp.Retryable = vidu.IsRetryable(err)
			resp.Action = vidu.SuggestedAction(ae.Code)
		}
		outputJSON(resp)
	}
	os.Exit(exitCodeFor(err))
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
	Action    string `json:"action,omitempty"`
}

// TaskResponse is the JSON view of a task handle.
type TaskResponse struct {
	TaskID  string            `json:"task_id"`
	State   vidu.State        `json:"state"`
	ErrCode string            `json:"err_code,omitempty"`
	Files   map[string]string `json:"files,omitempty"`
}

// printTask outputs a task in the selected format, with downloaded file
// paths when present.
func printTask(task *vidu.Task, files map[string]string) {
	if humanOutput {
		fmt.Printf("task %s: %s\n", task.TaskID, task.State)
		if task.ErrCode != "" {
			fmt.Printf("  error code: %s (%s)\n", task.ErrCode, vidu.Describe(task.ErrCode).Message)
		}
		for _, a := range task.Artifacts() {
			fmt.Printf("  creation %s: %s\n", a.ID, a.URL)
		}
		for label, path := range files {
			fmt.Printf("  %s -> %s\n", label, path)
		}
		return
	}
	outputJSON(TaskResponse{
		TaskID:  task.TaskID,
		State:   task.State,
		ErrCode: string(task.ErrCode),
		Files:   files,
	})
}
