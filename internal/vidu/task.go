package vidu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Default polling parameters for Wait.
const (
	DefaultWaitTimeout  = 300 * time.Second
	DefaultPollInterval = 5 * time.Second
)

// State is the lifecycle state of a task as reported by the server. The
// server's state machine is created -> queued -> processing -> succeeded or
// failed; the client never infers or regresses state locally.
type State string

const (
	StateCreated    State = "created"
	StateQueued     State = "queued"
	StateProcessing State = "processing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Terminal reports whether no further transitions can occur.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

func (s State) known() bool {
	switch s {
	case StateCreated, StateQueued, StateProcessing, StateSucceeded, StateFailed:
		return true
	}
	return false
}

// Artifact is one output produced by a succeeded task. Immutable once
// observed.
type Artifact struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	CoverURL string `json:"cover_url,omitempty"`
}

// Task is a lightweight handle to one asynchronous generation job. Its
// fields are owned exclusively by the caller holding it; it is mutated only
// by Poll, which fully replaces the cached view with the server's. Tasks
// are never deleted locally, just dropped.
type Task struct {
	TaskID    string     `json:"task_id"`
	State     State      `json:"state"`
	ErrCode   Code       `json:"err_code,omitempty"`
	Creations []Artifact `json:"creations,omitempty"`
}

// Poll fetches the current server-side view of the task and replaces the
// cached state, error code, and creations. It never sleeps.
func (c *Client) Poll(ctx context.Context, task *Task) error {
	raw, err := c.dispatch(ctx, http.MethodGet, "/ent/v2/tasks/"+task.TaskID+"/creations", nil)
	if err != nil {
		return err
	}

	var view Task
	if err := json.Unmarshal(raw, &view); err != nil {
		return &ParseError{Err: err}
	}
	if !view.State.known() {
		return fmt.Errorf("%w: unknown task state %q", ErrProtocol, view.State)
	}

	task.State = view.State
	task.ErrCode = view.ErrCode
	task.Creations = view.Creations
	return nil
}

// Wait polls until the task reaches a terminal state, sleeping pollInterval
// between polls. It returns a TimeoutError once wall-clock time since the
// call exceeds timeout; the remote job is not cancelled. Poll failures
// propagate immediately without internal retries - whether to retry the
// whole wait is the caller's policy. Wait blocks for up to timeout, so run
// it off any interactive path; the context cancels it early.
func (c *Client) Wait(ctx context.Context, task *Task, timeout, pollInterval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	start := time.Now()
	for {
		if err := c.Poll(ctx, task); err != nil {
			return err
		}
		if task.State.Terminal() {
			return nil
		}
		if time.Since(start) > timeout {
			return &TimeoutError{TaskID: task.TaskID, Timeout: timeout}
		}

		timer := time.NewTimer(pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Cancel requests cancellation of the task. Best-effort and cooperative:
// the server rejects cancellation of an already-terminal task with a 409
// conflict code (non-retryable), and a cancelled job may still reach a
// terminal state before the next poll observes it, so callers should keep
// polling after cancelling.
func (c *Client) Cancel(ctx context.Context, task *Task) error {
	_, err := c.dispatch(ctx, http.MethodPost, "/ent/v2/tasks/"+task.TaskID+"/cancel", nil)
	return err
}
