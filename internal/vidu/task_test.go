package vidu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestState_Terminal(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateCreated, false},
		{StateQueued, false},
		{StateProcessing, false},
		{StateSucceeded, true},
		{StateFailed, true},
	}

	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("Terminal(%s) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestPoll_ReplacesView(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"task_id": "t1",
			"state": "succeeded",
			"creations": [{"id": "c1", "url": "https://cdn.example.com/c1.mp4", "cover_url": "https://cdn.example.com/c1.jpg"}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	task := &Task{TaskID: "t1", State: StateProcessing}

	if err := c.Poll(context.Background(), task); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	if gotPath != "/ent/v2/tasks/t1/creations" {
		t.Errorf("path = %s, want /ent/v2/tasks/t1/creations", gotPath)
	}
	if task.State != StateSucceeded {
		t.Errorf("State = %s, want succeeded", task.State)
	}
	if len(task.Creations) != 1 || task.Creations[0].ID != "c1" {
		t.Errorf("Creations = %+v, want one creation c1", task.Creations)
	}
}

func TestPoll_UnknownState(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"task_id": "t1", "state": "meditating"}`))
	})

	task := &Task{TaskID: "t1", State: StateProcessing}
	err := c.Poll(context.Background(), task)

	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("Poll() error = %v, want ErrProtocol", err)
	}
	// The cached view must not be clobbered by a rejected response.
	if task.State != StateProcessing {
		t.Errorf("State = %s, want processing", task.State)
	}
}

func TestWait_ReachesTerminalState(t *testing.T) {
	var polls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&polls, 1) < 3 {
			w.Write([]byte(`{"task_id": "t1", "state": "processing"}`))
			return
		}
		w.Write([]byte(`{"task_id": "t1", "state": "failed", "err_code": "500003"}`))
	})

	task := &Task{TaskID: "t1", State: StateCreated}
	err := c.Wait(context.Background(), task, 5*time.Second, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if task.State != StateFailed {
		t.Errorf("State = %s, want failed", task.State)
	}
	if task.ErrCode != CodeModelError {
		t.Errorf("ErrCode = %s, want %s", task.ErrCode, CodeModelError)
	}
	if n := atomic.LoadInt32(&polls); n != 3 {
		t.Errorf("polls = %d, want 3", n)
	}
}

func TestWait_Timeout(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"task_id": "t1", "state": "processing"}`))
	})

	task := &Task{TaskID: "t1", State: StateCreated}
	start := time.Now()
	err := c.Wait(context.Background(), task, 300*time.Millisecond, 50*time.Millisecond)
	elapsed := time.Since(start)

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("Wait() error = %v, want *TimeoutError", err)
	}
	if te.TaskID != "t1" {
		t.Errorf("TaskID = %s, want t1", te.TaskID)
	}
	if elapsed < 300*time.Millisecond {
		t.Errorf("Wait returned after %v, before the timeout", elapsed)
	}
	if elapsed > 3*time.Second {
		t.Errorf("Wait took %v, far past the timeout", elapsed)
	}
}

func TestWait_ContextCancellation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"task_id": "t1", "state": "queued"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	task := &Task{TaskID: "t1"}
	err := c.Wait(ctx, task, 10*time.Second, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestWait_PollFailurePropagates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error_code": "404001"}`))
	})

	task := &Task{TaskID: "nope"}
	err := c.Wait(context.Background(), task, time.Second, 10*time.Millisecond)
	if !IsNotFound(err) {
		t.Errorf("Wait() error = %v, want task-not-found", err)
	}
}

func TestCancel(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	if err := c.Cancel(context.Background(), &Task{TaskID: "t1"}); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/ent/v2/tasks/t1/cancel" {
		t.Errorf("path = %s, want /ent/v2/tasks/t1/cancel", gotPath)
	}
}

func TestCancel_AlreadyTerminal(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error_code": "409001"}`))
	})

	err := c.Cancel(context.Background(), &Task{TaskID: "t1"})

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("Cancel() error = %v, want *APIError", err)
	}
	if ae.Code != CodeTaskAlreadyCompleted {
		t.Errorf("Code = %s, want %s", ae.Code, CodeTaskAlreadyCompleted)
	}
	if IsRetryable(err) {
		t.Error("conflict errors must not be retryable")
	}
}
