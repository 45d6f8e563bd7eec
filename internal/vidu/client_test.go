package vidu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()

	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, DefaultBaseURL)
	}
	if c.httpClient == nil {
		t.Error("httpClient should not be nil")
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, DefaultTimeout)
	}
	if c.limiter == nil {
		t.Error("limiter should not be nil")
	}
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	c := NewClient(
		WithAPIKey("custom-key"),
		WithBaseURL("http://localhost:9999"),
		WithHTTPClient(hc),
	)

	if c.apiKey != "custom-key" {
		t.Errorf("apiKey = %s, want custom-key", c.apiKey)
	}
	if c.baseURL != "http://localhost:9999" {
		t.Errorf("baseURL = %s, want http://localhost:9999", c.baseURL)
	}
	if c.httpClient != hc {
		t.Error("httpClient option not applied")
	}
}

func TestNewClient_APIKeyFromEnv(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "env-key")

	if c := NewClient(); c.apiKey != "env-key" {
		t.Errorf("apiKey = %s, want env-key", c.apiKey)
	}
	// An explicit option wins over the environment.
	if c := NewClient(WithAPIKey("opt-key")); c.apiKey != "opt-key" {
		t.Errorf("apiKey = %s, want opt-key", c.apiKey)
	}
}

func TestDispatch_Headers(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"task_id": "t1"}`))
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	if _, err := c.dispatch(context.Background(), http.MethodPost, "/ent/v2/text2video", map[string]string{"prompt": "x"}); err != nil {
		t.Fatalf("dispatch() error = %v", err)
	}

	if gotAuth != "Token test-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Token test-key")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestDispatch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	_, err := c.dispatch(context.Background(), http.MethodGet, "/ent/v2/tasks/t1/creations", nil)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("dispatch() error = %v, want *TransportError", err)
	}
	if !IsRetryable(err) {
		t.Error("transport errors should be retryable")
	}
}

func TestDispatch_ParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	_, err := c.dispatch(context.Background(), http.MethodGet, "/ent/v2/tasks/t1/creations", nil)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("dispatch() error = %v, want *ParseError", err)
	}
	if IsRetryable(err) {
		t.Error("parse errors must not be retryable")
	}
}

func TestDispatch_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code": "400007"}`))
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	_, err := c.dispatch(context.Background(), http.MethodPost, "/ent/v2/img2video", map[string]int{"duration": 99})

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("dispatch() error = %v, want *APIError", err)
	}
	if ae.Code != CodeInvalidDuration {
		t.Errorf("Code = %s, want %s", ae.Code, CodeInvalidDuration)
	}
}

func TestDispatch_StatusWithoutEnvelope(t *testing.T) {
	// A bare non-2xx with no usable body falls back to the HTTP status as
	// the error code.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	_, err := c.dispatch(context.Background(), http.MethodGet, "/ent/v2/tasks/t1/creations", nil)

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("dispatch() error = %v, want *APIError", err)
	}
	if ae.Code != CodeTooManyRequests {
		t.Errorf("Code = %s, want %s", ae.Code, CodeTooManyRequests)
	}
	if !IsRetryable(err) {
		t.Error("429 should be retryable")
	}
}

func TestDispatch_ErrorCodeInOKResponse(t *testing.T) {
	// Some failures arrive with HTTP 200 and only the envelope code set.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error_code": "500001"}`))
	}))
	defer srv.Close()

	c := NewClient(WithAPIKey("k"), WithBaseURL(srv.URL))
	_, err := c.dispatch(context.Background(), http.MethodGet, "/ent/v2/tasks/t1/creations", nil)

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("dispatch() error = %v, want *APIError", err)
	}
	if ae.Code != CodeServiceUnavailable {
		t.Errorf("Code = %s, want %s", ae.Code, CodeServiceUnavailable)
	}
}
