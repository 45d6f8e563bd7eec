package vidu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production Vidu API endpoint.
	DefaultBaseURL = "https://api.vidu.cn"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit is the client-side request ceiling in requests per second.
	RateLimit = 10.0
)

// Client is a rate-limited HTTP client for the Vidu API. It is stateless
// between calls aside from the pooled HTTP connection and is safe for
// concurrent use, so multiple tasks may be submitted and polled through one
// Client from independent goroutines.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing or regional endpoints).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Vidu API client. The API key is taken from the
// VIDU_API_KEY environment variable unless overridden with WithAPIKey.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    DefaultBaseURL,
	}

	if key := os.Getenv("VIDU_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// dispatch executes one logical API call and returns the decoded,
// error-checked response body. Failures are classified into exactly one of
// three kinds: TransportError (the request never produced a response),
// APIError (the server declared an error code or a non-2xx status), or
// ParseError (a 2xx body that is not valid JSON). Callers apply different
// retry policies per kind, so the kinds are never conflated.
func (c *Client) dispatch(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Token "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Prefer the error code declared in the body; fall back to the
		// status code, which shares the registry's family namespace.
		if err := CheckResponse(raw); err != nil {
			return nil, err
		}
		return nil, newAPIError(Code(strconv.Itoa(resp.StatusCode)), nil)
	}

	if !json.Valid(raw) {
		return nil, &ParseError{Err: fmt.Errorf("response body is not valid JSON")}
	}

	if err := CheckResponse(raw); err != nil {
		return nil, err
	}

	return raw, nil
}
