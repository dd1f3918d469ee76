// Package client is the HTTP transport collaborator for the chat endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response is the raw outcome of one exchange with the endpoint.
type Response struct {
	StatusCode int
	Body       []byte
}

// Sender is the transport contract the runner depends on. Real traffic goes
// through Client; tests substitute a stub.
type Sender interface {
	Send(ctx context.Context, body any) (*Response, error)
}

// Client posts JSON bodies to a fixed endpoint URL with a fixed per-request
// timeout.
type Client struct {
	url     string
	header  map[string]string
	timeout time.Duration
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHeader merges extra request headers over the defaults.
func WithHeader(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.header[k] = v
		}
	}
}

// WithHTTPClient substitutes the underlying *http.Client (test transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpc = h
		}
	}
}

const defaultTimeout = 120 * time.Second

// New returns a client for the endpoint at url. Defaults: JSON headers,
// 120s timeout.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url: url,
		header: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: c.timeout}
	}
	return c
}

var _ Sender = (*Client)(nil)

// Send marshals body to JSON, posts it, and returns the status and the full
// response body. Context cancellation and the client timeout both abort the
// request; there is no retry.
func (c *Client) Send(ctx context.Context, body any) (*Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("client: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: read response: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
