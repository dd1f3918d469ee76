package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/rowanvale/toolloop/internal/client"
)

type capture struct {
	method string
	url    string
	header http.Header
	body   []byte
}

type fakeTransport struct {
	respStatus int
	respBody   []byte
	captured   *capture
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Honour cancellation the way a real transport does.
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if f.captured != nil {
		f.captured.method = req.Method
		f.captured.url = req.URL.String()
		f.captured.header = req.Header.Clone()
		f.captured.body = b
	}
	resp := &http.Response{
		StatusCode: f.respStatus,
		Body:       io.NopCloser(bytes.NewReader(f.respBody)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func newClient(fake *fakeTransport, opts ...client.Option) *client.Client {
	opts = append(opts, client.WithHTTPClient(&http.Client{Transport: fake}))
	return client.New("http://unit.test/api/chat", opts...)
}

func TestSend_PostsJSONBody(t *testing.T) {
	capReq := &capture{}
	c := newClient(&fakeTransport{respStatus: 200, respBody: []byte(`{}`), captured: capReq})

	resp, err := c.Send(context.Background(), map[string]any{"model": "llama3.1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status: got %d want 200", resp.StatusCode)
	}
	if capReq.method != http.MethodPost {
		t.Fatalf("method: got %s want POST", capReq.method)
	}
	if got := capReq.header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type: got %q", got)
	}

	var sent map[string]any
	if err := json.Unmarshal(capReq.body, &sent); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if sent["model"] != "llama3.1" {
		t.Fatalf("body mismatch: %s", capReq.body)
	}
}

func TestSend_ReturnsNonSuccessStatusWithoutError(t *testing.T) {
	c := newClient(&fakeTransport{respStatus: 500, respBody: []byte(`oops`), captured: &capture{}})

	resp, err := c.Send(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("non-2xx is a protocol concern for the caller, not a transport error: %v", err)
	}
	if resp.StatusCode != 500 || string(resp.Body) != "oops" {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
	}
}

func TestSend_ExtraHeadersMerged(t *testing.T) {
	capReq := &capture{}
	c := newClient(
		&fakeTransport{respStatus: 200, respBody: []byte(`{}`), captured: capReq},
		client.WithHeader(map[string]string{"X-Request-Source": "toolloop"}),
	)

	if _, err := c.Send(context.Background(), map[string]any{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := capReq.header.Get("X-Request-Source"); got != "toolloop" {
		t.Fatalf("extra header not sent, got %q", got)
	}
}

func TestSend_UnmarshalableBodyErrors(t *testing.T) {
	c := newClient(&fakeTransport{respStatus: 200, respBody: []byte(`{}`)})
	if _, err := c.Send(context.Background(), map[string]any{"bad": func() {}}); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestSend_ContextCancelAborts(t *testing.T) {
	c := newClient(&fakeTransport{respStatus: 200, respBody: []byte(`{}`)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Send(ctx, map[string]any{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
