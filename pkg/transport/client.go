// Package transport holds the single configured HTTP client every feature
// service talks to the seller backend through.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultBaseURL is the seller backend; endpoints live under /v1.
	DefaultBaseURL = "https://api.sellerdash.com.br"
	defaultTimeout = 30 * time.Second
	// maxResponseBytes bounds how much of a response body is buffered.
	maxResponseBytes int64 = 10 << 20
)

// Interceptor mutates an outgoing request before dispatch. Returning an error
// aborts the call as a request setup failure.
type Interceptor func(*http.Request) error

// Request describes one backend call relative to the base URL.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Header      http.Header
	Body        []byte
	ContentType string
}

// Response is a 2xx answer with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is safe for concurrent use. Configuration is fixed at construction;
// only the interceptor list may grow afterwards.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    http.Header

	mu           sync.RWMutex
	interceptors []Interceptor
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. The cookie jar of the
// provided client is kept as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the backend base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithCookieJar replaces the credential store. A nil jar disables cookies,
// which is what a shared multi-user gateway wants.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		c.httpClient.Jar = jar
	}
}

// WithInterceptor registers an interceptor at construction time.
func WithInterceptor(in Interceptor) Option {
	return func(c *Client) {
		if in != nil {
			c.interceptors = append(c.interceptors, in)
		}
	}
}

// NewClient builds the transport. Requests are credentialed by default: a
// cookie jar keeps whatever session cookies the backend sets.
func NewClient(opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout, Jar: jar},
		baseURL:    DefaultBaseURL,
		headers: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if _, err := url.Parse(client.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", client.baseURL, err)
	}

	return client, nil
}

// BaseURL reports the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Use appends an interceptor. None are registered by default.
func (c *Client) Use(in Interceptor) {
	if in == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interceptors = append(c.interceptors, in)
}

func (c *Client) snapshotInterceptors() []Interceptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Interceptor, len(c.interceptors))
	copy(out, c.interceptors)
	return out
}

// URL resolves a path and query against the base URL.
func (c *Client) URL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded := query.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}

// Do issues the request. It returns a Response only for 2xx answers; every
// other outcome is a *ResponseError, *NoResponseError or *RequestSetupError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, &RequestSetupError{Err: err}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NoResponseError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &NoResponseError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	if ctx == nil {
		return nil, fmt.Errorf("nil context")
	}
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(req.Path, req.Query), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}

	for key, values := range c.headers {
		httpReq.Header[key] = append([]string(nil), values...)
	}
	for key, values := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if req.Body == nil {
		httpReq.Header.Del("Content-Type")
	}

	for _, in := range c.snapshotInterceptors() {
		if err := in(httpReq); err != nil {
			return nil, fmt.Errorf("interceptor: %w", err)
		}
	}

	return httpReq, nil
}
