// Package apiclient is the single chokepoint feature services use to call the
// seller backend. Every call resolves to an envelope; none return an error.
package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/angelmondragon/sellerdash/pkg/logger"
	"github.com/angelmondragon/sellerdash/pkg/metrics"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// Doer is the transport surface the wrapper depends on.
type Doer interface {
	Do(ctx context.Context, req transport.Request) (*transport.Response, error)
}

// Client binds a transport to the logger and metrics used on every call.
type Client struct {
	transport Doer
	logger    *logger.Logger
	metrics   *metrics.RequestMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithLogger sets the logger failures are reported to.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		if logg != nil {
			c.logger = logg
		}
	}
}

// WithMetrics sets the outbound request recorder.
func WithMetrics(m *metrics.RequestMetrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New wraps a transport. Without WithLogger failures are still classified but
// the log entries are discarded.
func New(doer Doer, opts ...Option) *Client {
	c := &Client{
		transport: doer,
		logger:    logger.Nop(),
		metrics:   metrics.NewRequestMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Logger exposes the client's logger so services log through the same sink.
func (c *Client) Logger() *logger.Logger {
	if c == nil || c.logger == nil {
		return logger.Nop()
	}
	return c.logger
}

// RequestOption adjusts a single call.
type RequestOption func(*requestConfig)

type requestConfig struct {
	query      url.Values
	header     http.Header
	onResponse func(http.Header)
	onBody     func([]byte)
}

func newRequestConfig(opts []RequestOption) requestConfig {
	cfg := requestConfig{header: http.Header{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithQuery sets the query string. Build it with the query package so empty
// filters are dropped.
func WithQuery(values url.Values) RequestOption {
	return func(cfg *requestConfig) {
		cfg.query = values
	}
}

// WithHeader sets one request header.
func WithHeader(key, value string) RequestOption {
	return func(cfg *requestConfig) {
		if value != "" {
			cfg.header.Set(key, value)
		}
	}
}

// WithForwardedHeaders copies the named headers from an inbound request.
func WithForwardedHeaders(src http.Header, keys ...string) RequestOption {
	return func(cfg *requestConfig) {
		for _, key := range keys {
			if values := src.Values(key); len(values) > 0 {
				cfg.header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
			}
		}
	}
}

// WithResponseHeaders receives the response headers of the call whenever the
// backend answered, successfully or not.
func WithResponseHeaders(fn func(http.Header)) RequestOption {
	return func(cfg *requestConfig) {
		cfg.onResponse = fn
	}
}

// WithResponseBody receives the raw body of a 2xx answer before it is decoded.
func WithResponseBody(fn func([]byte)) RequestOption {
	return func(cfg *requestConfig) {
		cfg.onBody = fn
	}
}
