// Package apitest provides a fake seller backend for feature-service tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// Call is one request the fake backend received.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Backend routes requests with chi and records every call.
type Backend struct {
	server *httptest.Server
	router chi.Router

	mu    sync.Mutex
	calls []Call
}

// New starts a backend that is shut down when the test ends. Unrouted paths
// answer 404 with an empty body.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{router: chi.NewRouter()}
	b.router.Use(b.record)
	b.server = httptest.NewServer(b.router)
	t.Cleanup(b.server.Close)
	return b
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.calls = append(b.calls, Call{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// Handle registers a handler for a chi pattern.
func (b *Backend) Handle(method, pattern string, h http.HandlerFunc) {
	b.router.Method(method, pattern, h)
}

// JSON registers a canned JSON answer.
func (b *Backend) JSON(method, pattern string, status int, body string) {
	b.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// URL is the backend root.
func (b *Backend) URL() string {
	return b.server.URL
}

// Client returns an api client wired to this backend.
func (b *Backend) Client(t testing.TB, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	tc, err := transport.NewClient(transport.WithBaseURL(b.server.URL))
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	return apiclient.New(tc, opts...)
}

// Calls returns a copy of the recorded calls.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// LastCall returns the most recent call, failing the test if there is none.
func (b *Backend) LastCall(t testing.TB) Call {
	t.Helper()
	calls := b.Calls()
	if len(calls) == 0 {
		t.Fatalf("backend received no calls")
	}
	return calls[len(calls)-1]
}

// Unreachable returns a client whose transport never gets an answer.
func Unreachable(t testing.TB) *apiclient.Client {
	t.Helper()
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})
	tc, err := transport.NewClient(transport.WithHTTPClient(&http.Client{Transport: rt}), transport.WithBaseURL("http://backend.invalid"))
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	return apiclient.New(tc)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// ExpectJSON fails the test unless the call body is the JSON document want,
// ignoring key order and whitespace.
func (c Call) ExpectJSON(t testing.TB, want string) {
	t.Helper()
	var got, expected any
	if err := json.Unmarshal(c.Body, &got); err != nil {
		t.Fatalf("decode request body %q: %v", c.Body, err)
	}
	if err := json.Unmarshal([]byte(want), &expected); err != nil {
		t.Fatalf("decode expected body %q: %v", want, err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected request body\n got: %s\nwant: %s", c.Body, want)
	}
}

