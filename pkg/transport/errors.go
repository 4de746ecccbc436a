package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ResponseError means the server answered with a non-2xx status.
type ResponseError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("backend responded with status %d", e.StatusCode)
}

// NoResponseError means the request was dispatched but no complete response
// arrived (network failure, timeout, cancelled context).
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("no response from backend: %v", e.Err)
}

func (e *NoResponseError) Unwrap() error { return e.Err }

// RequestSetupError means the request could not be built or dispatched.
type RequestSetupError struct {
	Err error
}

func (e *RequestSetupError) Error() string {
	return fmt.Sprintf("request setup failed: %v", e.Err)
}

func (e *RequestSetupError) Unwrap() error { return e.Err }

// Kind names the failure class of an error returned by Client.Do.
type Kind string

const (
	KindNone       Kind = "ok"
	KindResponse   Kind = "response_error"
	KindNoResponse Kind = "no_response"
	KindSetup      Kind = "setup_error"
)

// Classify returns the failure class, checked in priority order: a response
// beats a missing response, which beats a setup failure. Unknown errors are
// treated as setup failures.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return KindResponse
	}
	var noResp *NoResponseError
	if errors.As(err, &noResp) {
		return KindNoResponse
	}
	return KindSetup
}
