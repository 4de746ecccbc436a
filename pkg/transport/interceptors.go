package transport

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID stamps a request id unless the caller already set one.
func RequestID() Interceptor {
	return func(r *http.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.Header.Set(RequestIDHeader, uuid.NewString())
		}
		return nil
	}
}

var errMissingToken = errors.New("bearer token unavailable")

// BearerToken attaches an Authorization header from the token source. An empty
// token with required set aborts the request.
func BearerToken(source func() string, required bool) Interceptor {
	return func(r *http.Request) error {
		if r.Header.Get("Authorization") != "" {
			return nil
		}
		token := ""
		if source != nil {
			token = strings.TrimSpace(source())
		}
		if token == "" {
			if required {
				return errMissingToken
			}
			return nil
		}
		r.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}
