package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// logBodyLimit bounds how much of a failed response body is logged.
const logBodyLimit = 2048

const outcomeValidation = "validation"

// Get issues a GET and decodes the body as an Envelope[T].
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) envelope.Envelope[T] {
	return send[T](ctx, c, http.MethodGet, path, nil, opts)
}

// Post issues a POST with a JSON body. A nil body sends no payload.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) envelope.Envelope[T] {
	return send[T](ctx, c, http.MethodPost, path, body, opts)
}

// Put issues a PUT with a JSON body.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) envelope.Envelope[T] {
	return send[T](ctx, c, http.MethodPut, path, body, opts)
}

// Patch issues a PATCH with a JSON body.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) envelope.Envelope[T] {
	return send[T](ctx, c, http.MethodPatch, path, body, opts)
}

// Delete issues a DELETE.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) envelope.Envelope[T] {
	return send[T](ctx, c, http.MethodDelete, path, nil, opts)
}

func send[T any](ctx context.Context, c *Client, method, path string, body any, opts []RequestOption) envelope.Envelope[T] {
	cfg := newRequestConfig(opts)
	req := transport.Request{
		Method: method,
		Path:   path,
		Query:  cfg.query,
		Header: cfg.header,
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail[T](ctx, c, req, &transport.RequestSetupError{Err: fmt.Errorf("marshal request body: %w", err)}, 0)
		}
		req.Body = payload
	}

	return execute[T](ctx, c, req, cfg)
}

func execute[T any](ctx context.Context, c *Client, req transport.Request, cfg requestConfig) envelope.Envelope[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if c == nil || c.transport == nil {
		return fail[T](ctx, c, req, &transport.RequestSetupError{Err: errors.New("api client not configured")}, 0)
	}

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		var respErr *transport.ResponseError
		if errors.As(err, &respErr) && cfg.onResponse != nil {
			cfg.onResponse(respErr.Header)
		}
		return fail[T](ctx, c, req, err, elapsed)
	}

	if cfg.onResponse != nil {
		cfg.onResponse(resp.Header)
	}
	if cfg.onBody != nil {
		cfg.onBody(resp.Body)
	}

	env, err := decodeSuccess[T](resp)
	if err != nil {
		c.metrics.Observe(req.Method, "decode_error", elapsed)
		logFailure(ctx, c, req, resp.StatusCode, resp.Body, "backend.response.undecodable", err)
		return envelope.Unexpected[T]()
	}
	c.metrics.Observe(req.Method, string(transport.KindNone), elapsed)
	return env
}

// decodeSuccess trusts a 2xx body to already be an envelope.
func decodeSuccess[T any](resp *transport.Response) (envelope.Envelope[T], error) {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return envelope.Envelope[T]{Success: true, Status: resp.StatusCode}, nil
	}

	var env envelope.Envelope[T]
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return envelope.Envelope[T]{}, err
	}
	env.Status = resp.StatusCode
	if !env.Success && strings.TrimSpace(env.Message) == "" {
		env.Message = envelope.MessageUnexpected
	}
	return env, nil
}

// fail classifies a transport error into exactly one failure envelope, in
// priority order: response received, no response, setup failure.
func fail[T any](ctx context.Context, c *Client, req transport.Request, err error, elapsed time.Duration) envelope.Envelope[T] {
	kind := transport.Classify(err)
	if c != nil {
		c.metrics.Observe(req.Method, string(kind), elapsed)
	}

	switch kind {
	case transport.KindResponse:
		var respErr *transport.ResponseError
		errors.As(err, &respErr)
		logFailure(ctx, c, req, respErr.StatusCode, respErr.Body, "backend.request.failed", err)
		return fromResponseError[T](respErr)
	case transport.KindNoResponse:
		logFailure(ctx, c, req, 0, nil, "backend.request.no_response", err)
		return envelope.NoResponse[T]()
	default:
		logFailure(ctx, c, req, 0, nil, "backend.request.setup_failed", err)
		return envelope.Unexpected[T]()
	}
}

type errorBody struct {
	Message     *string         `json:"message"`
	ErrorCode   *int            `json:"error_code"`
	ErrorFields json.RawMessage `json:"error_fields"`
}

func fromResponseError[T any](respErr *transport.ResponseError) envelope.Envelope[T] {
	status := respErr.StatusCode

	var body errorBody
	_ = json.Unmarshal(respErr.Body, &body)

	message := pkgerrors.PublicMessageForStatus(status)
	if body.Message != nil && strings.TrimSpace(*body.Message) != "" {
		message = *body.Message
	}

	code := status
	if body.ErrorCode != nil {
		code = *body.ErrorCode
	}

	fields := envelope.ErrorFields{}
	if len(body.ErrorFields) > 0 {
		var decoded envelope.ErrorFields
		if err := json.Unmarshal(body.ErrorFields, &decoded); err == nil {
			fields = decoded
		}
	}

	return envelope.Fail[T](status, code, message, fields)
}

func logFailure(ctx context.Context, c *Client, req transport.Request, status int, body []byte, msg string, err error) {
	logg := c.Logger()
	fields := map[string]any{}
	if len(req.Query) > 0 {
		fields["query"] = req.Query.Encode()
	}
	if len(req.Header) > 0 {
		names := make([]string, 0, len(req.Header))
		for name := range req.Header {
			names = append(names, name)
		}
		fields["request_headers"] = names
	}
	if status != 0 {
		fields["status"] = status
	}
	if len(body) > 0 {
		fields["response_body"] = truncate(body, logBodyLimit)
	}
	logg.Error(logg.WithFields(logg.WithUpstream(ctx, req.Method, req.Path), fields), msg, err)
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "…"
}

// Invalid rejects a call before it reaches the network. The rejection is
// logged and counted like any other failure.
func Invalid[T any](ctx context.Context, c *Client, method, message string, fields ...envelope.ErrorField) envelope.Envelope[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	if c != nil {
		c.metrics.IncOutcome(method, outcomeValidation)
	}
	logg := c.Logger()
	logg.Warn(logg.WithField(logg.WithUpstream(ctx, method, ""), "reason", message), "backend.request.rejected")
	return envelope.Invalid[T](message, fields...)
}

// Guard runs service-side reshaping code and converts a panic into the generic
// unexpected-error envelope, logging the original value.
func Guard[T any](ctx context.Context, c *Client, op string, fn func() envelope.Envelope[T]) (env envelope.Envelope[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if ctx == nil {
				ctx = context.Background()
			}
			logg := c.Logger()
			logCtx := logg.WithFields(logg.WithOperation(ctx, op), map[string]any{"panic": fmt.Sprint(rec)})
			logg.Error(logCtx, "service.panic.recovered", fmt.Errorf("panic in %s: %v", op, rec))
			env = envelope.Unexpected[T]()
		}
	}()
	return fn()
}
