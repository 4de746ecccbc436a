// Package envelope defines the uniform response shape every backend call
// resolves to, plus the constructors used to synthesise failures locally.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
)

// Canned user-facing messages. The dashboard matches on these verbatim.
const (
	MessageNoResponse = "Servidor não respondeu. Tente novamente em alguns instantes."
	MessageUnexpected = "Erro inesperado. Tente novamente em alguns instantes."
)

// Envelope is the result of a single request/response cycle. Data is only
// meaningful when Success is true; failures carry the zero value and
// serialise it as null. Envelopes are built once and never mutated.
type Envelope[T any] struct {
	Success     bool
	Data        T
	Message     string
	ErrorCode   int
	ErrorFields ErrorFields

	// Status is the HTTP status observed on the wire, or the status implied by
	// a locally synthesised failure. It is not part of the JSON shape.
	Status int
}

type wireEnvelope struct {
	Success     bool            `json:"success"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	ErrorCode   *int            `json:"error_code,omitempty"`
	ErrorFields *ErrorFields    `json:"error_fields,omitempty"`
}

var jsonNull = json.RawMessage("null")

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	w := wireEnvelope{
		Success: e.Success,
		Data:    jsonNull,
		Message: e.Message,
	}
	if e.Success {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return nil, fmt.Errorf("marshal envelope data: %w", err)
		}
		w.Data = data
	} else {
		code := e.ErrorCode
		fields := e.ErrorFields
		if fields == nil {
			fields = ErrorFields{}
		}
		w.ErrorCode = &code
		w.ErrorFields = &fields
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the backend body as-is. Data is decoded only for
// successful envelopes; a failure body never fails to decode because of a
// data placeholder of the wrong shape.
func (e *Envelope[T]) UnmarshalJSON(raw []byte) error {
	var w wireEnvelope
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}

	var zero T
	e.Success = w.Success
	e.Data = zero
	e.Message = w.Message
	e.ErrorCode = 0
	e.ErrorFields = nil
	if w.ErrorCode != nil {
		e.ErrorCode = *w.ErrorCode
	}
	if w.ErrorFields != nil {
		e.ErrorFields = *w.ErrorFields
	}

	if !w.Success {
		if e.ErrorFields == nil {
			e.ErrorFields = ErrorFields{}
		}
		return nil
	}
	if len(w.Data) == 0 || bytes.Equal(bytes.TrimSpace(w.Data), jsonNull) {
		return nil
	}
	if err := json.Unmarshal(w.Data, &e.Data); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// HTTPStatus reports the status a gateway should answer with.
func (e Envelope[T]) HTTPStatus() int {
	if e.Success {
		return http.StatusOK
	}
	if e.Status >= 400 && e.Status <= 599 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Unwrap is the single place where a failure envelope becomes a Go error.
func (e Envelope[T]) Unwrap() (T, error) {
	if e.Success {
		return e.Data, nil
	}
	var zero T
	return zero, &Error{Code: e.ErrorCode, Message: e.Message, Fields: e.ErrorFields}
}

// Error is the error form of a failure envelope.
type Error struct {
	Code    int
	Message string
	Fields  ErrorFields
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("envelope error %d: %s", e.Code, e.Message)
}

// Ok builds a successful envelope.
func Ok[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: message, Status: http.StatusOK}
}

// Fail builds a failure envelope. An empty message falls back to the public
// message for the status so no failure ever reaches the UI without text.
func Fail[T any](status, code int, message string, fields ErrorFields) Envelope[T] {
	if message == "" {
		message = pkgerrors.PublicMessageForStatus(status)
	}
	if fields == nil {
		fields = ErrorFields{}
	}
	return Envelope[T]{
		Success:     false,
		Message:     message,
		ErrorCode:   code,
		ErrorFields: fields,
		Status:      status,
	}
}

// Invalid builds a client-side validation failure (400).
func Invalid[T any](message string, fields ...ErrorField) Envelope[T] {
	return Fail[T](http.StatusBadRequest, http.StatusBadRequest, message, ErrorFields(fields))
}

// NoResponse is the envelope for a request that was sent but never answered.
func NoResponse[T any]() Envelope[T] {
	return Fail[T](http.StatusServiceUnavailable, http.StatusServiceUnavailable, MessageNoResponse, nil)
}

// Unexpected is the envelope for client-side failures before dispatch and for
// bugs caught at a service boundary.
func Unexpected[T any]() Envelope[T] {
	return Fail[T](http.StatusInternalServerError, http.StatusInternalServerError, MessageUnexpected, nil)
}

// Map reshapes the data of a successful envelope and carries failures over
// unchanged.
func Map[T, U any](e Envelope[T], fn func(T) U) Envelope[U] {
	if !e.Success {
		return Retype[T, U](e)
	}
	return Envelope[U]{
		Success: true,
		Data:    fn(e.Data),
		Message: e.Message,
		Status:  e.Status,
	}
}

// Retype moves a failure envelope to another data type. Success data is
// dropped, so only call it on failures.
func Retype[T, U any](e Envelope[T]) Envelope[U] {
	return Envelope[U]{
		Success:     e.Success,
		Message:     e.Message,
		ErrorCode:   e.ErrorCode,
		ErrorFields: e.ErrorFields,
		Status:      e.Status,
	}
}
