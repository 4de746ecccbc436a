package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeUnprocessable Code = "UNPROCESSABLE"
	CodeTooLarge      Code = "PAYLOAD_TOO_LARGE"
	CodeRateLimit     Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal      Code = "INTERNAL_ERROR"
	CodeUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeTimeout       Code = "GATEWAY_TIMEOUT"
)

// Metadata describes how a code is presented to dashboard users.
type Metadata struct {
	HTTPStatus    int
	Retryable     bool
	PublicMessage string
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:    http.StatusBadRequest,
		PublicMessage: "Dados inválidos. Verifique os campos e tente novamente.",
	},
	CodeUnauthorized: {
		HTTPStatus:    http.StatusUnauthorized,
		PublicMessage: "Sua sessão expirou. Faça login novamente.",
	},
	CodeForbidden: {
		HTTPStatus:    http.StatusForbidden,
		PublicMessage: "Você não tem permissão para realizar esta ação.",
	},
	CodeNotFound: {
		HTTPStatus:    http.StatusNotFound,
		PublicMessage: "Recurso não encontrado.",
	},
	CodeConflict: {
		HTTPStatus:    http.StatusConflict,
		PublicMessage: "Conflito ao processar a solicitação. Atualize a página e tente novamente.",
	},
	CodeUnprocessable: {
		HTTPStatus:    http.StatusUnprocessableEntity,
		PublicMessage: "Não foi possível processar a solicitação.",
	},
	CodeTooLarge: {
		HTTPStatus:    http.StatusRequestEntityTooLarge,
		PublicMessage: "O conteúdo enviado é muito grande.",
	},
	CodeRateLimit: {
		HTTPStatus:    http.StatusTooManyRequests,
		Retryable:     true,
		PublicMessage: "Muitas requisições. Aguarde alguns instantes e tente novamente.",
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		Retryable:     true,
		PublicMessage: "Erro inesperado. Tente novamente em alguns instantes.",
	},
	CodeUnavailable: {
		HTTPStatus:    http.StatusServiceUnavailable,
		Retryable:     true,
		PublicMessage: "Servidor não respondeu. Tente novamente em alguns instantes.",
	},
	CodeTimeout: {
		HTTPStatus:    http.StatusGatewayTimeout,
		Retryable:     true,
		PublicMessage: "O servidor demorou para responder. Tente novamente em alguns instantes.",
	},
}

var codeByStatus = buildCodeByStatus()

func buildCodeByStatus() map[int]Code {
	result := make(map[int]Code, len(metadataByCode))
	for code, meta := range metadataByCode {
		result[meta.HTTPStatus] = code
	}
	return result
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// CodeForStatus maps an HTTP status onto the closest known code. Unknown 4xx
// statuses collapse to CodeValidation and everything else to CodeInternal.
func CodeForStatus(status int) Code {
	if code, ok := codeByStatus[status]; ok {
		return code
	}
	if status >= 400 && status < 500 {
		return CodeValidation
	}
	return CodeInternal
}

// PublicMessageForStatus returns the user-facing text for an HTTP status.
func PublicMessageForStatus(status int) string {
	return MetadataFor(CodeForStatus(status)).PublicMessage
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
