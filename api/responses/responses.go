package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

// WriteEnvelope relays a service result. The HTTP status follows the envelope.
func WriteEnvelope[T any](w http.ResponseWriter, env envelope.Envelope[T]) {
	writeJSON(w, env.HTTPStatus(), env)
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteEnvelope(w, envelope.Ok(data, ""))
}

// WriteError renders a gateway-side failure, such as an unreadable body, in
// the same envelope shape the services return.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeTooLarge:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	var fields envelope.ErrorFields
	if details, ok := typed.Details().(envelope.ErrorFields); ok {
		fields = details
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error":       dump.TopMessage,
			"error_code":  dump.Code,
			"error_chain": dump.Chain,
		})
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(ctx, "request.rejected")
		}
	}

	WriteEnvelope(w, envelope.Fail[any](meta.HTTPStatus, meta.HTTPStatus, msg, fields))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
