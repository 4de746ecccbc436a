package validators

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
)

const (
	maxBodyBytes = 1 << 20

	messageInvalidBody = "Corpo da requisição inválido."
	messageBodyTooBig  = "Corpo da requisição muito grande."
)

// DecodeJSONBody reads a JSON request body into dest. Payload rules are left
// to the services, which validate before calling the backend.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() {
		_, _ = io.Copy(io.Discard, body)
	}()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return pkgerrors.Wrap(pkgerrors.CodeTooLarge, err, messageBodyTooBig)
		}
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, messageInvalidBody).
			WithDetails(envelope.ErrorFields{{Key: "body", Error: "formato inválido"}})
	}
	return nil
}
