package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
)

const messageInvalidQuery = "Parâmetros de consulta inválidos."

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, queryError(key, "deve ser numérico", raw)
	}
	if value < min || value > max {
		return 0, queryError(key, "fora do intervalo permitido", raw)
	}
	return value, nil
}

func ParseQueryInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, queryError(key, "deve ser numérico", raw)
	}
	return value, nil
}

func ParseQueryBool(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, queryError(key, "deve ser true ou false", raw)
	}
	return value, nil
}

// ParseQueryTime accepts RFC3339 timestamps or plain dates (UTC midnight).
func ParseQueryTime(r *http.Request, key string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	if day, err := time.Parse(time.DateOnly, raw); err == nil {
		return day, nil
	}
	return time.Time{}, queryError(key, "data inválida", raw)
}

// PathInt64 reads a numeric chi URL parameter. Range checks belong to the
// services.
func PathInt64(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, messageInvalidQuery).
			WithDetails(envelope.ErrorFields{{Key: key, Error: "deve ser numérico", Value: raw}})
	}
	return value, nil
}

func queryError(key, reason, value string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, messageInvalidQuery).
		WithDetails(envelope.ErrorFields{{Key: key, Error: reason, Value: value}})
}
