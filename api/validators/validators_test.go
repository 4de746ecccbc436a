package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
)

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"oi","extra":1}`))
	var dest struct {
		Text string `json:"text"`
	}

	err := DecodeJSONBody(httptest.NewRecorder(), req, &dest)

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := typed.Details().(envelope.ErrorFields); !ok {
		t.Fatalf("expected error fields as details")
	}
}

func TestDecodeJSONBodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"`+strings.Repeat("a", maxBodyBytes)+`"}`))
	var dest map[string]string

	err := DecodeJSONBody(httptest.NewRecorder(), req, &dest)

	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeTooLarge {
		t.Fatalf("expected too large error, got %v", err)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&per_page=900&bad=x", nil)

	if v, err := ParseQueryInt(req, "page", 1, 1, 1000); err != nil || v != 3 {
		t.Fatalf("expected 3, got %d (%v)", v, err)
	}
	if v, _ := ParseQueryInt(req, "missing", 1, 1, 10); v != 1 {
		t.Fatalf("expected default, got %d", v)
	}
	if _, err := ParseQueryInt(req, "per_page", 20, 1, 100); err == nil {
		t.Fatalf("expected range error")
	}
	if _, err := ParseQueryInt(req, "bad", 1, 1, 10); err == nil {
		t.Fatalf("expected numeric error")
	}
}

func TestParseQueryTime(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-09-01&to=2026-09-30T23:59:59Z&x=ontem", nil)

	from, err := ParseQueryTime(req, "from")
	if err != nil || from.Day() != 1 {
		t.Fatalf("unexpected from %v (%v)", from, err)
	}
	to, err := ParseQueryTime(req, "to")
	if err != nil || to.Hour() != 23 {
		t.Fatalf("unexpected to %v (%v)", to, err)
	}
	if _, err := ParseQueryTime(req, "x"); err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestPathInt64(t *testing.T) {
	r := chi.NewRouter()
	var got int64
	var gotErr error
	r.Get("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		got, gotErr = PathInt64(req, "id")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	if gotErr != nil || got != 42 {
		t.Fatalf("expected 42, got %d (%v)", got, gotErr)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	if gotErr == nil {
		t.Fatalf("expected error for non numeric id")
	}
}
