package catalog

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/angelmondragon/sellerdash/pkg/apiclient/apitest"
)

func TestRootCategoriesSendNoParent(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/catalog/categories", http.StatusOK, `{"success":true,"data":[{"id":"MLB1051","name":"Celulares"}]}`)
	svc := NewService(backend.Client(t))

	env := svc.Categories(context.Background(), "  ")

	if !env.Success || len(env.Data) != 1 {
		t.Fatalf("expected one category, got %+v", env)
	}
	if q := backend.LastCall(t).Query; len(q) != 0 {
		t.Fatalf("expected no query, got %v", q)
	}

	svc.Categories(context.Background(), "MLB1051")
	if parent := backend.LastCall(t).Query.Get("parent_id"); parent != "MLB1051" {
		t.Fatalf("unexpected parent_id %q", parent)
	}
}

func TestAttributes(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/catalog/categories/{id}/attributes", http.StatusOK,
		`{"success":true,"data":[{"id":"BRAND","name":"Marca","value_type":"string","required":true}]}`)
	svc := NewService(backend.Client(t))

	env := svc.Attributes(context.Background(), "MLB1055")

	if !env.Success || len(env.Data) != 1 || !env.Data[0].Required {
		t.Fatalf("expected one required attribute, got %+v", env)
	}
	if path := backend.LastCall(t).Path; path != "/v1/catalog/categories/MLB1055/attributes" {
		t.Fatalf("unexpected path %s", path)
	}

	invalid := svc.Attributes(context.Background(), "")
	if invalid.ErrorCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", invalid.ErrorCode)
	}
	if n := len(backend.Calls()); n != 1 {
		t.Fatalf("expected one backend call, got %d", n)
	}
}

func TestPredictCategory(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/catalog/category-predictor", http.StatusOK,
		`{"success":true,"data":[{"category_id":"MLB1055","category_name":"Celulares e Smartphones","probability":0.93}]}`)
	svc := NewService(backend.Client(t))

	env := svc.PredictCategory(context.Background(), " iPhone 13 128GB ")

	if !env.Success || len(env.Data) != 1 {
		t.Fatalf("expected one prediction, got %+v", env)
	}
	if p := env.Data[0].Probability; math.Abs(p-0.93) > 0.0001 {
		t.Fatalf("unexpected probability %v", p)
	}
	if title := backend.LastCall(t).Query.Get("title"); title != "iPhone 13 128GB" {
		t.Fatalf("expected trimmed title, got %q", title)
	}

	empty := svc.PredictCategory(context.Background(), "")
	if empty.Success || empty.Message != messageTitleRequired || len(empty.ErrorFields) != 1 {
		t.Fatalf("expected title violation, got %+v", empty)
	}
	if n := len(backend.Calls()); n != 1 {
		t.Fatalf("expected one backend call, got %d", n)
	}
}
