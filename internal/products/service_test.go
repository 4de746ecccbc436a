package products

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/apiclient/apitest"
)

func validInput() Input {
	return Input{
		SKU:   "CAM-001",
		Title: "Camiseta básica",
		Price: decimal.RequireFromString("59.90"),
		Cost:  decimal.RequireFromString("21.35"),
		Stock: 12,
	}
}

func TestListSendsOnlySetFilters(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/products", http.StatusOK,
		`{"success":true,"data":{"items":[{"id":1,"sku":"CAM-001","price":"59.90"}],"pagination":{"page":2,"per_page":20,"total_count":21,"total_pages":2,"has_prev":true}}}`)
	svc := NewService(backend.Client(t))

	env := svc.List(context.Background(), Filter{Page: 2, PerPage: 20, Search: "camiseta"})

	if !env.Success || len(env.Data.Items) != 1 {
		t.Fatalf("expected one product, got %+v", env)
	}
	if !decimal.RequireFromString("59.9").Equal(env.Data.Items[0].Price) {
		t.Fatalf("unexpected price %s", env.Data.Items[0].Price)
	}
	if p := env.Data.Pagination; p.TotalCount != 21 || !p.HasPrev {
		t.Fatalf("unexpected pagination %+v", p)
	}

	q := backend.LastCall(t).Query
	if q.Get("page") != "2" || q.Get("per_page") != "20" || q.Get("search") != "camiseta" {
		t.Fatalf("unexpected query %v", q)
	}
	for _, key := range []string{"status", "category_id", "sort"} {
		if _, present := q[key]; present {
			t.Fatalf("unset filter %s was sent", key)
		}
	}
}

func TestCreateValidatesBeforeDispatch(t *testing.T) {
	backend := apitest.New(t)
	svc := NewService(backend.Client(t))

	input := validInput()
	input.Price = decimal.Zero
	input.Status = "archived"

	env := svc.Create(context.Background(), input)

	if env.Success || env.ErrorCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", env)
	}
	keys := make([]string, 0, len(env.ErrorFields))
	for _, f := range env.ErrorFields {
		keys = append(keys, f.Key)
	}
	sort.Strings(keys)
	if strings.Join(keys, ",") != "price,status" {
		t.Fatalf("unexpected violation keys %v", keys)
	}
	if len(backend.Calls()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestCreateAndUpdate(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/products", http.StatusCreated, `{"success":true,"data":{"id":5,"sku":"CAM-001"},"message":"Produto criado."}`)
	backend.JSON(http.MethodPut, "/v1/products/{id}", http.StatusOK, `{"success":true,"data":{"id":5,"sku":"CAM-001","stock":12}}`)
	svc := NewService(backend.Client(t))

	created := svc.Create(context.Background(), validInput())
	if !created.Success || created.Message != "Produto criado." {
		t.Fatalf("unexpected create envelope %+v", created)
	}
	backend.LastCall(t).ExpectJSON(t, `{"sku":"CAM-001","title":"Camiseta básica","price":"59.9","cost":"21.35","stock":12}`)

	updated := svc.Update(context.Background(), 5, validInput())
	if !updated.Success {
		t.Fatalf("unexpected update envelope %+v", updated)
	}
	if path := backend.LastCall(t).Path; path != "/v1/products/5" {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestInvalidIDNeverDispatches(t *testing.T) {
	backend := apitest.New(t)
	svc := NewService(backend.Client(t))
	ctx := context.Background()

	codes := []int{
		svc.Get(ctx, 0).ErrorCode,
		svc.Update(ctx, -1, validInput()).ErrorCode,
		svc.Delete(ctx, 0).ErrorCode,
		svc.RecalculateAverageCost(ctx, 0).ErrorCode,
	}
	for i, code := range codes {
		if code != http.StatusBadRequest {
			t.Fatalf("call %d: expected 400 got %d", i, code)
		}
	}
	if len(backend.Calls()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestDeleteNotFound(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodDelete, "/v1/products/{id}", http.StatusNotFound, `{}`)
	svc := NewService(backend.Client(t))

	env := svc.Delete(context.Background(), 99)

	if env.Success || env.ErrorCode != http.StatusNotFound || env.Message != "Recurso não encontrado." {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestRecalculateAverageCost(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/products/{id}/recalculate-average-cost", http.StatusOK,
		`{"success":true,"data":{"id":5,"average_cost":"22.10"}}`)
	svc := NewService(backend.Client(t))

	env := svc.RecalculateAverageCost(context.Background(), 5)

	if !env.Success || env.Data.AverageCost.String() != "22.1" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if body := backend.LastCall(t).Body; len(body) != 0 {
		t.Fatalf("expected empty body, got %s", body)
	}
}
