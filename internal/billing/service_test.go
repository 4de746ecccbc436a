package billing

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/apiclient/apitest"
)

func TestInvoices(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/billing/invoices", http.StatusOK,
		`{"success":true,"data":{"items":[{"id":1,"number":"F-0001","period":"2026-09","status":"open","total":"312.40"}],"pagination":{"total_count":1}}}`)
	svc := NewService(backend.Client(t))

	env := svc.Invoices(context.Background(), Filter{Period: "2026-09"})

	if !env.Success || len(env.Data.Items) != 1 {
		t.Fatalf("expected one invoice, got %+v", env)
	}
	if total := env.Data.Items[0].Total.String(); total != "312.4" {
		t.Fatalf("unexpected total %s", total)
	}
	if period := backend.LastCall(t).Query.Get("period"); period != "2026-09" {
		t.Fatalf("unexpected period %q", period)
	}
}

func TestPeriodIsValidated(t *testing.T) {
	backend := apitest.New(t)
	svc := NewService(backend.Client(t))

	for _, period := range []string{"2026-13", "09/2026", "2026-9"} {
		env := svc.Summary(context.Background(), period)
		if env.ErrorCode != http.StatusBadRequest || env.Message != messageInvalidPeriod {
			t.Fatalf("%s: expected invalid period, got %+v", period, env)
		}
	}
	if code := svc.Invoices(context.Background(), Filter{Period: "x"}).ErrorCode; code != http.StatusBadRequest {
		t.Fatalf("invoices: expected 400 got %d", code)
	}
	if code := svc.Invoice(context.Background(), 0).ErrorCode; code != http.StatusBadRequest {
		t.Fatalf("invoice: expected 400 got %d", code)
	}
	if len(backend.Calls()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestSummary(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/billing/summary", http.StatusOK,
		`{"success":true,"data":{"period":"2026-10","gross_sales":"1000.00","fees":"130.00","shipping":"45.50","taxes":"60.00","net":"764.50","orders_count":12}}`)
	svc := NewService(backend.Client(t))

	env := svc.Summary(context.Background(), "")

	if !env.Success {
		t.Fatalf("expected success, got %+v", env)
	}
	if q := backend.LastCall(t).Query; len(q) != 0 {
		t.Fatalf("expected no query, got %v", q)
	}
	expected := env.Data.GrossSales.Sub(env.Data.Fees).Sub(env.Data.Shipping).Sub(env.Data.Taxes)
	if !expected.Equal(env.Data.Net) || !decimal.RequireFromString("764.5").Equal(env.Data.Net) {
		t.Fatalf("unexpected net %s", env.Data.Net)
	}
}

func TestInvoiceLines(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/billing/invoices/{id}", http.StatusOK,
		`{"success":true,"data":{"id":7,"lines":[{"description":"Tarifa de venda","kind":"fee","amount":"12.90","order_id":100}]}}`)
	svc := NewService(backend.Client(t))

	env := svc.Invoice(context.Background(), 7)

	if !env.Success || len(env.Data.Lines) != 1 {
		t.Fatalf("expected one line, got %+v", env)
	}
	if id := env.Data.Lines[0].OrderID; id != 100 {
		t.Fatalf("unexpected order id %d", id)
	}
}
