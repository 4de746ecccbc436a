package orders

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/angelmondragon/sellerdash/pkg/apiclient/apitest"
)

func TestListEncodesDateRange(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/orders", http.StatusOK,
		`{"success":true,"data":{"items":[{"id":100,"pack_id":9,"status":"paid","total":"120.00","buyer":{"id":1,"nickname":"COMPRADOR"}}],"pagination":{"page":1,"per_page":10,"total_count":1,"total_pages":1}}}`)
	svc := NewService(backend.Client(t))

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	env := svc.List(context.Background(), Filter{Status: "paid", From: from})

	if !env.Success || len(env.Data.Items) != 1 {
		t.Fatalf("expected one order, got %+v", env)
	}
	if pack := env.Data.Items[0].PackID; pack == nil || *pack != 9 {
		t.Fatalf("expected pack 9, got %v", pack)
	}

	q := backend.LastCall(t).Query
	if q.Get("status") != "paid" || q.Get("from") != "2026-09-01T00:00:00Z" {
		t.Fatalf("unexpected query %v", q)
	}
	for _, key := range []string{"to", "page"} {
		if _, present := q[key]; present {
			t.Fatalf("unset filter %s was sent", key)
		}
	}
}

func TestUpdateStatusRequiresTrackingWhenShipped(t *testing.T) {
	backend := apitest.New(t)
	svc := NewService(backend.Client(t))

	env := svc.UpdateStatus(context.Background(), 100, StatusInput{Status: StatusShipped})

	if env.Success || len(env.ErrorFields) != 1 || env.ErrorFields[0].Key != "tracking_code" {
		t.Fatalf("expected tracking_code violation, got %+v", env)
	}
	if len(backend.Calls()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestUpdateStatus(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPatch, "/v1/orders/{id}/status", http.StatusOK, `{"success":true,"data":{"id":100,"status":"shipped"},"message":"Pedido atualizado."}`)
	svc := NewService(backend.Client(t))

	env := svc.UpdateStatus(context.Background(), 100, StatusInput{Status: StatusShipped, TrackingCode: "BR123"})

	if !env.Success || env.Data.Status != StatusShipped {
		t.Fatalf("expected shipped order, got %+v", env)
	}
	call := backend.LastCall(t)
	if call.Path != "/v1/orders/100/status" {
		t.Fatalf("unexpected path %s", call.Path)
	}
	call.ExpectJSON(t, `{"status":"shipped","tracking_code":"BR123"}`)
}

func TestGetPropagatesBackendFieldErrors(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/orders/{id}", http.StatusForbidden,
		`{"success":false,"message":"Sem acesso a este pedido.","error_code":4031,"error_fields":{"order_id":"pertence a outra loja"}}`)
	svc := NewService(backend.Client(t))

	env := svc.Get(context.Background(), 5)

	if env.Success || env.ErrorCode != 4031 || env.HTTPStatus() != http.StatusForbidden {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if len(env.ErrorFields) != 1 {
		t.Fatalf("expected one field, got %v", env.ErrorFields)
	}
	if f := env.ErrorFields[0]; f.Key != "order_id" || f.Error != "pertence a outra loja" {
		t.Fatalf("unexpected field %+v", f)
	}
}
