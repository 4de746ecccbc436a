package subscriptions

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/apiclient/apitest"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
)

func TestCurrentNormalizesBodyShapes(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		wantID int64
		found  bool
	}{
		{name: "bare array", data: `[{"id":1}]`, wantID: 1, found: true},
		{name: "bare object", data: `{"id":2,"status":"active"}`, wantID: 2, found: true},
		{name: "wrapped under data", data: `{"data":[{"id":3}]}`, wantID: 3, found: true},
		{name: "wrapped under subscriptions", data: `{"subscriptions":[{"id":4},{"id":5}]}`, wantID: 4, found: true},
		{name: "wrapped under items", data: `{"items":[{"id":6}]}`, wantID: 6, found: true},
		{name: "wrapped under results", data: `{"results":[{"id":7}]}`, wantID: 7, found: true},
		{name: "empty array", data: `[]`},
		{name: "empty wrapper", data: `{"results":[]}`},
		{name: "empty object", data: `{}`},
		{name: "null", data: `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := apitest.New(t)
			backend.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK, `{"success":true,"message":"ok","data":`+tc.data+`}`)
			svc := NewService(backend.Client(t))

			env := svc.Current(context.Background())

			if env.Success != tc.found {
				t.Fatalf("expected success=%v, got %v (message=%q)", tc.found, env.Success, env.Message)
			}
			if !tc.found {
				if env.Message != MessageNotFound || env.ErrorCode != http.StatusNotFound || env.ErrorFields == nil {
					t.Fatalf("unexpected not-found envelope %+v", env)
				}
				return
			}
			if env.Data.ID != tc.wantID {
				t.Fatalf("expected id %d got %d", tc.wantID, env.Data.ID)
			}
		})
	}
}

func TestCurrentIgnoresBodySuccessFlagOn2xx(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		wantID int64
		found  bool
	}{
		{name: "data present", body: `{"success":false,"message":"legado","data":[{"id":11}]}`, wantID: 11, found: true},
		{name: "wrapped data present", body: `{"success":false,"data":{"items":[{"id":12}]}}`, wantID: 12, found: true},
		{name: "no data", body: `{"success":false,"message":"Sem assinatura.","data":null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := apitest.New(t)
			backend.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK, tc.body)

			env := NewService(backend.Client(t)).Current(context.Background())

			if env.Success != tc.found {
				t.Fatalf("expected success=%v, got %+v", tc.found, env)
			}
			if tc.found && env.Data.ID != tc.wantID {
				t.Fatalf("expected id %d got %d", tc.wantID, env.Data.ID)
			}
			if !tc.found && env.Message != MessageNotFound {
				t.Fatalf("expected not-found message, got %q", env.Message)
			}
		})
	}
}

func TestCurrentDecodesSubscriptionFields(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK,
		`{"success":true,"data":[{"id":9,"plan_id":2,"plan_name":"Pro","status":"active","price":"89.90","renews_at":"2026-11-01T00:00:00Z"}]}`)
	svc := NewService(backend.Client(t))

	env := svc.Current(context.Background())

	if !env.Success {
		t.Fatalf("expected success, got %+v", env)
	}
	if env.Data.PlanName != "Pro" || !decimal.RequireFromString("89.9").Equal(env.Data.Price) {
		t.Fatalf("unexpected plan/price %q %s", env.Data.PlanName, env.Data.Price)
	}
	if env.Data.RenewsAt == nil || env.Data.RenewsAt.Year() != 2026 {
		t.Fatalf("unexpected renews_at %v", env.Data.RenewsAt)
	}
}

func TestCurrentPassesTransportFailuresThrough(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusUnauthorized,
		`{"success":false,"message":"Sessão expirada.","error_code":401}`)
	svc := NewService(backend.Client(t))

	env := svc.Current(context.Background())

	if env.Success || env.Message != "Sessão expirada." || env.ErrorCode != http.StatusUnauthorized {
		t.Fatalf("expected backend failure passed through, got %+v", env)
	}

	unreachable := NewService(apitest.Unreachable(t)).Current(context.Background())
	if unreachable.Message != envelope.MessageNoResponse || unreachable.ErrorCode != http.StatusServiceUnavailable {
		t.Fatalf("expected no-response envelope, got %+v", unreachable)
	}
}

func TestCurrentUndecodableBodyStaysUnexpected(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK, `not json`)

	env := NewService(backend.Client(t)).Current(context.Background())

	if env.ErrorCode != http.StatusInternalServerError || env.Message != envelope.MessageUnexpected {
		t.Fatalf("expected unexpected-error envelope, got %+v", env)
	}
}

func TestPlans(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodGet, "/v1/subscriptions/plans", http.StatusOK,
		`{"success":true,"data":[{"id":1,"name":"Básico","price":"0","interval":"month"},{"id":2,"name":"Pro","price":"89.90","interval":"month","features":["chat"]}]}`)
	svc := NewService(backend.Client(t))

	env := svc.Plans(context.Background())

	if !env.Success || len(env.Data) != 2 {
		t.Fatalf("expected two plans, got %+v", env)
	}
	if f := env.Data[1].Features; len(f) != 1 || f[0] != "chat" {
		t.Fatalf("unexpected features %v", f)
	}
}

func TestCancelValidatesBeforeDispatch(t *testing.T) {
	backend := apitest.New(t)
	svc := NewService(backend.Client(t))

	env := svc.Cancel(context.Background(), 0, CancelInput{})
	if env.Success || env.ErrorCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", env)
	}
	if len(backend.Calls()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestCancelPostsReason(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/subscriptions/{id}/cancel", http.StatusOK,
		`{"success":true,"data":{"id":12,"status":"cancelled"},"message":"Assinatura cancelada."}`)
	svc := NewService(backend.Client(t))

	env := svc.Cancel(context.Background(), 12, CancelInput{Reason: "preço"})

	if !env.Success || env.Data.Status != "cancelled" {
		t.Fatalf("expected cancelled subscription, got %+v", env)
	}
	call := backend.LastCall(t)
	if call.Path != "/v1/subscriptions/12/cancel" {
		t.Fatalf("unexpected path %s", call.Path)
	}
	call.ExpectJSON(t, `{"reason":"preço"}`)
}
