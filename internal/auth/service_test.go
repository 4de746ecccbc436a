package auth

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/apiclient/apitest"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

const loginOK = `{"success":true,"message":"Login realizado.","data":{"user":{"id":7,"name":"Ana","email":"ana@loja.com","store_id":40},"token":"tok-123"}}`

func TestLoginAttachesSubscription(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/auth/login", http.StatusOK, loginOK)
	backend.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK, `{"success":true,"data":[{"id":3,"plan_name":"Pro"}]}`)
	svc := NewService(backend.Client(t), nil)

	env := svc.Login(context.Background(), Credentials{Email: "ana@loja.com", Password: "secret1"})

	if !env.Success || env.Message != "Login realizado." {
		t.Fatalf("expected login success, got %+v", env)
	}
	if env.Data.User.ID != 7 {
		t.Fatalf("unexpected user %+v", env.Data.User)
	}
	if env.Data.Subscription == nil || env.Data.Subscription.ID != 3 {
		t.Fatalf("expected subscription 3, got %+v", env.Data.Subscription)
	}

	calls := backend.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected login + subscription calls, got %d", len(calls))
	}
	calls[0].ExpectJSON(t, `{"email":"ana@loja.com","password":"secret1"}`)
	if got := calls[1].Header.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("expected token on subscription call, got %q", got)
	}
}

func TestLoginLogsSeller(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/auth/login", http.StatusOK, loginOK)
	buf := &bytes.Buffer{}
	api := backend.Client(t, apiclient.WithLogger(logger.New(logger.Options{ServiceName: "test", Output: buf})))

	NewService(api, nil).Login(context.Background(), Credentials{Email: "ana@loja.com", Password: "secret1"})

	for _, want := range []string{`"auth.login.succeeded"`, `"seller_id":7`, `"store_id":40`} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %s in entry=%s", want, buf.String())
		}
	}
}

func TestLoginToleratesSubscriptionFailure(t *testing.T) {
	cases := map[string]func(*apitest.Backend){
		"server error": func(b *apitest.Backend) {
			b.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusInternalServerError, `{"success":false,"message":"boom"}`)
		},
		"empty list": func(b *apitest.Backend) {
			b.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK, `{"success":true,"data":[]}`)
		},
		"garbage body": func(b *apitest.Backend) {
			b.JSON(http.MethodGet, "/v1/subscriptions/current", http.StatusOK, `<html>`)
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			backend := apitest.New(t)
			backend.JSON(http.MethodPost, "/v1/auth/login", http.StatusOK, loginOK)
			setup(backend)
			svc := NewService(backend.Client(t), nil)

			env := svc.Login(context.Background(), Credentials{Email: "ana@loja.com", Password: "secret1"})

			if !env.Success {
				t.Fatalf("expected login success, got %+v", env)
			}
			if env.Data.Subscription != nil {
				t.Fatalf("expected nil subscription, got %+v", env.Data.Subscription)
			}
			if env.Data.Token != "tok-123" {
				t.Fatalf("unexpected token %q", env.Data.Token)
			}
		})
	}
}

func TestLoginFailureSkipsSubscription(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/auth/login", http.StatusUnauthorized, `{"success":false,"message":"Credenciais inválidas.","error_code":401}`)
	svc := NewService(backend.Client(t), nil)

	env := svc.Login(context.Background(), Credentials{Email: "ana@loja.com", Password: "wrong-pass"})

	if env.Success || env.Message != "Credenciais inválidas." || env.ErrorCode != http.StatusUnauthorized {
		t.Fatalf("expected backend rejection, got %+v", env)
	}
	if len(backend.Calls()) != 1 {
		t.Fatalf("expected only the login call, got %d", len(backend.Calls()))
	}
}

func TestLoginValidatesCredentials(t *testing.T) {
	backend := apitest.New(t)
	svc := NewService(backend.Client(t), nil)

	env := svc.Login(context.Background(), Credentials{Email: "not-an-email"})

	if env.Success || env.ErrorCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", env)
	}
	if len(env.ErrorFields) != 2 || env.ErrorFields[0].Key != "email" || env.ErrorFields[1].Key != "password" {
		t.Fatalf("unexpected fields %v", env.ErrorFields)
	}
	if len(backend.Calls()) != 0 {
		t.Fatalf("expected no backend call")
	}
}

func TestLoginLeavesPasswordPolicyToBackend(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/auth/login", http.StatusOK, loginOK)
	svc := NewService(backend.Client(t), nil)

	env := svc.Login(context.Background(), Credentials{Email: "ana@loja.com", Password: "abc"})

	if !env.Success {
		t.Fatalf("expected short password to reach the backend, got %+v", env)
	}
	backend.Calls()[0].ExpectJSON(t, `{"email":"ana@loja.com","password":"abc"}`)
}

func TestLogoutAndMe(t *testing.T) {
	backend := apitest.New(t)
	backend.JSON(http.MethodPost, "/v1/auth/logout", http.StatusOK, `{"success":true,"message":"Até logo."}`)
	backend.JSON(http.MethodGet, "/v1/auth/me", http.StatusOK, `{"success":true,"data":{"id":7,"name":"Ana","email":"ana@loja.com","verified":true}}`)
	svc := NewService(backend.Client(t), nil)

	if out := svc.Logout(context.Background()); !out.Success {
		t.Fatalf("expected logout success, got %+v", out)
	}
	if body := backend.LastCall(t).Body; len(body) != 0 {
		t.Fatalf("expected empty logout body, got %s", body)
	}

	me := svc.Me(context.Background())
	if !me.Success || !me.Data.Verified {
		t.Fatalf("unexpected me envelope %+v", me)
	}
}
