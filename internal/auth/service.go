package auth

import (
	"context"
	"net/http"

	"github.com/angelmondragon/sellerdash/internal/subscriptions"
	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

// Service exposes the session endpoints.
type Service interface {
	Login(ctx context.Context, creds Credentials, opts ...apiclient.RequestOption) envelope.Envelope[Session]
	Logout(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[struct{}]
	Me(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[User]
}

type service struct {
	api           *apiclient.Client
	subscriptions subscriptions.Service
}

func NewService(api *apiclient.Client, subs subscriptions.Service) Service {
	if subs == nil {
		subs = subscriptions.NewService(api)
	}
	return &service{api: api, subscriptions: subs}
}

// Login authenticates and then loads the seller's subscription. A failed or
// empty subscription lookup leaves Subscription nil; it never fails the login.
func (s *service) Login(ctx context.Context, creds Credentials, opts ...apiclient.RequestOption) envelope.Envelope[Session] {
	if fields := validate.Struct(creds); fields != nil {
		return apiclient.Invalid[Session](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}

	login := apiclient.Post[loginResponse](ctx, s.api, "/v1/auth/login", creds, opts...)
	if !login.Success {
		return envelope.Retype[loginResponse, Session](login)
	}

	subOpts := opts
	if login.Data.Token != "" {
		subOpts = append(append([]apiclient.RequestOption{}, opts...), apiclient.WithHeader("Authorization", "Bearer "+login.Data.Token))
	}

	logg := s.api.Logger()
	logg.Info(logg.WithSeller(ctx, login.Data.User.ID, login.Data.User.StoreID), "auth.login.succeeded")

	session := Session{User: login.Data.User, Token: login.Data.Token}
	if sub := s.subscriptions.Current(ctx, subOpts...); sub.Success {
		session.Subscription = &sub.Data
	}
	return envelope.Ok(session, login.Message)
}

func (s *service) Logout(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[struct{}] {
	return apiclient.Post[struct{}](ctx, s.api, "/v1/auth/logout", nil, opts...)
}

func (s *service) Me(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[User] {
	return apiclient.Get[User](ctx, s.api, "/v1/auth/me", opts...)
}
