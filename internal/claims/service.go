package claims

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidID = "Reclamação inválida."

type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Claim]]
	Get(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Claim]
	Respond(ctx context.Context, id int64, input Response, opts ...apiclient.RequestOption) envelope.Envelope[Claim]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Claim]] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Claim]](ctx, s.api, "/v1/claims", opts...)
}

func (s *service) Get(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Claim] {
	if id <= 0 {
		return apiclient.Invalid[Claim](ctx, s.api, http.MethodGet, messageInvalidID)
	}
	return apiclient.Get[Claim](ctx, s.api, fmt.Sprintf("/v1/claims/%d", id), opts...)
}

func (s *service) Respond(ctx context.Context, id int64, input Response, opts ...apiclient.RequestOption) envelope.Envelope[Claim] {
	if id <= 0 {
		return apiclient.Invalid[Claim](ctx, s.api, http.MethodPost, messageInvalidID)
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Claim](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Claim](ctx, s.api, fmt.Sprintf("/v1/claims/%d/responses", id), input, opts...)
}
