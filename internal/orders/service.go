package orders

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidID = "Pedido inválido."

// Service exposes the seller's sales.
type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Order]]
	Get(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Order]
	UpdateStatus(ctx context.Context, id int64, input StatusInput, opts ...apiclient.RequestOption) envelope.Envelope[Order]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Order]] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Order]](ctx, s.api, "/v1/orders", opts...)
}

func (s *service) Get(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Order] {
	if id <= 0 {
		return apiclient.Invalid[Order](ctx, s.api, http.MethodGet, messageInvalidID)
	}
	return apiclient.Get[Order](ctx, s.api, fmt.Sprintf("/v1/orders/%d", id), opts...)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, input StatusInput, opts ...apiclient.RequestOption) envelope.Envelope[Order] {
	if id <= 0 {
		return apiclient.Invalid[Order](ctx, s.api, http.MethodPatch, messageInvalidID)
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Order](ctx, s.api, http.MethodPatch, validate.Message, fields...)
	}
	return apiclient.Patch[Order](ctx, s.api, fmt.Sprintf("/v1/orders/%d/status", id), input, opts...)
}
