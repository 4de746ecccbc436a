package products

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidID = "Produto inválido."

// Service exposes the seller's product catalog.
type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Product]]
	Get(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Product]
	Create(ctx context.Context, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Product]
	Update(ctx context.Context, id int64, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Product]
	Delete(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[struct{}]
	RecalculateAverageCost(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Product]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Product]] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Product]](ctx, s.api, "/v1/products", opts...)
}

func (s *service) Get(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Product] {
	if id <= 0 {
		return apiclient.Invalid[Product](ctx, s.api, http.MethodGet, messageInvalidID)
	}
	return apiclient.Get[Product](ctx, s.api, productPath(id), opts...)
}

func (s *service) Create(ctx context.Context, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Product] {
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Product](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Product](ctx, s.api, "/v1/products", input, opts...)
}

func (s *service) Update(ctx context.Context, id int64, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Product] {
	if id <= 0 {
		return apiclient.Invalid[Product](ctx, s.api, http.MethodPut, messageInvalidID)
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Product](ctx, s.api, http.MethodPut, validate.Message, fields...)
	}
	return apiclient.Put[Product](ctx, s.api, productPath(id), input, opts...)
}

func (s *service) Delete(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[struct{}] {
	if id <= 0 {
		return apiclient.Invalid[struct{}](ctx, s.api, http.MethodDelete, messageInvalidID)
	}
	return apiclient.Delete[struct{}](ctx, s.api, productPath(id), opts...)
}

// RecalculateAverageCost asks the backend to rebuild the weighted average cost
// from the product's stock entries.
func (s *service) RecalculateAverageCost(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Product] {
	if id <= 0 {
		return apiclient.Invalid[Product](ctx, s.api, http.MethodPost, messageInvalidID)
	}
	return apiclient.Post[Product](ctx, s.api, productPath(id)+"/recalculate-average-cost", nil, opts...)
}

func productPath(id int64) string {
	return fmt.Sprintf("/v1/products/%d", id)
}
