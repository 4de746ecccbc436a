package stock

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidProduct = "Produto inválido."

type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Level]]
	Adjust(ctx context.Context, productID int64, input AdjustInput, opts ...apiclient.RequestOption) envelope.Envelope[Movement]
	Movements(ctx context.Context, productID int64, filter MovementFilter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Movement]]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Level]] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Level]](ctx, s.api, "/v1/stock", opts...)
}

func (s *service) Adjust(ctx context.Context, productID int64, input AdjustInput, opts ...apiclient.RequestOption) envelope.Envelope[Movement] {
	if productID <= 0 {
		return apiclient.Invalid[Movement](ctx, s.api, http.MethodPost, messageInvalidProduct)
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Movement](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Movement](ctx, s.api, fmt.Sprintf("/v1/stock/%d/adjustments", productID), input, opts...)
}

func (s *service) Movements(ctx context.Context, productID int64, filter MovementFilter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Movement]] {
	if productID <= 0 {
		return apiclient.Invalid[envelope.Page[Movement]](ctx, s.api, http.MethodGet, messageInvalidProduct)
	}
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Movement]](ctx, s.api, fmt.Sprintf("/v1/stock/%d/movements", productID), opts...)
}
