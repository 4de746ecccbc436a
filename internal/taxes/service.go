package taxes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidID = "Imposto inválido."

type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[[]Rule]
	Create(ctx context.Context, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Rule]
	Update(ctx context.Context, id int64, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Rule]
	Delete(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[struct{}]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[[]Rule] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[[]Rule](ctx, s.api, "/v1/taxes", opts...)
}

func (s *service) Create(ctx context.Context, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Rule] {
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Rule](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Rule](ctx, s.api, "/v1/taxes", input, opts...)
}

func (s *service) Update(ctx context.Context, id int64, input Input, opts ...apiclient.RequestOption) envelope.Envelope[Rule] {
	if id <= 0 {
		return apiclient.Invalid[Rule](ctx, s.api, http.MethodPut, messageInvalidID)
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Rule](ctx, s.api, http.MethodPut, validate.Message, fields...)
	}
	return apiclient.Put[Rule](ctx, s.api, fmt.Sprintf("/v1/taxes/%d", id), input, opts...)
}

func (s *service) Delete(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[struct{}] {
	if id <= 0 {
		return apiclient.Invalid[struct{}](ctx, s.api, http.MethodDelete, messageInvalidID)
	}
	return apiclient.Delete[struct{}](ctx, s.api, fmt.Sprintf("/v1/taxes/%d", id), opts...)
}
