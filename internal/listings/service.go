package listings

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidID = "Anúncio inválido."

// Service manages the seller's published listings.
type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Listing]]
	Get(ctx context.Context, id string, opts ...apiclient.RequestOption) envelope.Envelope[Listing]
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal, opts ...apiclient.RequestOption) envelope.Envelope[Listing]
	Pause(ctx context.Context, id string, opts ...apiclient.RequestOption) envelope.Envelope[Listing]
	Activate(ctx context.Context, id string, opts ...apiclient.RequestOption) envelope.Envelope[Listing]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Listing]] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Listing]](ctx, s.api, "/v1/listings", opts...)
}

func (s *service) Get(ctx context.Context, id string, opts ...apiclient.RequestOption) envelope.Envelope[Listing] {
	path, ok := listingPath(id)
	if !ok {
		return apiclient.Invalid[Listing](ctx, s.api, http.MethodGet, messageInvalidID)
	}
	return apiclient.Get[Listing](ctx, s.api, path, opts...)
}

func (s *service) UpdatePrice(ctx context.Context, id string, price decimal.Decimal, opts ...apiclient.RequestOption) envelope.Envelope[Listing] {
	path, ok := listingPath(id)
	if !ok {
		return apiclient.Invalid[Listing](ctx, s.api, http.MethodPut, messageInvalidID)
	}
	input := PriceInput{Price: price}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Listing](ctx, s.api, http.MethodPut, validate.Message, fields...)
	}
	return apiclient.Put[Listing](ctx, s.api, path+"/price", input, opts...)
}

func (s *service) Pause(ctx context.Context, id string, opts ...apiclient.RequestOption) envelope.Envelope[Listing] {
	return s.transition(ctx, id, "pause", opts)
}

func (s *service) Activate(ctx context.Context, id string, opts ...apiclient.RequestOption) envelope.Envelope[Listing] {
	return s.transition(ctx, id, "activate", opts)
}

func (s *service) transition(ctx context.Context, id, action string, opts []apiclient.RequestOption) envelope.Envelope[Listing] {
	path, ok := listingPath(id)
	if !ok {
		return apiclient.Invalid[Listing](ctx, s.api, http.MethodPost, messageInvalidID)
	}
	return apiclient.Post[Listing](ctx, s.api, path+"/"+action, nil, opts...)
}

func listingPath(id string) (string, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", false
	}
	return "/v1/listings/" + url.PathEscape(id), true
}
