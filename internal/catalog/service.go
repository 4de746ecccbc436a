package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/query"
)

const (
	messageInvalidCategory = "Categoria inválida."
	messageTitleRequired   = "Informe o título do anúncio para sugerir uma categoria."
)

// Service reads the marketplace category tree.
type Service interface {
	Categories(ctx context.Context, parentID string, opts ...apiclient.RequestOption) envelope.Envelope[[]Category]
	Attributes(ctx context.Context, categoryID string, opts ...apiclient.RequestOption) envelope.Envelope[[]Attribute]
	PredictCategory(ctx context.Context, title string, opts ...apiclient.RequestOption) envelope.Envelope[[]Prediction]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

// Categories lists the children of parentID, or the root categories when it
// is empty.
func (s *service) Categories(ctx context.Context, parentID string, opts ...apiclient.RequestOption) envelope.Envelope[[]Category] {
	params := query.Params{"parent_id": strings.TrimSpace(parentID)}
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(params.Encode())}, opts...)
	return apiclient.Get[[]Category](ctx, s.api, "/v1/catalog/categories", opts...)
}

func (s *service) Attributes(ctx context.Context, categoryID string, opts ...apiclient.RequestOption) envelope.Envelope[[]Attribute] {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return apiclient.Invalid[[]Attribute](ctx, s.api, http.MethodGet, messageInvalidCategory)
	}
	return apiclient.Get[[]Attribute](ctx, s.api, "/v1/catalog/categories/"+url.PathEscape(categoryID)+"/attributes", opts...)
}

func (s *service) PredictCategory(ctx context.Context, title string, opts ...apiclient.RequestOption) envelope.Envelope[[]Prediction] {
	title = strings.TrimSpace(title)
	if title == "" {
		return apiclient.Invalid[[]Prediction](ctx, s.api, http.MethodGet, messageTitleRequired,
			envelope.ErrorField{Key: "title", Error: "campo obrigatório"})
	}
	params := query.Params{"title": title}
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(params.Encode())}, opts...)
	return apiclient.Get[[]Prediction](ctx, s.api, "/v1/catalog/category-predictor", opts...)
}
