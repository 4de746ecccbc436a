package billing

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/query"
)

const (
	messageInvalidID     = "Fatura inválida."
	messageInvalidPeriod = "Período inválido. Use o formato AAAA-MM."
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Service reads marketplace billing statements.
type Service interface {
	Invoices(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Invoice]]
	Invoice(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Invoice]
	Summary(ctx context.Context, period string, opts ...apiclient.RequestOption) envelope.Envelope[Summary]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) Invoices(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Invoice]] {
	filter.Period = strings.TrimSpace(filter.Period)
	if filter.Period != "" && !periodPattern.MatchString(filter.Period) {
		return apiclient.Invalid[envelope.Page[Invoice]](ctx, s.api, http.MethodGet, messageInvalidPeriod, periodField(filter.Period))
	}
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Invoice]](ctx, s.api, "/v1/billing/invoices", opts...)
}

func (s *service) Invoice(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[Invoice] {
	if id <= 0 {
		return apiclient.Invalid[Invoice](ctx, s.api, http.MethodGet, messageInvalidID)
	}
	return apiclient.Get[Invoice](ctx, s.api, fmt.Sprintf("/v1/billing/invoices/%d", id), opts...)
}

// Summary returns the breakdown for period (YYYY-MM), or for the current
// period when it is empty.
func (s *service) Summary(ctx context.Context, period string, opts ...apiclient.RequestOption) envelope.Envelope[Summary] {
	period = strings.TrimSpace(period)
	if period != "" && !periodPattern.MatchString(period) {
		return apiclient.Invalid[Summary](ctx, s.api, http.MethodGet, messageInvalidPeriod, periodField(period))
	}
	params := query.Params{"period": period}
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(params.Encode())}, opts...)
	return apiclient.Get[Summary](ctx, s.api, "/v1/billing/summary", opts...)
}

func periodField(period string) envelope.ErrorField {
	return envelope.ErrorField{Key: "period", Error: "formato inválido", Value: period}
}
