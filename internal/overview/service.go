// Package overview assembles the dashboard landing counters from several
// feature services in parallel.
package overview

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/sellerdash/internal/claims"
	"github.com/angelmondragon/sellerdash/internal/orders"
	"github.com/angelmondragon/sellerdash/internal/questions"
	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
)

const (
	OrdersStatus    = "paid"
	QuestionsStatus = "unanswered"
	ClaimsStatus    = "opened"
)

// Summary holds the counters shown on the landing page. Partial is set when
// at least one counter could not be loaded and was left at zero.
type Summary struct {
	OrdersToShip        int      `json:"orders_to_ship"`
	UnansweredQuestions int      `json:"unanswered_questions"`
	OpenClaims          int      `json:"open_claims"`
	Partial             bool     `json:"partial"`
	Failed              []string `json:"failed,omitempty"`
}

type Service interface {
	Summary(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[Summary]
}

type Option func(*service)

// WithTimeout bounds the whole fan-out.
func WithTimeout(d time.Duration) Option {
	return func(s *service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

type service struct {
	api       *apiclient.Client
	orders    orders.Service
	questions questions.Service
	claims    claims.Service
	timeout   time.Duration
}

func NewService(api *apiclient.Client, o orders.Service, q questions.Service, c claims.Service, opts ...Option) Service {
	s := &service{
		api:       api,
		orders:    o,
		questions: q,
		claims:    c,
		timeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type counter struct {
	name  string
	fetch func(ctx context.Context) envelope.Envelope[envelope.Pagination]
	dst   *int
}

// Summary requests one item per list and reads total_count. A failed counter
// marks the summary partial; only when every counter fails is the first
// failure returned.
func (s *service) Summary(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[Summary] {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var out Summary
	counters := []counter{
		{name: "orders", dst: &out.OrdersToShip, fetch: func(ctx context.Context) envelope.Envelope[envelope.Pagination] {
			return pagination(s.orders.List(ctx, orders.Filter{Status: OrdersStatus, PerPage: 1}, opts...))
		}},
		{name: "questions", dst: &out.UnansweredQuestions, fetch: func(ctx context.Context) envelope.Envelope[envelope.Pagination] {
			return pagination(s.questions.List(ctx, questions.Filter{Status: QuestionsStatus, PerPage: 1}, opts...))
		}},
		{name: "claims", dst: &out.OpenClaims, fetch: func(ctx context.Context) envelope.Envelope[envelope.Pagination] {
			return pagination(s.claims.List(ctx, claims.Filter{Status: ClaimsStatus, PerPage: 1}, opts...))
		}},
	}

	var (
		g     errgroup.Group
		mu    sync.Mutex
		first *envelope.Envelope[envelope.Pagination]
	)
	for _, c := range counters {
		g.Go(func() error {
			env := c.fetch(ctx)
			mu.Lock()
			defer mu.Unlock()
			if !env.Success {
				out.Failed = append(out.Failed, c.name)
				if first == nil {
					first = &env
				}
				_, err := env.Unwrap()
				return err
			}
			*c.dst = env.Data.TotalCount
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logg := s.api.Logger()
		logg.Warn(logg.WithFields(ctx, map[string]any{
			"failed": out.Failed,
			"error":  err.Error(),
		}), "overview.summary.partial")
	}

	if len(out.Failed) == len(counters) {
		return envelope.Retype[envelope.Pagination, Summary](*first)
	}
	out.Partial = len(out.Failed) > 0
	return envelope.Ok(out, "")
}

func pagination[T any](env envelope.Envelope[envelope.Page[T]]) envelope.Envelope[envelope.Pagination] {
	return envelope.Map(env, func(p envelope.Page[T]) envelope.Pagination {
		return p.Pagination
	})
}
