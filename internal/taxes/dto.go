package taxes

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Rule is a tax applied to the seller's sales. Rate is a percentage.
type Rule struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Rate   decimal.Decimal `json:"rate"`
	State  string          `json:"state,omitempty"`
	NCM    string          `json:"ncm,omitempty"`
	Active bool            `json:"active"`
}

type Input struct {
	Name   string          `json:"name" validate:"required,max=80"`
	Kind   string          `json:"kind" validate:"required,oneof=icms ipi pis cofins iss simples"`
	Rate   decimal.Decimal `json:"rate" validate:"gte=0,lte=100"`
	State  string          `json:"state,omitempty" validate:"omitempty,len=2"`
	NCM    string          `json:"ncm,omitempty" validate:"omitempty,numeric,len=8"`
	Active bool            `json:"active"`
}

type Filter struct {
	Kind  string
	State string
}

func (f Filter) params() query.Params {
	return query.Params{
		"kind":  f.Kind,
		"state": f.State,
	}
}
