package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Invoice is a marketplace fee statement for one billing period.
type Invoice struct {
	ID     int64           `json:"id"`
	Number string          `json:"number"`
	Period string          `json:"period"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
	DueAt  *time.Time      `json:"due_at,omitempty"`
	PaidAt *time.Time      `json:"paid_at,omitempty"`
	Lines  []Line          `json:"lines,omitempty"`
}

type Line struct {
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	OrderID     int64           `json:"order_id,omitempty"`
}

// Summary is the seller's revenue breakdown for a period.
type Summary struct {
	Period      string          `json:"period"`
	GrossSales  decimal.Decimal `json:"gross_sales"`
	Fees        decimal.Decimal `json:"fees"`
	Shipping    decimal.Decimal `json:"shipping"`
	Taxes       decimal.Decimal `json:"taxes"`
	Net         decimal.Decimal `json:"net"`
	OrdersCount int             `json:"orders_count"`
}

type Filter struct {
	Page    int
	PerPage int
	Status  string
	Period  string
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":     query.OmitZero(f.Page),
		"per_page": query.OmitZero(f.PerPage),
		"status":   f.Status,
		"period":   f.Period,
	}
}
