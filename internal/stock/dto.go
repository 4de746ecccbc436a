package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Level is the stock position of one product.
type Level struct {
	ProductID   int64           `json:"product_id"`
	SKU         string          `json:"sku"`
	Title       string          `json:"title"`
	Quantity    int             `json:"quantity"`
	Reserved    int             `json:"reserved"`
	Available   int             `json:"available"`
	AverageCost decimal.Decimal `json:"average_cost"`
}

// Movement is one entry of the stock ledger. Quantity is signed.
type Movement struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Reason    string          `json:"reason"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// AdjustInput records a manual correction. Positive quantities add stock.
type AdjustInput struct {
	Quantity int             `json:"quantity" validate:"required"`
	Reason   string          `json:"reason" validate:"required,oneof=entry exit loss return inventory"`
	UnitCost decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	Note     string          `json:"note,omitempty" validate:"max=255"`
}

type Filter struct {
	Page     int
	PerPage  int
	Search   string
	LowStock bool
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":      query.OmitZero(f.Page),
		"per_page":  query.OmitZero(f.PerPage),
		"search":    f.Search,
		"low_stock": query.OmitZero(f.LowStock),
	}
}

type MovementFilter struct {
	Page    int
	PerPage int
	Reason  string
	From    time.Time
	To      time.Time
}

func (f MovementFilter) params() query.Params {
	return query.Params{
		"page":     query.OmitZero(f.Page),
		"per_page": query.OmitZero(f.PerPage),
		"reason":   f.Reason,
		"from":     f.From,
		"to":       f.To,
	}
}
