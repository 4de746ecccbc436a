package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Statuses a seller can move an order to.
const (
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Item struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Buyer struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// Order is a marketplace sale. PackID groups orders shipped together.
type Order struct {
	ID        int64           `json:"id"`
	PackID    *int64          `json:"pack_id,omitempty"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Buyer     Buyer           `json:"buyer"`
	Items     []Item          `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// StatusInput moves an order forward.
type StatusInput struct {
	Status       string `json:"status" validate:"required,oneof=confirmed shipped delivered cancelled"`
	TrackingCode string `json:"tracking_code,omitempty" validate:"required_if=Status shipped,max=60"`
	Note         string `json:"note,omitempty" validate:"max=500"`
}

type Filter struct {
	Page    int
	PerPage int
	Status  string
	Search  string
	From    time.Time
	To      time.Time
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":     query.OmitZero(f.Page),
		"per_page": query.OmitZero(f.PerPage),
		"status":   f.Status,
		"search":   f.Search,
		"from":     f.From,
		"to":       f.To,
	}
}
