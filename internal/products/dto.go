package products

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Product is a catalog item owned by the seller.
type Product struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	AverageCost decimal.Decimal `json:"average_cost"`
	Stock       int             `json:"stock"`
	Status      string          `json:"status"`
	CategoryID  string          `json:"category_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Input is the create/update payload.
type Input struct {
	SKU         string          `json:"sku" validate:"required,max=60"`
	Title       string          `json:"title" validate:"required,max=120"`
	Description string          `json:"description,omitempty" validate:"max=5000"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Cost        decimal.Decimal `json:"cost" validate:"gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Status      string          `json:"status,omitempty" validate:"omitempty,oneof=active paused draft"`
	CategoryID  string          `json:"category_id,omitempty"`
}

// Filter narrows the product list. Zero fields are not sent.
type Filter struct {
	Page       int
	PerPage    int
	Search     string
	Status     string
	CategoryID string
	Sort       string
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":        query.OmitZero(f.Page),
		"per_page":    query.OmitZero(f.PerPage),
		"search":      f.Search,
		"status":      f.Status,
		"category_id": f.CategoryID,
		"sort":        f.Sort,
	}
}
