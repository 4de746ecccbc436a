package listings

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

const (
	StatusActive = "active"
	StatusPaused = "paused"
	StatusClosed = "closed"
)

// Listing is a marketplace ad published for a product.
type Listing struct {
	ID                string          `json:"id"`
	ProductID         int64           `json:"product_id,omitempty"`
	Title             string          `json:"title"`
	Price             decimal.Decimal `json:"price"`
	Status            string          `json:"status"`
	AvailableQuantity int             `json:"available_quantity"`
	SoldQuantity      int             `json:"sold_quantity"`
	Permalink         string          `json:"permalink,omitempty"`
}

type PriceInput struct {
	Price decimal.Decimal `json:"price" validate:"gt=0"`
}

type Filter struct {
	Page      int
	PerPage   int
	Status    string
	Search    string
	ProductID int64
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":       query.OmitZero(f.Page),
		"per_page":   query.OmitZero(f.PerPage),
		"status":     f.Status,
		"search":     f.Search,
		"product_id": query.OmitZero(f.ProductID),
	}
}
