package claims

import (
	"time"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Claim is a buyer complaint opened against an order.
type Claim struct {
	ID        int64      `json:"id"`
	OrderID   int64      `json:"order_id"`
	Reason    string     `json:"reason"`
	Status    string     `json:"status"`
	Stage     string     `json:"stage,omitempty"`
	Messages  []Message  `json:"messages,omitempty"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Message struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Response is the seller's answer to a claim.
type Response struct {
	Action  string `json:"action" validate:"required,oneof=refund replace reply"`
	Message string `json:"message" validate:"required,max=2000"`
}

type Filter struct {
	Page    int
	PerPage int
	Status  string
	OrderID int64
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":     query.OmitZero(f.Page),
		"per_page": query.OmitZero(f.PerPage),
		"status":   f.Status,
		"order_id": query.OmitZero(f.OrderID),
	}
}
