package subscriptions

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is the seller's active plan.
type Subscription struct {
	ID        int64           `json:"id"`
	PlanID    int64           `json:"plan_id,omitempty"`
	PlanName  string          `json:"plan_name,omitempty"`
	Status    string          `json:"status,omitempty"`
	Price     decimal.Decimal `json:"price"`
	StartedAt *time.Time      `json:"started_at,omitempty"`
	RenewsAt  *time.Time      `json:"renews_at,omitempty"`
}

// Plan is one purchasable subscription tier.
type Plan struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Interval    string          `json:"interval"`
	MaxListings int             `json:"max_listings"`
	Features    []string        `json:"features"`
}

// CancelInput carries the optional reason sent when cancelling.
type CancelInput struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}
