package questions

import (
	"time"

	"github.com/angelmondragon/sellerdash/pkg/query"
)

// Question is a pre-sale question left on a listing.
type Question struct {
	ID        int64     `json:"id"`
	ListingID string    `json:"listing_id"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Answer    *Answer   `json:"answer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Answer struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Filter struct {
	Page      int
	PerPage   int
	Status    string
	ListingID string
}

func (f Filter) params() query.Params {
	return query.Params{
		"page":       query.OmitZero(f.Page),
		"per_page":   query.OmitZero(f.PerPage),
		"status":     f.Status,
		"listing_id": f.ListingID,
	}
}
