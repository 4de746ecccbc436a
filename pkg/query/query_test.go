package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEncodeDropsAbsentAndEmptyValues(t *testing.T) {
	var nilStr *string
	empty := ""
	status := "paid"
	page := 2

	values := Params{
		"status":    &status,
		"page":      &page,
		"search":    "",
		"seller":    nil,
		"cursor":    nilStr,
		"tag":       &empty,
		"only_open": false,
	}.Encode()

	if got := values.Encode(); got != "only_open=false&page=2&status=paid" {
		t.Fatalf("unexpected query %s", got)
	}
	for _, key := range []string{"search", "seller", "cursor", "tag"} {
		if _, present := values[key]; present {
			t.Fatalf("key %s should be absent", key)
		}
	}
}

func TestEncodeFormatsSlicesTimesAndDecimals(t *testing.T) {
	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	values := Params{
		"status":    []string{"paid", "", "shipped"},
		"since":     since,
		"until":     time.Time{},
		"min_price": decimal.RequireFromString("10.50"),
		"ratio":     0.25,
	}.Encode()

	if got := values["status"]; len(got) != 2 || got[0] != "paid" || got[1] != "shipped" {
		t.Fatalf("unexpected status values %v", got)
	}
	if got := values.Get("since"); got != "2026-03-01T15:00:00Z" {
		t.Fatalf("unexpected since %s", got)
	}
	if _, present := values["until"]; present {
		t.Fatalf("zero time should be dropped")
	}
	if values.Get("min_price") != "10.5" || values.Get("ratio") != "0.25" {
		t.Fatalf("unexpected numbers %v", values)
	}
}

func TestEncodeEmptyParams(t *testing.T) {
	if got := (Params{}).Encode().Encode(); got != "" {
		t.Fatalf("expected empty query, got %s", got)
	}
	if got := Params(nil).Encode().Encode(); got != "" {
		t.Fatalf("expected empty query for nil params, got %s", got)
	}
}

func TestMerge(t *testing.T) {
	base := Params{"page": 1, "per_page": 20}
	merged := base.Merge(Params{"page": 3})
	if merged["page"] != 3 || merged["per_page"] != 20 {
		t.Fatalf("unexpected merged params %v", merged)
	}
	if base["page"] != 1 {
		t.Fatalf("merge mutated the base params")
	}
}

func TestOmitZero(t *testing.T) {
	values := Params{"page": OmitZero(0), "per_page": OmitZero(50), "search": OmitZero("")}.Encode()
	if got := values.Encode(); got != "per_page=50" {
		t.Fatalf("unexpected query %s", got)
	}
}
