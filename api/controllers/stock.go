package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/api/validators"
	"github.com/angelmondragon/sellerdash/internal/stock"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func StockList(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "stock")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		lowStock, err := validators.ParseQueryBool(r, "low_stock")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := stock.Filter{
			Page:     page,
			PerPage:  perPage,
			Search:   strings.TrimSpace(r.URL.Query().Get("search")),
			LowStock: lowStock,
		}
		responses.WriteEnvelope(w, svc.List(r.Context(), filter, upstream(w, r)...))
	}
}

func StockAdjust(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "stock")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		var body stock.AdjustInput
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Adjust(r.Context(), id, body, upstream(w, r)...))
	}
}

func StockMovements(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "stock")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		from, err := validators.ParseQueryTime(r, "from")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.ParseQueryTime(r, "to")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := stock.MovementFilter{Page: page, PerPage: perPage, Reason: r.URL.Query().Get("reason"), From: from, To: to}
		responses.WriteEnvelope(w, svc.Movements(r.Context(), id, filter, upstream(w, r)...))
	}
}
