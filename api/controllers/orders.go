package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/api/validators"
	"github.com/angelmondragon/sellerdash/internal/orders"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func OrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "orders")
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

		filter := orders.Filter{
			Page:    page,
			PerPage: perPage,
			Status:  r.URL.Query().Get("status"),
			Search:  strings.TrimSpace(r.URL.Query().Get("search")),
			From:    from,
			To:      to,
		}
		responses.WriteEnvelope(w, svc.List(r.Context(), filter, upstream(w, r)...))
	}
}

func OrdersGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "orders")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Get(r.Context(), id, upstream(w, r)...))
	}
}

func OrdersUpdateStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "orders")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		var body orders.StatusInput
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.UpdateStatus(r.Context(), id, body, upstream(w, r)...))
	}
}
