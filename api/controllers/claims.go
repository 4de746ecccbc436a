package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/api/validators"
	"github.com/angelmondragon/sellerdash/internal/claims"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func ClaimsList(svc claims.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "claims")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		orderID, err := validators.ParseQueryInt64(r, "order_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := claims.Filter{Page: page, PerPage: perPage, Status: r.URL.Query().Get("status"), OrderID: orderID}
		responses.WriteEnvelope(w, svc.List(r.Context(), filter, upstream(w, r)...))
	}
}

func ClaimsGet(svc claims.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "claims")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Get(r.Context(), id, upstream(w, r)...))
	}
}

func ClaimsRespond(svc claims.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "claims")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		var body claims.Response
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Respond(r.Context(), id, body, upstream(w, r)...))
	}
}
