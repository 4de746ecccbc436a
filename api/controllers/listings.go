package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/api/validators"
	"github.com/angelmondragon/sellerdash/internal/listings"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func ListingsList(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "listings")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		productID, err := validators.ParseQueryInt64(r, "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		q := r.URL.Query()
		filter := listings.Filter{
			Page:      page,
			PerPage:   perPage,
			Status:    q.Get("status"),
			Search:    strings.TrimSpace(q.Get("search")),
			ProductID: productID,
		}
		responses.WriteEnvelope(w, svc.List(r.Context(), filter, upstream(w, r)...))
	}
}

func ListingsGet(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "listings")
			return
		}
		responses.WriteEnvelope(w, svc.Get(r.Context(), chi.URLParam(r, "listingID"), upstream(w, r)...))
	}
}

func ListingsUpdatePrice(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "listings")
			return
		}
		var body listings.PriceInput
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.UpdatePrice(r.Context(), chi.URLParam(r, "listingID"), body.Price, upstream(w, r)...))
	}
}

func ListingsPause(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "listings")
			return
		}
		responses.WriteEnvelope(w, svc.Pause(r.Context(), chi.URLParam(r, "listingID"), upstream(w, r)...))
	}
}

func ListingsActivate(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "listings")
			return
		}
		responses.WriteEnvelope(w, svc.Activate(r.Context(), chi.URLParam(r, "listingID"), upstream(w, r)...))
	}
}
