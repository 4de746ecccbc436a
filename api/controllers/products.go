package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/products"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func ProductsList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "products")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}

		q := r.URL.Query()
		filter := products.Filter{
			Page:       page,
			PerPage:    perPage,
			Search:     strings.TrimSpace(q.Get("search")),
			Status:     q.Get("status"),
			CategoryID: q.Get("category_id"),
			Sort:       q.Get("sort"),
		}
		responses.WriteEnvelope(w, svc.List(r.Context(), filter, upstream(w, r)...))
	}
}

func ProductsGet(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "products")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Get(r.Context(), id, upstream(w, r)...))
	}
}

func ProductsCreate(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "products")
			return
		}
		var body products.Input
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Create(r.Context(), body, upstream(w, r)...))
	}
}

func ProductsUpdate(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "products")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		var body products.Input
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Update(r.Context(), id, body, upstream(w, r)...))
	}
}

func ProductsDelete(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "products")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Delete(r.Context(), id, upstream(w, r)...))
	}
}

func ProductsRecalculateAverageCost(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "products")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.RecalculateAverageCost(r.Context(), id, upstream(w, r)...))
	}
}
