package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/catalog"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "catalog")
			return
		}
		responses.WriteEnvelope(w, svc.Categories(r.Context(), r.URL.Query().Get("parent_id"), upstream(w, r)...))
	}
}

func CatalogAttributes(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "catalog")
			return
		}
		responses.WriteEnvelope(w, svc.Attributes(r.Context(), chi.URLParam(r, "categoryID"), upstream(w, r)...))
	}
}

func CatalogPredictCategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "catalog")
			return
		}
		responses.WriteEnvelope(w, svc.PredictCategory(r.Context(), r.URL.Query().Get("title"), upstream(w, r)...))
	}
}
