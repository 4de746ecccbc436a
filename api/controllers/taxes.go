package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/taxes"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func TaxesList(svc taxes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "taxes")
			return
		}
		q := r.URL.Query()
		responses.WriteEnvelope(w, svc.List(r.Context(), taxes.Filter{Kind: q.Get("kind"), State: q.Get("state")}, upstream(w, r)...))
	}
}

func TaxesCreate(svc taxes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "taxes")
			return
		}
		var body taxes.Input
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Create(r.Context(), body, upstream(w, r)...))
	}
}

func TaxesUpdate(svc taxes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "taxes")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		var body taxes.Input
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Update(r.Context(), id, body, upstream(w, r)...))
	}
}

func TaxesDelete(svc taxes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "taxes")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Delete(r.Context(), id, upstream(w, r)...))
	}
}
