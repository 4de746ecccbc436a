package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/billing"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func BillingInvoices(svc billing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "billing")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		q := r.URL.Query()
		filter := billing.Filter{Page: page, PerPage: perPage, Status: q.Get("status"), Period: q.Get("period")}
		responses.WriteEnvelope(w, svc.Invoices(r.Context(), filter, upstream(w, r)...))
	}
}

func BillingInvoice(svc billing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "billing")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Invoice(r.Context(), id, upstream(w, r)...))
	}
}

func BillingSummary(svc billing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "billing")
			return
		}
		responses.WriteEnvelope(w, svc.Summary(r.Context(), r.URL.Query().Get("period"), upstream(w, r)...))
	}
}
