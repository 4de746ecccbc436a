package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/subscriptions"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func SubscriptionCurrent(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "subscriptions")
			return
		}
		responses.WriteEnvelope(w, svc.Current(r.Context(), upstream(w, r)...))
	}
}

func SubscriptionPlans(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "subscriptions")
			return
		}
		responses.WriteEnvelope(w, svc.Plans(r.Context(), upstream(w, r)...))
	}
}

// SubscriptionCancel accepts an empty body when no reason is given.
func SubscriptionCancel(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "subscriptions")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}

		var body subscriptions.CancelInput
		if r.ContentLength != 0 && !decodeBody(w, r, logg, &body) {
			return
		}

		responses.WriteEnvelope(w, svc.Cancel(r.Context(), id, body, upstream(w, r)...))
	}
}
