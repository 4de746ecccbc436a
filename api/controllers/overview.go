package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/overview"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func OverviewSummary(svc overview.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "overview")
			return
		}
		responses.WriteEnvelope(w, svc.Summary(r.Context(), upstream(w, r)...))
	}
}
