package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/auth"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "auth")
			return
		}

		var body auth.Credentials
		if !decodeBody(w, r, logg, &body) {
			return
		}

		responses.WriteEnvelope(w, svc.Login(r.Context(), body, upstream(w, r)...))
	}
}

func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "auth")
			return
		}
		responses.WriteEnvelope(w, svc.Logout(r.Context(), upstream(w, r)...))
	}
}

func AuthMe(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "auth")
			return
		}
		responses.WriteEnvelope(w, svc.Me(r.Context(), upstream(w, r)...))
	}
}
