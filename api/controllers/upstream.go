package controllers

import (
	"math"
	"net/http"
	"sync"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/api/validators"
	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
	"github.com/angelmondragon/sellerdash/pkg/logger"
	"github.com/angelmondragon/sellerdash/pkg/pagination"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// forwardedHeaders are copied from the browser request to every backend call.
var forwardedHeaders = []string{"Cookie", "Authorization", transport.RequestIDHeader, "Accept-Language"}

// upstream returns the per-request options that carry the seller's session to
// the backend and relay the backend's Set-Cookie back to the browser.
// Composite services may invoke the relay from several goroutines.
func upstream(w http.ResponseWriter, r *http.Request) []apiclient.RequestOption {
	var mu sync.Mutex
	return []apiclient.RequestOption{
		apiclient.WithForwardedHeaders(r.Header, forwardedHeaders...),
		apiclient.WithResponseHeaders(func(h http.Header) {
			mu.Lock()
			defer mu.Unlock()
			for _, cookie := range h.Values("Set-Cookie") {
				w.Header().Add("Set-Cookie", cookie)
			}
		}),
	}
}

func unavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger, name string) {
	err := pkgerrors.New(pkgerrors.CodeUnavailable, name+" service unavailable")
	responses.WriteError(r.Context(), logg, w, err)
}

// decodeBody writes the failure itself and reports whether the handler may go on.
func decodeBody(w http.ResponseWriter, r *http.Request, logg *logger.Logger, dest any) bool {
	if err := validators.DecodeJSONBody(w, r, dest); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (int64, bool) {
	id, err := validators.PathInt64(r, "id")
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return 0, false
	}
	return id, true
}

// pageParams reads page/per_page. Oversized values are clamped rather than
// rejected; malformed ones are rejected.
func pageParams(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (int, int, bool) {
	page, err := validators.ParseQueryInt(r, "page", 0, 0, math.MaxInt32)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return 0, 0, false
	}
	perPage, err := validators.ParseQueryInt(r, "per_page", 0, 0, math.MaxInt32)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return 0, 0, false
	}
	return pagination.ClampPage(page), pagination.ClampPerPage(perPage), true
}
