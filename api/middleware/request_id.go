package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/sellerdash/pkg/logger"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// RequestID makes sure every inbound request carries an id. It is echoed to
// the browser and left on the request headers so backend calls reuse it.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(transport.RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
				r.Header.Set(transport.RequestIDHeader, reqID)
			}

			w.Header().Set(transport.RequestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
