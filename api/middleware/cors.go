package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// CORS lets the dashboard origins call the gateway with their session cookie.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", transport.RequestIDHeader, "X-Requested-With"},
		ExposedHeaders:   []string{transport.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
