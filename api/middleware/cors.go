package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/techstore3d/techstore-backend/pkg/config"
)

// CORS returns middleware that applies the configured allowed origin policy.
// The storefront defaults to a permissive wildcard so local frontends can
// talk to the API without extra setup.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
