package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware applying the configurator's permissive origin
// policy; preflight OPTIONS requests answer 200 with the allowed methods and
// headers and no body.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-Id", "X-Admin-Key"},
		AllowCredentials: false,
		MaxAge:           86400,
	}).Handler
}
