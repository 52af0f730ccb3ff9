package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS allows any origin to call the API with the methods and headers
// a browser client needs.
func WithCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})
}
