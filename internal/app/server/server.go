// Package server assembles the HTTP router of the URL registry.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/app/handler"
	"github.com/atinyakov/url-registry/internal/app/service"
	"github.com/atinyakov/url-registry/internal/middleware"
)

// Options configures the router.
type Options struct {
	// RequestTimeout bounds every storage call made on behalf of a request.
	RequestTimeout time.Duration

	// Registry receives the request metrics and is served on /metrics.
	// Metrics are disabled when nil.
	Registry *prometheus.Registry
}

func Init(s service.URLServiceIface, logger *zap.Logger, opts Options) *chi.Mux {
	post := handler.NewPost(s, logger, opts.RequestTimeout)
	get := handler.NewGet(s, logger, opts.RequestTimeout)
	del := handler.NewDelete(s, logger, opts.RequestTimeout)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))
	if opts.Registry != nil {
		r.Use(middleware.NewMetrics(opts.Registry).Handler)
	}
	r.Use(middleware.WithCORS())
	r.Use(middleware.WithGZIPRequest)
	r.Use(middleware.WithGZIPResponse)

	r.Post("/urls", post.Create)
	r.Get("/urls", get.List)
	r.Delete("/urls/{id}", del.ByID)
	r.Get("/ping", get.PingDB)

	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{DisableCompression: true}))
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
