// Package router sets up all HTTP routes and the middleware chain of the
// catalog API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"lingopress/internal/handlers"
	"lingopress/internal/middleware"
)

// Options are the optional parts of the router. Zero values disable them.
type Options struct {
	// Metrics serves /metrics.
	Metrics http.Handler
	// Recorder observes every request.
	Recorder middleware.HTTPRecorder
	// Limiter throttles the catalog endpoints per client.
	Limiter *middleware.RateLimiter
	// TrustProxy takes the client address from X-Forwarded-For or
	// X-Real-IP.
	TrustProxy bool
}

// New creates and returns the configured Chi router.
func New(public *handlers.Public, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	if opts.Recorder != nil {
		r.Use(middleware.Metrics(opts.Recorder))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(opts.Limiter.Middleware)
		}

		// Locale-independent lookups by stable id.
		r.Get("/articles/{id}/slugs", public.ArticleSlugs)
		r.Get("/categories/{id}/slugs", public.CategorySlugs)
		r.Get("/tags/{id}/slugs", public.TagSlugs)

		r.Route("/{locale}", func(r chi.Router) {
			r.Get("/articles", public.Articles)
			r.Get("/articles/featured", public.FeaturedArticles)
			r.Get("/articles/{slug}", public.Article)
			r.Get("/categories", public.Categories)
			r.Get("/categories/{slug}", public.Category)
			r.Get("/categories/by-id/{id}", public.CategoryByID)
			r.Get("/tags", public.Tags)
			r.Get("/tags/{slug}", public.Tag)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
