package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/alandalus/library-site/internal/http/handlers"
)

// NewRouter wires the storefront pages, the read-only JSON API and the
// crawler endpoints.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(RateLimit)

	r.Get("/", handlers.RootRedirectHandler)
	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/robots.txt", handlers.RobotsHandler)
	r.Get("/sitemap.xml", handlers.SitemapHandler)

	r.Handle("/static/*", http.FileServer(http.FS(handlers.StaticFS())))

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.ListProductsHandler)
		r.Get("/products/{id}", handlers.GetProductHandler)
	})
	r.Mount("/swagger", httpSwagger.WrapHandler)

	r.Route("/{locale}", func(r chi.Router) {
		r.Use(LocaleMiddleware)
		r.Get("/", handlers.HomeHandler)
		r.Get("/products", handlers.ProductsPageHandler)
		r.Get("/products/{id}", handlers.ProductPageHandler)
	})

	return r
}
