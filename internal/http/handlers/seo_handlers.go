package handlers

import (
	"log"
	"net/http"

	"github.com/alandalus/library-site/internal/seo"
)

// SitemapHandler serves the sitemap built from the live catalog. A
// failed fetch degrades to the static pages inside the generator.
func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	sm := &seo.Sitemap{BaseURL: baseURL, Source: productSource}
	out, err := sm.XML(r.Context())
	if err != nil {
		log.Printf("sitemap: failed to render: %v", err)
		http.Error(w, "could not render sitemap", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(out)
}

// RobotsHandler serves the fixed robots policy.
func RobotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(seo.RobotsTxt(baseURL)))
}
