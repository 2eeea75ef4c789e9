package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"log"
	"time"

	"github.com/alandalus/library-site/internal/cms"
	"github.com/alandalus/library-site/internal/i18n"
)

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

// Sitemap builds the sitemap from the configured base URL and the
// live catalog.
type Sitemap struct {
	BaseURL string
	Source  cms.ProductSource
}

// Entries returns the locale roots and listing pages followed by one
// entry per product per locale. A failed catalog fetch is logged and
// leaves only the static pages; the sitemap never errors out.
func (s *Sitemap) Entries(ctx context.Context) []SitemapEntry {
	now := time.Now().UTC().Format(time.RFC3339)

	entries := make([]SitemapEntry, 0, 4)
	for _, locale := range i18n.Locales {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/%s", s.BaseURL, locale),
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   1,
		})
	}
	for _, locale := range i18n.Locales {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/%s/products", s.BaseURL, locale),
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   0.8,
		})
	}

	products, err := s.Source.FetchProducts(ctx)
	if err != nil {
		log.Printf("sitemap: catalog fetch failed, emitting static pages only: %v", err)
		return entries
	}

	for _, p := range products {
		for _, locale := range i18n.Locales {
			entries = append(entries, SitemapEntry{
				Loc:        fmt.Sprintf("%s/%s/products/%s", s.BaseURL, locale, p.ID),
				LastMod:    p.LastModified(),
				ChangeFreq: "weekly",
				Priority:   0.6,
			})
		}
	}
	return entries
}

// XML renders the url set with the standard sitemap namespace.
func (s *Sitemap) XML(ctx context.Context) ([]byte, error) {
	set := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  s.Entries(ctx),
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
