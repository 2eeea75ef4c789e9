// Package seo builds page metadata, JSON-LD structured data, the
// sitemap and the robots payload for the storefront.
package seo

import "strings"

// Site identity. The canonical host is fixed; the configured BASE_URL
// only feeds the sitemap and robots output.
const (
	SiteNameAr = "مكتبة الأندلس"
	SiteNameEn = "Al-Andalus Library"

	BaseURL = "https://alandalus-library.com"

	defaultImage    = "/og-image.jpg"
	defaultCurrency = "SAR"
)

// PageType is the logical page kind. Product pages still emit Open
// Graph type "website"; product facts travel in JSON-LD instead.
type PageType string

const (
	PageTypeWebsite PageType = "website"
	PageTypeArticle PageType = "article"
	PageTypeProduct PageType = "product"
)

// Availability values accepted by Params.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
)

// Params are the inputs to GeneratePageMetadata. Everything is
// optional; zero values fall back to site defaults.
type Params struct {
	Title         string
	Description   string
	Keywords      []string
	Image         string
	URL           string // path, prefixed with the base URL
	Locale        string
	Type          PageType
	PublishedTime string
	ModifiedTime  string
	Author        string
	Price         float64
	Currency      string
	Availability  string
}

type OpenGraphImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

type OpenGraph struct {
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	URL           string           `json:"url"`
	SiteName      string           `json:"siteName"`
	Locale        string           `json:"locale"`
	Type          string           `json:"type"`
	Images        []OpenGraphImage `json:"images"`
	PublishedTime string           `json:"publishedTime,omitempty"`
	ModifiedTime  string           `json:"modifiedTime,omitempty"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
}

type Alternates struct {
	Canonical string            `json:"canonical"`
	Languages map[string]string `json:"languages"`
}

type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// PageMetadata is the renderable head block for a page.
type PageMetadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Keywords    []string    `json:"keywords"`
	Authors     []string    `json:"authors"`
	Creator     string      `json:"creator"`
	Publisher   string      `json:"publisher"`
	Alternates  Alternates  `json:"alternates"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
	Robots      Robots      `json:"robots"`
}

func siteName(locale string) string {
	if locale == "ar" {
		return SiteNameAr
	}
	return SiteNameEn
}

func defaultKeywords(locale string) []string {
	if locale == "ar" {
		return []string{
			"مكتبة الأندلس",
			"أدوات مكتبية",
			"قرطاسية",
			"لوازم مدرسية",
			"أقلام",
			"دفاتر",
			"مستلزمات تعليمية",
			"أدوات الكتابة",
			"حقائب مدرسية",
			"السعودية",
		}
	}
	return []string{
		"Al-Andalus Library",
		"office supplies",
		"stationery",
		"school supplies",
		"pens",
		"notebooks",
		"educational materials",
		"writing tools",
		"school bags",
		"Saudi Arabia",
	}
}

// GeneratePageMetadata maps page parameters to a head block. The page
// title becomes "Title | SiteName" when a title is given, else just
// the site name. Caller keywords are appended after the per-locale
// defaults without de-duplication. Alternate-language URLs come from a
// literal /en/ <-> /ar/ segment swap and are left unchanged when the
// canonical URL does not contain the segment.
func GeneratePageMetadata(p Params) PageMetadata {
	locale := p.Locale
	if locale == "" {
		locale = "ar"
	}
	name := siteName(locale)

	fullURL := BaseURL
	if p.URL != "" {
		fullURL = BaseURL + p.URL
	}

	title := name
	if p.Title != "" {
		title = p.Title + " | " + name
	}

	image := p.Image
	if image == "" {
		image = defaultImage
	}

	author := p.Author
	if author == "" {
		author = name
	}

	ogLocale := "en_US"
	if locale == "ar" {
		ogLocale = "ar_SA"
	}

	// Product pages keep Open Graph type "website": the product-specific
	// Open Graph fields are a no-op and JSON-LD carries the facts.
	ogType := string(p.Type)
	if p.Type == "" || p.Type == PageTypeProduct {
		ogType = string(PageTypeWebsite)
	}

	keywords := append(append([]string{}, defaultKeywords(locale)...), p.Keywords...)

	ogTitle := p.Title
	if ogTitle == "" {
		ogTitle = name
	}

	return PageMetadata{
		Title:       title,
		Description: p.Description,
		Keywords:    keywords,
		Authors:     []string{author},
		Creator:     name,
		Publisher:   name,
		Alternates: Alternates{
			Canonical: fullURL,
			Languages: map[string]string{
				"ar": strings.Replace(fullURL, "/en/", "/ar/", 1),
				"en": strings.Replace(fullURL, "/ar/", "/en/", 1),
			},
		},
		OpenGraph: OpenGraph{
			Title:       ogTitle,
			Description: p.Description,
			URL:         fullURL,
			SiteName:    name,
			Locale:      ogLocale,
			Type:        ogType,
			Images: []OpenGraphImage{
				{URL: image, Width: 1200, Height: 630, Alt: ogTitle},
			},
			PublishedTime: p.PublishedTime,
			ModifiedTime:  p.ModifiedTime,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       ogTitle,
			Description: p.Description,
			Images:      []string{image},
		},
		Robots: Robots{Index: true, Follow: true},
	}
}
