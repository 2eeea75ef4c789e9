package seo

import "github.com/alandalus/library-site/internal/cms"

// StructuredData is a schema.org JSON-LD payload.
type StructuredData map[string]any

// Rating feeds the optional aggregateRating block of a product shape.
type Rating struct {
	Average float64
	Count   int
}

// ProductInfo wraps a product with review data the CMS does not carry.
type ProductInfo struct {
	Product cms.Product
	Rating  *Rating
}

// GenerateStructuredData produces one of the three JSON-LD shapes the
// site emits. Product input may be a cms.Product or a ProductInfo;
// anything else, or an unknown kind, yields nil.
func GenerateStructuredData(kind string, data any) StructuredData {
	switch kind {
	case "organization":
		return StructuredData{
			"@context":      "https://schema.org",
			"@type":         "Organization",
			"name":          SiteNameAr,
			"alternateName": SiteNameEn,
			"url":           BaseURL,
			"logo":          BaseURL + "/logo.png",
			"contactPoint": map[string]any{
				"@type":             "ContactPoint",
				"contactType":       "customer service",
				"availableLanguage": []string{"Arabic", "English"},
			},
			"address": map[string]any{
				"@type":          "PostalAddress",
				"addressCountry": "SA",
			},
		}

	case "product":
		var info ProductInfo
		switch v := data.(type) {
		case cms.Product:
			info.Product = v
		case ProductInfo:
			info = v
		default:
			return nil
		}
		p := info.Product

		images := make([]string, 0, len(p.Images))
		for _, img := range p.Images {
			images = append(images, img.URL)
		}

		availability := "https://schema.org/OutOfStock"
		if p.InStock {
			availability = "https://schema.org/InStock"
		}

		sd := StructuredData{
			"@context":    "https://schema.org",
			"@type":       "Product",
			"name":        p.Name,
			"description": p.Description.Text,
			"image":       images,
			"brand": map[string]any{
				"@type": "Brand",
				"name":  SiteNameAr,
			},
			"offers": map[string]any{
				"@type":         "Offer",
				"price":         p.Price,
				"priceCurrency": defaultCurrency,
				"availability":  availability,
				"seller": map[string]any{
					"@type": "Organization",
					"name":  SiteNameAr,
				},
			},
		}
		if info.Rating != nil {
			sd["aggregateRating"] = map[string]any{
				"@type":       "AggregateRating",
				"ratingValue": info.Rating.Average,
				"reviewCount": info.Rating.Count,
			}
		}
		return sd

	case "website":
		return StructuredData{
			"@context":      "https://schema.org",
			"@type":         "WebSite",
			"name":          SiteNameAr,
			"alternateName": SiteNameEn,
			"url":           BaseURL,
			"potentialAction": map[string]any{
				"@type": "SearchAction",
				"target": map[string]any{
					"@type":       "EntryPoint",
					"urlTemplate": BaseURL + "/products?search={search_term_string}",
				},
				"query-input": "required name=search_term_string",
			},
			"inLanguage": []string{"ar", "en"},
		}
	}
	return nil
}
