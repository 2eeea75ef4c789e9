package seo

import (
	"testing"

	"github.com/alandalus/library-site/internal/cms"
)

func sampleProduct(inStock bool) cms.Product {
	return cms.Product{
		ID:      "p001",
		Name:    "Blue Pen",
		Price:   12,
		InStock: inStock,
		Images: []cms.Image{
			{URL: "/img/pen-1.jpg"},
			{URL: "/img/pen-2.jpg"},
		},
		Description: cms.Description{Text: "A smooth blue pen."},
	}
}

func TestGenerateStructuredData_ProductAvailability(t *testing.T) {
	sd := GenerateStructuredData("product", sampleProduct(true))
	offers := sd["offers"].(map[string]any)
	if offers["availability"] != "https://schema.org/InStock" {
		t.Errorf("expected InStock, got %v", offers["availability"])
	}

	sd = GenerateStructuredData("product", sampleProduct(false))
	offers = sd["offers"].(map[string]any)
	if offers["availability"] != "https://schema.org/OutOfStock" {
		t.Errorf("expected OutOfStock, got %v", offers["availability"])
	}
}

func TestGenerateStructuredData_ProductShape(t *testing.T) {
	sd := GenerateStructuredData("product", sampleProduct(true))

	if sd["@type"] != "Product" {
		t.Errorf("expected @type Product, got %v", sd["@type"])
	}
	if sd["name"] != "Blue Pen" {
		t.Errorf("unexpected name: %v", sd["name"])
	}
	images := sd["image"].([]string)
	if len(images) != 2 || images[0] != "/img/pen-1.jpg" {
		t.Errorf("unexpected images: %v", images)
	}
	offers := sd["offers"].(map[string]any)
	if offers["price"] != float64(12) {
		t.Errorf("price must be the list price, got %v", offers["price"])
	}
	if offers["priceCurrency"] != "SAR" {
		t.Errorf("unexpected currency: %v", offers["priceCurrency"])
	}
	if _, ok := sd["aggregateRating"]; ok {
		t.Error("aggregateRating must be absent without review data")
	}
}

func TestGenerateStructuredData_ProductWithRating(t *testing.T) {
	sd := GenerateStructuredData("product", ProductInfo{
		Product: sampleProduct(true),
		Rating:  &Rating{Average: 4.5, Count: 12},
	})

	rating, ok := sd["aggregateRating"].(map[string]any)
	if !ok {
		t.Fatal("expected aggregateRating block")
	}
	if rating["ratingValue"] != 4.5 || rating["reviewCount"] != 12 {
		t.Errorf("unexpected rating block: %v", rating)
	}
}

func TestGenerateStructuredData_Organization(t *testing.T) {
	sd := GenerateStructuredData("organization", nil)

	if sd["@type"] != "Organization" {
		t.Errorf("expected @type Organization, got %v", sd["@type"])
	}
	if sd["name"] != SiteNameAr || sd["alternateName"] != SiteNameEn {
		t.Errorf("unexpected names: %v / %v", sd["name"], sd["alternateName"])
	}
	if sd["url"] != BaseURL {
		t.Errorf("unexpected url: %v", sd["url"])
	}
}

func TestGenerateStructuredData_Website(t *testing.T) {
	sd := GenerateStructuredData("website", nil)

	if sd["@type"] != "WebSite" {
		t.Errorf("expected @type WebSite, got %v", sd["@type"])
	}
	action := sd["potentialAction"].(map[string]any)
	if action["@type"] != "SearchAction" {
		t.Errorf("expected SearchAction, got %v", action["@type"])
	}
}

func TestGenerateStructuredData_UnknownInputs(t *testing.T) {
	if sd := GenerateStructuredData("video", nil); sd != nil {
		t.Errorf("unknown kind must yield nil, got %v", sd)
	}
	if sd := GenerateStructuredData("product", "not a product"); sd != nil {
		t.Errorf("wrong data type must yield nil, got %v", sd)
	}
}
