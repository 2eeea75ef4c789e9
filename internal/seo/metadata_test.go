package seo

import (
	"strings"
	"testing"
)

func TestGeneratePageMetadata_TitlePerLocale(t *testing.T) {
	meta := GeneratePageMetadata(Params{Title: "X", Locale: "en"})
	if meta.Title != "X | Al-Andalus Library" {
		t.Errorf("expected english site suffix, got %q", meta.Title)
	}

	meta = GeneratePageMetadata(Params{Title: "X", Locale: "ar"})
	if meta.Title != "X | مكتبة الأندلس" {
		t.Errorf("expected arabic site suffix, got %q", meta.Title)
	}
}

func TestGeneratePageMetadata_NoTitleUsesSiteName(t *testing.T) {
	meta := GeneratePageMetadata(Params{Locale: "en"})
	if meta.Title != SiteNameEn {
		t.Errorf("expected bare site name, got %q", meta.Title)
	}
	if meta.OpenGraph.Title != SiteNameEn {
		t.Errorf("expected og title to fall back to site name, got %q", meta.OpenGraph.Title)
	}
}

func TestGeneratePageMetadata_DefaultLocaleIsArabic(t *testing.T) {
	meta := GeneratePageMetadata(Params{})
	if meta.OpenGraph.SiteName != SiteNameAr {
		t.Errorf("expected arabic default, got %q", meta.OpenGraph.SiteName)
	}
	if meta.OpenGraph.Locale != "ar_SA" {
		t.Errorf("expected ar_SA, got %q", meta.OpenGraph.Locale)
	}
}

func TestGeneratePageMetadata_KeywordsAppendWithoutDedup(t *testing.T) {
	meta := GeneratePageMetadata(Params{Locale: "en", Keywords: []string{"pens", "custom"}})

	defaults := defaultKeywords("en")
	if len(meta.Keywords) != len(defaults)+2 {
		t.Fatalf("expected %d keywords, got %d", len(defaults)+2, len(meta.Keywords))
	}
	// "pens" is already a default and must appear twice.
	count := 0
	for _, k := range meta.Keywords {
		if k == "pens" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected duplicate keyword to survive, found %d occurrences", count)
	}
	if meta.Keywords[len(meta.Keywords)-1] != "custom" {
		t.Errorf("caller keywords must come last, got %q", meta.Keywords[len(meta.Keywords)-1])
	}
}

func TestGeneratePageMetadata_CanonicalAndAlternates(t *testing.T) {
	meta := GeneratePageMetadata(Params{Locale: "en", URL: "/en/products"})

	if meta.Alternates.Canonical != BaseURL+"/en/products" {
		t.Errorf("unexpected canonical: %q", meta.Alternates.Canonical)
	}
	if got := meta.Alternates.Languages["ar"]; got != BaseURL+"/ar/products" {
		t.Errorf("expected arabic alternate from segment swap, got %q", got)
	}
	if got := meta.Alternates.Languages["en"]; got != BaseURL+"/en/products" {
		t.Errorf("expected english alternate unchanged, got %q", got)
	}
}

func TestGeneratePageMetadata_AlternateSwapIsSilentNoOp(t *testing.T) {
	// "/en" has no "/en/" segment, so the swap leaves the URL as-is.
	meta := GeneratePageMetadata(Params{Locale: "en", URL: "/en"})
	if got := meta.Alternates.Languages["ar"]; got != BaseURL+"/en" {
		t.Errorf("expected unchanged URL, got %q", got)
	}
}

func TestGeneratePageMetadata_ProductTypeStaysWebsite(t *testing.T) {
	meta := GeneratePageMetadata(Params{Locale: "en", Type: PageTypeProduct, Price: 99})
	if meta.OpenGraph.Type != "website" {
		t.Errorf("product pages must emit og type website, got %q", meta.OpenGraph.Type)
	}

	meta = GeneratePageMetadata(Params{Locale: "en", Type: PageTypeArticle})
	if meta.OpenGraph.Type != "article" {
		t.Errorf("article type must pass through, got %q", meta.OpenGraph.Type)
	}
}

func TestGeneratePageMetadata_ImageDefaults(t *testing.T) {
	meta := GeneratePageMetadata(Params{Locale: "en"})
	if len(meta.OpenGraph.Images) != 1 || meta.OpenGraph.Images[0].URL != defaultImage {
		t.Errorf("expected default og image, got %+v", meta.OpenGraph.Images)
	}
	if meta.OpenGraph.Images[0].Width != 1200 || meta.OpenGraph.Images[0].Height != 630 {
		t.Errorf("unexpected og image size: %+v", meta.OpenGraph.Images[0])
	}
	if len(meta.Twitter.Images) != 1 || meta.Twitter.Images[0] != defaultImage {
		t.Errorf("expected default twitter image, got %v", meta.Twitter.Images)
	}
	if meta.Twitter.Card != "summary_large_image" {
		t.Errorf("unexpected twitter card: %q", meta.Twitter.Card)
	}
}

func TestRobotsTxt(t *testing.T) {
	out := RobotsTxt("https://example.com")

	for _, want := range []string{
		"User-agent: *",
		"User-agent: Googlebot",
		"Disallow: /private/",
		"Disallow: /admin/",
		"Sitemap: https://example.com/sitemap.xml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("robots.txt missing %q:\n%s", want, out)
		}
	}
}
