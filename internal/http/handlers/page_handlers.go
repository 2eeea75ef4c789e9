package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/alandalus/library-site/internal/catalog"
	"github.com/alandalus/library-site/internal/cms"
	"github.com/alandalus/library-site/internal/i18n"
	"github.com/alandalus/library-site/internal/seo"
	"github.com/alandalus/library-site/internal/whatsapp"
)

// basePage is the data every template shares.
type basePage struct {
	Locale      string
	Meta        seo.PageMetadata
	JSONLD      []template.JS
	WhatsAppURL string // site-wide contact CTA
}

func newBasePage(locale string, meta seo.PageMetadata) basePage {
	return basePage{
		Locale:      locale,
		Meta:        meta,
		WhatsAppURL: whatsapp.Link(whatsAppPhone, i18n.T(locale, "whatsapp.defaultMessage")),
	}
}

type homePage struct {
	basePage
	Featured []ProductResponse
}

// HomeHandler renders the locale homepage with the newest products as
// the featured row.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")

	products, err := productSource.FetchProducts(r.Context())
	if err != nil {
		log.Printf("homepage: catalog fetch failed: %v", err)
		products = nil
	}
	catalog.SortProducts(products, catalog.SortNewest, locale)
	if len(products) > 6 {
		products = products[:6]
	}

	meta := seo.GeneratePageMetadata(seo.Params{
		Description: i18n.T(locale, "home.description"),
		URL:         "/" + locale,
		Locale:      locale,
	})

	page := homePage{
		basePage: newBasePage(locale, meta),
		Featured: toProductResponses(products, locale),
	}
	page.JSONLD = []template.JS{
		jsonLD(seo.GenerateStructuredData("organization", nil)),
		jsonLD(seo.GenerateStructuredData("website", nil)),
	}
	render(w, http.StatusOK, "home.gohtml", page)
}

type pagerButton struct {
	N       int
	URL     string
	Current bool
}

type productsPage struct {
	basePage
	View        catalog.PageView
	Items       []ProductResponse
	Query       string
	Sort        catalog.SortKey
	SortKeys    []catalog.SortKey
	Buttons     []pagerButton
	PrevURL     string
	NextURL     string
	LastPageURL string
	Ellipsis    bool
	LastPage    int
}

// listingURL rebuilds the listing path for a page number, keeping the
// current query and sort.
func listingURL(locale string, state catalog.ViewState, page int) string {
	v := url.Values{}
	if state.Query != "" {
		v.Set("query", state.Query)
	}
	if state.Sort != catalog.SortNewest {
		v.Set("sort", string(state.Sort))
	}
	if page > 1 {
		v.Set("page", fmt.Sprintf("%d", page))
	}
	path := "/" + locale + "/products"
	if enc := v.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// ProductsPageHandler renders the listing: filter, sort and page come
// from the URL and replay through the view-model reducer.
func ProductsPageHandler(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	q := r.URL.Query()
	state := catalog.StateFromQuery(q.Get("query"), q.Get("sort"), q.Get("page"))

	products, err := productSource.FetchProducts(r.Context())
	if err != nil {
		log.Printf("products page: catalog fetch failed: %v", err)
		products = nil
	}
	view := catalog.Apply(products, state, locale)

	meta := seo.GeneratePageMetadata(seo.Params{
		Title:       i18n.T(locale, "products.title"),
		Description: i18n.T(locale, "products.description"),
		Keywords:    listingKeywords(locale),
		URL:         "/" + locale + "/products",
		Locale:      locale,
	})

	page := productsPage{
		basePage: newBasePage(locale, meta),
		View:     view,
		Items:    toProductResponses(view.Items, locale),
		Query:    state.Query,
		Sort:     state.Sort,
		SortKeys: []catalog.SortKey{
			catalog.SortNewest, catalog.SortOldest,
			catalog.SortPriceLowToHigh, catalog.SortPriceHighToLow,
			catalog.SortNameAtoZ, catalog.SortNameZtoA,
		},
		Ellipsis: view.Pager.Ellipsis,
		LastPage: view.Pager.LastPage,
	}
	for _, n := range view.Pager.Pages {
		page.Buttons = append(page.Buttons, pagerButton{
			N:       n,
			URL:     listingURL(locale, state, n),
			Current: n == state.Page,
		})
	}
	if state.Page > 1 {
		page.PrevURL = listingURL(locale, state, state.Page-1)
	}
	if state.Page < view.TotalPages {
		page.NextURL = listingURL(locale, state, state.Page+1)
	}
	if view.Pager.LastPage != 0 {
		page.LastPageURL = listingURL(locale, state, view.Pager.LastPage)
	}
	render(w, http.StatusOK, "products.gohtml", page)
}

func listingKeywords(locale string) []string {
	if locale == "ar" {
		return []string{"منتجات مكتبية", "أدوات الكتابة", "قرطاسية", "دفاتر", "أقلام", "لوازم مدرسية", "حقائب", "أدوات هندسة"}
	}
	return []string{"office products", "writing tools", "stationery", "notebooks", "pens", "school supplies", "bags", "engineering tools"}
}

type productPage struct {
	basePage
	Product ProductResponse
	InStock bool
	Related []ProductResponse
}

// ProductPageHandler renders a product detail page with its JSON-LD
// payload and up to four related products. Unknown ids get a localized
// not-found view rather than a bare error page.
func ProductPageHandler(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	id := chi.URLParam(r, "id")

	products, err := productSource.FetchProducts(r.Context())
	if err != nil {
		log.Printf("product page: catalog fetch failed: %v", err)
		meta := seo.GeneratePageMetadata(seo.Params{
			Title:       i18n.T(locale, "product.errorTitle"),
			Description: i18n.T(locale, "product.errorDesc"),
			URL:         fmt.Sprintf("/%s/products/%s", locale, id),
			Locale:      locale,
		})
		renderNotFound(w, locale, meta)
		return
	}

	product, ok := catalog.FindByID(products, id)
	if !ok {
		meta := seo.GeneratePageMetadata(seo.Params{
			Title:       i18n.T(locale, "product.notFound.title"),
			Description: i18n.T(locale, "product.notFound.desc"),
			URL:         fmt.Sprintf("/%s/products/%s", locale, id),
			Locale:      locale,
		})
		renderNotFound(w, locale, meta)
		return
	}

	meta := seo.GeneratePageMetadata(seo.Params{
		Title:        product.Name,
		Description:  productDescription(product.Description.Text, product.Name, product.SortPrice(), locale),
		Keywords:     productKeywords(product.Name, locale),
		Image:        firstImageURL(product.Images),
		URL:          fmt.Sprintf("/%s/products/%s", locale, id),
		Locale:       locale,
		Type:         seo.PageTypeProduct,
		Price:        product.SortPrice(),
		Availability: availabilityOf(product.InStock),
		ModifiedTime: product.CreatedAt,
	})

	page := productPage{
		basePage: newBasePage(locale, meta),
		Product:  toProductResponse(product, locale),
		InStock:  product.InStock,
		Related:  toProductResponses(catalog.Related(products, id), locale),
	}
	page.JSONLD = []template.JS{jsonLD(seo.GenerateStructuredData("product", product))}
	render(w, http.StatusOK, "product.gohtml", page)
}

// productDescription falls back to a localized sales line when the CMS
// record has no text. The quoted price is the sale-or-price value the
// listing sort also uses.
func productDescription(text, name string, price float64, locale string) string {
	if text != "" {
		return text
	}
	if locale == "ar" {
		return fmt.Sprintf("اكتشف %s بسعر %g ريال سعودي في مكتبة الأندلس", name, price)
	}
	return fmt.Sprintf("Discover %s for %g SAR at Al-Andalus Library", name, price)
}

func productKeywords(name, locale string) []string {
	if locale == "ar" {
		return []string{name, "أدوات مكتبية", "قرطاسية", "لوازم مدرسية", "مكتبة الأندلس"}
	}
	return []string{name, "office supplies", "stationery", "school supplies", "Al-Andalus Library"}
}

func firstImageURL(images []cms.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func availabilityOf(inStock bool) string {
	if inStock {
		return seo.AvailabilityInStock
	}
	return seo.AvailabilityOutOfStock
}

type notFoundPage struct {
	basePage
}

func renderNotFound(w http.ResponseWriter, locale string, meta seo.PageMetadata) {
	render(w, http.StatusNotFound, "notfound.gohtml", notFoundPage{basePage: newBasePage(locale, meta)})
}

// NotFoundLocaleHandler serves requests whose locale segment is not
// supported. The site default locale carries the copy.
func NotFoundLocaleHandler(w http.ResponseWriter, r *http.Request) {
	locale := i18n.DefaultLocale
	meta := seo.GeneratePageMetadata(seo.Params{
		Title:       i18n.T(locale, "notFound.title"),
		Description: i18n.T(locale, "notFound.desc"),
		Locale:      locale,
	})
	renderNotFound(w, locale, meta)
}

// RootRedirectHandler sends the bare root to the default locale.
func RootRedirectHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+i18n.DefaultLocale, http.StatusTemporaryRedirect)
}
