package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alandalus/library-site/internal/catalog"
	"github.com/alandalus/library-site/internal/i18n"
)

func apiLocale(r *http.Request) string {
	locale := r.URL.Query().Get("locale")
	if !i18n.Supported(locale) {
		return i18n.LocaleEnglish
	}
	return locale
}

// ListProductsHandler godoc
// @Summary List a catalog page
// @Description Filtered, sorted and paginated slice of the catalog. Changing query or sort implies page 1.
// @Tags catalog
// @Produce json
// @Param query query string false "Name substring filter (case-insensitive)"
// @Param sort query string false "Sort key" Enums(newest, oldest, priceLowToHigh, priceHighToLow, nameAtoZ, nameZtoA)
// @Param page query int false "Page number (1-based)"
// @Param locale query string false "Locale driving name collation" Enums(ar, en)
// @Success 200 {object} ProductPageResult
// @Failure 502 {object} ErrorResponse
// @Router /api/products [get]
func ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	locale := apiLocale(r)
	q := r.URL.Query()
	state := catalog.StateFromQuery(q.Get("query"), q.Get("sort"), q.Get("page"))

	products, err := productSource.FetchProducts(r.Context())
	if err != nil {
		log.Printf("api: catalog fetch failed: %v", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "could not fetch catalog"})
		return
	}

	view := catalog.Apply(products, state, locale)
	resp := ProductPageResult{
		Data: toProductResponses(view.Items, locale),
		Meta: Meta{
			Total:      view.Total,
			Page:       view.Page,
			TotalPages: view.TotalPages,
			Start:      view.Start,
			End:        view.End,
		},
		Pager: view.Pager,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("api: failed to encode response: %v", err)
	}
}

// GetProductHandler godoc
// @Summary Get a product with related items
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Param locale query string false "Locale for localized fields" Enums(ar, en)
// @Success 200 {object} ProductDetailResult
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductHandler(w http.ResponseWriter, r *http.Request) {
	locale := apiLocale(r)
	id := chi.URLParam(r, "id")

	products, err := productSource.FetchProducts(r.Context())
	if err != nil {
		log.Printf("api: catalog fetch failed: %v", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "could not fetch catalog"})
		return
	}

	product, ok := catalog.FindByID(products, id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	resp := ProductDetailResult{
		Product: toProductResponse(product, locale),
		Related: toProductResponses(catalog.Related(products, id), locale),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("api: failed to encode response: %v", err)
	}
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
