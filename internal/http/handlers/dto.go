package handlers

import (
	"fmt"

	"github.com/alandalus/library-site/internal/catalog"
	"github.com/alandalus/library-site/internal/cms"
	"github.com/alandalus/library-site/internal/i18n"
	"github.com/alandalus/library-site/internal/whatsapp"
)

type ImageResponse struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type ProductResponse struct {
	ID             string          `json:"id"`
	URL            string          `json:"url"`
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	Sale           float64         `json:"sale,omitempty"`
	EffectivePrice float64         `json:"effective_price"`
	Images         []ImageResponse `json:"images"`
	InStock        bool            `json:"in_stock"`
	CreatedAt      string          `json:"created_at"`
	Description    string          `json:"description,omitempty"`
	WhatsAppURL    string          `json:"whatsapp_url"`
}

type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Start      int `json:"start,omitempty"`
	End        int `json:"end,omitempty"`
}

type ProductPageResult struct {
	Data  []ProductResponse `json:"data"`
	Meta  Meta              `json:"meta"`
	Pager catalog.Pager     `json:"pager"`
}

type ProductDetailResult struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toProductResponse(p cms.Product, locale string) ProductResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{ID: img.ID, URL: img.URL, Width: img.Width, Height: img.Height})
	}
	message := fmt.Sprintf(i18n.T(locale, "whatsapp.productMessage"), p.Name)
	return ProductResponse{
		ID:             p.ID,
		URL:            fmt.Sprintf("/%s/products/%s", locale, p.ID),
		Name:           p.Name,
		Price:          p.Price,
		Sale:           p.Sale,
		EffectivePrice: p.EffectivePrice(),
		Images:         images,
		InStock:        p.InStock,
		CreatedAt:      p.CreatedAt,
		Description:    p.Description.Text,
		WhatsAppURL:    whatsapp.Link(whatsAppPhone, message),
	}
}

func toProductResponses(products []cms.Product, locale string) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p, locale)
	}
	return out
}
