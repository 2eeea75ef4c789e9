package cms

// Image is one gallery entry. Gallery order is display order; index 0
// is the image shown by default.
type Image struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"fileName,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type Description struct {
	Text string `json:"text"`
}

// Product mirrors a CMS catalog record. The CMS owns the full
// lifecycle; this side only ever reads snapshots. ID is the sole key
// for routing, de-duplication and related-product exclusion.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Sale        float64     `json:"sale,omitempty"` // discount percentage off Price, despite the name
	Images      []Image     `json:"images"`
	InStock     bool        `json:"inStock"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
	Description Description `json:"description"`
}

// EffectivePrice applies the sale percentage when one is set.
func (p Product) EffectivePrice() float64 {
	if p.Sale > 0 {
		return p.Price * (100 - p.Sale) / 100
	}
	return p.Price
}

// HasDiscount reports whether a sale price should be shown next to the
// struck-through base price.
func (p Product) HasDiscount() bool {
	return p.Sale > 0
}

// SortPrice is the comparison key the price orderings use: the raw sale
// value when set, otherwise the price. The storefront has always sorted
// this way, so it stays even though it ignores the discount math.
func (p Product) SortPrice() float64 {
	if p.Sale != 0 {
		return p.Sale
	}
	return p.Price
}

// LastModified is the recency proxy for sitemap output: updatedAt when
// the CMS provides one, else createdAt.
func (p Product) LastModified() string {
	if p.UpdatedAt != "" {
		return p.UpdatedAt
	}
	return p.CreatedAt
}
