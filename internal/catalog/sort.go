package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alandalus/library-site/internal/cms"
)

// SortKey enumerates the listing sort orders.
type SortKey string

const (
	SortNewest         SortKey = "newest"
	SortOldest         SortKey = "oldest"
	SortPriceLowToHigh SortKey = "priceLowToHigh"
	SortPriceHighToLow SortKey = "priceHighToLow"
	SortNameAtoZ       SortKey = "nameAtoZ"
	SortNameZtoA       SortKey = "nameZtoA"
)

// ParseSortKey maps a query parameter to a SortKey, defaulting to
// newest for anything unknown.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortPriceLowToHigh, SortPriceHighToLow, SortNameAtoZ, SortNameZtoA:
		return SortKey(s)
	default:
		return SortNewest
	}
}

func collatorFor(locale string) *collate.Collator {
	tag := language.English
	if locale == "ar" {
		tag = language.Arabic
	}
	return collate.New(tag)
}

// SortProducts orders products in place, stably. Price orderings
// compare on Product.SortPrice; names use locale collation; newest and
// oldest fall back to the id, which the CMS hands out in creation
// order.
func SortProducts(products []cms.Product, key SortKey, locale string) {
	switch key {
	case SortPriceLowToHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SortPrice() < products[j].SortPrice()
		})
	case SortPriceHighToLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SortPrice() > products[j].SortPrice()
		})
	case SortNameAtoZ:
		col := collatorFor(locale)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNameZtoA:
		col := collatorFor(locale)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) > 0
		})
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID < products[j].ID
		})
	default: // SortNewest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}
