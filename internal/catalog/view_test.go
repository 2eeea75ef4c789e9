package catalog

import (
	"fmt"
	"testing"

	"github.com/alandalus/library-site/internal/cms"
)

func sampleProducts() []cms.Product {
	return []cms.Product{
		{ID: "p03", Name: "Blue Notebook", Price: 100},
		{ID: "p01", Name: "Fountain Pen", Price: 500, Sale: 10},
		{ID: "p02", Name: "School Bag", Price: 250},
		{ID: "p04", Name: "Pencil Case", Price: 40},
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, "PEN")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "Fountain Pen" || got[1].Name != "Pencil Case" {
		t.Errorf("unexpected matches, order must follow input: %v, %v", got[0].Name, got[1].Name)
	}
}

func TestFilter_EmptyQueryKeepsAllInOrder(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, "")
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
	for i := range products {
		if got[i].ID != products[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, products[i].ID, got[i].ID)
		}
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleProducts(), "typewriter")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestSortProducts_PriceUsesRawSaleAsKey(t *testing.T) {
	// The discounted pen (sale=10, price=500) must sort on key 10, not
	// on the computed 450.
	products := []cms.Product{
		{ID: "a", Name: "Notebook", Price: 100},
		{ID: "b", Name: "Pen", Price: 500, Sale: 10},
		{ID: "c", Name: "Bag", Price: 250},
	}

	SortProducts(products, SortPriceLowToHigh, "en")
	if products[0].ID != "b" {
		t.Fatalf("expected sale product first (key 10), got %s", products[0].ID)
	}
	if products[1].ID != "a" || products[2].ID != "c" {
		t.Errorf("expected order b,a,c got %s,%s,%s", products[0].ID, products[1].ID, products[2].ID)
	}

	SortProducts(products, SortPriceHighToLow, "en")
	if products[0].ID != "c" || products[2].ID != "b" {
		t.Errorf("high-to-low must be the reverse: got %s,%s,%s", products[0].ID, products[1].ID, products[2].ID)
	}
}

func TestSortProducts_NameOrderingsAreReverses(t *testing.T) {
	asc := sampleProducts()
	SortProducts(asc, SortNameAtoZ, "en")

	desc := sampleProducts()
	SortProducts(desc, SortNameZtoA, "en")

	for i := range asc {
		j := len(desc) - 1 - i
		if asc[i].ID != desc[j].ID {
			t.Errorf("position %d: %s != reversed %s", i, asc[i].ID, desc[j].ID)
		}
	}
	if asc[0].Name != "Blue Notebook" {
		t.Errorf("expected Blue Notebook first ascending, got %s", asc[0].Name)
	}
}

func TestSortProducts_NewestAndOldestByID(t *testing.T) {
	products := sampleProducts()

	SortProducts(products, SortOldest, "en")
	if products[0].ID != "p01" || products[3].ID != "p04" {
		t.Errorf("oldest: expected p01..p04, got %s..%s", products[0].ID, products[3].ID)
	}

	SortProducts(products, SortNewest, "en")
	if products[0].ID != "p04" || products[3].ID != "p01" {
		t.Errorf("newest: expected p04..p01, got %s..%s", products[0].ID, products[3].ID)
	}
}

func TestParseSortKey_DefaultsToNewest(t *testing.T) {
	if got := ParseSortKey(""); got != SortNewest {
		t.Errorf("empty: expected newest, got %s", got)
	}
	if got := ParseSortKey("bogus"); got != SortNewest {
		t.Errorf("bogus: expected newest, got %s", got)
	}
	if got := ParseSortKey("priceLowToHigh"); got != SortPriceLowToHigh {
		t.Errorf("expected priceLowToHigh, got %s", got)
	}
}

func manyProducts(n int) []cms.Product {
	products := make([]cms.Product, n)
	for i := range products {
		products[i] = cms.Product{
			ID:    fmt.Sprintf("p%03d", i+1),
			Name:  fmt.Sprintf("Product %03d", i+1),
			Price: float64(10 + i),
		}
	}
	return products
}

func TestApply_Pagination(t *testing.T) {
	products := manyProducts(30)

	state := NewViewState()
	view := Apply(products, state, "en")

	if view.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 30 products, got %d", view.TotalPages)
	}
	if len(view.Items) != ItemsPerPage {
		t.Errorf("page 1: expected %d items, got %d", ItemsPerPage, len(view.Items))
	}
	if view.Start != 1 || view.End != 12 {
		t.Errorf("page 1: expected range 1-12, got %d-%d", view.Start, view.End)
	}

	state = Reduce(state, SetPage{Page: 3})
	view = Apply(products, state, "en")
	if len(view.Items) != 6 {
		t.Errorf("last page: expected 6 items, got %d", len(view.Items))
	}
	if view.Start != 25 || view.End != 30 {
		t.Errorf("last page: expected range 25-30, got %d-%d", view.Start, view.End)
	}
}

func TestApply_ExactMultipleFillsLastPage(t *testing.T) {
	view := Apply(manyProducts(24), ViewState{Sort: SortNewest, Page: 2}, "en")
	if view.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", view.TotalPages)
	}
	if len(view.Items) != ItemsPerPage {
		t.Errorf("expected a full last page, got %d items", len(view.Items))
	}
}

func TestApply_EmptyResultIsDistinctState(t *testing.T) {
	view := Apply(manyProducts(30), ViewState{Query: "nothing matches", Sort: SortNewest, Page: 1}, "en")
	if view.HasResults() {
		t.Error("expected no-results state")
	}
	if view.TotalPages != 0 || view.Start != 0 || len(view.Items) != 0 {
		t.Errorf("expected empty view, got total=%d start=%d items=%d", view.TotalPages, view.Start, len(view.Items))
	}
}

func TestReduce_QueryAndSortResetPage(t *testing.T) {
	state := ViewState{Query: "pen", Sort: SortOldest, Page: 4}

	if got := Reduce(state, SetQuery{Query: "bag"}); got.Page != 1 || got.Query != "bag" {
		t.Errorf("SetQuery: expected page reset, got %+v", got)
	}
	if got := Reduce(state, SetSort{Sort: SortNameAtoZ}); got.Page != 1 || got.Sort != SortNameAtoZ {
		t.Errorf("SetSort: expected page reset, got %+v", got)
	}
	if got := Reduce(state, SetPage{Page: 2}); got.Page != 2 || got.Query != "pen" {
		t.Errorf("SetPage: expected only page change, got %+v", got)
	}
	if got := Reduce(state, ClearFilters{}); got != NewViewState() {
		t.Errorf("ClearFilters: expected defaults, got %+v", got)
	}
}

func TestStateFromQuery(t *testing.T) {
	state := StateFromQuery("pen", "oldest", "3")
	if state.Query != "pen" || state.Sort != SortOldest || state.Page != 3 {
		t.Errorf("unexpected state: %+v", state)
	}

	state = StateFromQuery("", "", "")
	if state != NewViewState() {
		t.Errorf("expected defaults, got %+v", state)
	}

	state = StateFromQuery("", "", "-2")
	if state.Page != 1 {
		t.Errorf("invalid page: expected 1, got %d", state.Page)
	}
}

func TestFindByID(t *testing.T) {
	products := sampleProducts()
	if p, ok := FindByID(products, "p02"); !ok || p.Name != "School Bag" {
		t.Errorf("expected School Bag, got %+v ok=%v", p, ok)
	}
	if _, ok := FindByID(products, "missing"); ok {
		t.Error("expected not found")
	}
}

func TestRelated_ExcludesCurrentAndCapsAtFour(t *testing.T) {
	products := manyProducts(8)
	related := Related(products, "p002")
	if len(related) != 4 {
		t.Fatalf("expected 4 related, got %d", len(related))
	}
	for _, p := range related {
		if p.ID == "p002" {
			t.Error("related products must exclude the current id")
		}
	}
	if related[0].ID != "p001" || related[1].ID != "p003" {
		t.Errorf("expected catalog order minus current, got %s,%s", related[0].ID, related[1].ID)
	}
}
