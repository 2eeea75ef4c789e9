package catalog

import (
	"strconv"
	"strings"

	"github.com/alandalus/library-site/internal/cms"
)

// ItemsPerPage is fixed; the listing grid is sized for it.
const ItemsPerPage = 12

// ViewState is the transient listing state: what the visitor typed,
// how they sorted, and which page they are on. It is serializable and
// only ever changes through Reduce.
type ViewState struct {
	Query string  `json:"query"`
	Sort  SortKey `json:"sort"`
	Page  int     `json:"page"`
}

// NewViewState returns the listing default: no filter, newest first,
// page one.
func NewViewState() ViewState {
	return ViewState{Sort: SortNewest, Page: 1}
}

// Action is a single change to the listing state.
type Action interface {
	isAction()
}

// SetQuery replaces the search text.
type SetQuery struct{ Query string }

// SetSort replaces the sort order.
type SetSort struct{ Sort SortKey }

// SetPage moves to another page of the current result set.
type SetPage struct{ Page int }

// ClearFilters resets the listing to its default state.
type ClearFilters struct{}

func (SetQuery) isAction()     {}
func (SetSort) isAction()      {}
func (SetPage) isAction()      {}
func (ClearFilters) isAction() {}

// Reduce returns the state after applying one action. Changing the
// query or the sort always lands back on page one.
func Reduce(state ViewState, action Action) ViewState {
	switch a := action.(type) {
	case SetQuery:
		state.Query = a.Query
		state.Page = 1
	case SetSort:
		state.Sort = a.Sort
		state.Page = 1
	case SetPage:
		state.Page = a.Page
	case ClearFilters:
		state = NewViewState()
	}
	return state
}

// StateFromQuery derives a ViewState from listing URL parameters by
// replaying them through the reducer, so page resets follow the same
// rules the page controls do: an explicit page only survives when it
// arrives alongside the query and sort that produced it.
func StateFromQuery(query, sortKey, page string) ViewState {
	state := NewViewState()
	state = Reduce(state, SetQuery{Query: query})
	state = Reduce(state, SetSort{Sort: ParseSortKey(sortKey)})
	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		state = Reduce(state, SetPage{Page: n})
	}
	return state
}

// PageView is the UI-ready slice of the catalog for one listing page.
type PageView struct {
	Items      []cms.Product
	Total      int // products left after filtering
	Page       int
	TotalPages int
	Start      int // 1-based display range; zero when there are no results
	End        int
	Pager      Pager
}

// HasResults distinguishes the "no results" state from a populated
// page. Loading and error states are the caller's concern.
func (v PageView) HasResults() bool { return v.Total > 0 }

// Apply filters, sorts and paginates the catalog for the given state.
// The locale drives name collation only. Pages beyond the last one
// yield an empty item slice; the controls never link to them.
func Apply(products []cms.Product, state ViewState, locale string) PageView {
	filtered := Filter(products, state.Query)
	SortProducts(filtered, state.Sort, locale)

	total := len(filtered)
	totalPages := (total + ItemsPerPage - 1) / ItemsPerPage

	start := (state.Page - 1) * ItemsPerPage
	end := start + ItemsPerPage
	if end > total {
		end = total
	}

	view := PageView{
		Total:      total,
		Page:       state.Page,
		TotalPages: totalPages,
		Pager:      BuildPager(state.Page, totalPages),
	}
	if start < total {
		view.Items = filtered[start:end]
		view.Start = start + 1
		view.End = end
	}
	return view
}

// Filter keeps products whose name contains query, case-insensitively.
// An empty query keeps everything, in the incoming order.
func Filter(products []cms.Product, query string) []cms.Product {
	q := strings.ToLower(query)
	out := make([]cms.Product, 0, len(products))
	for _, p := range products {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// FindByID locates a product in the fetched catalog.
func FindByID(products []cms.Product, id string) (cms.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return cms.Product{}, false
}

// Related returns up to four other products shown under a detail page,
// in catalog order, excluding the current one by id.
func Related(products []cms.Product, currentID string) []cms.Product {
	out := make([]cms.Product, 0, 4)
	for _, p := range products {
		if p.ID == currentID {
			continue
		}
		out = append(out, p)
		if len(out) == 4 {
			break
		}
	}
	return out
}
