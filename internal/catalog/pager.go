package catalog

// Pager describes the page buttons shown under the grid: a window of
// at most seven numbered buttons centered on the current page, and,
// when the window stops short of the last page, an ellipsis plus a
// jump button to it.
type Pager struct {
	Pages    []int `json:"pages"`
	Ellipsis bool  `json:"ellipsis"`
	LastPage int   `json:"lastPage,omitempty"` // zero when no trailing button is shown
}

// BuildPager computes the button window for the current page. With one
// page or none there is nothing to render.
func BuildPager(page, totalPages int) Pager {
	if totalPages <= 1 {
		return Pager{}
	}

	count := totalPages
	if count > 7 {
		count = 7
	}
	pages := make([]int, 0, count)
	for i := 0; i < count; i++ {
		var n int
		switch {
		case totalPages <= 7:
			n = i + 1
		case page <= 4:
			n = i + 1
		case page >= totalPages-3:
			n = totalPages - 6 + i
		default:
			n = page - 3 + i
		}
		if n < 1 || n > totalPages {
			continue
		}
		pages = append(pages, n)
	}

	p := Pager{Pages: pages}
	if totalPages > 7 && page < totalPages-3 {
		p.Ellipsis = true
		p.LastPage = totalPages
	}
	return p
}
