package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alandalus/library-site/internal/cms"
	api "github.com/alandalus/library-site/internal/http"
	handler "github.com/alandalus/library-site/internal/http/handlers"
	rl "github.com/alandalus/library-site/internal/http/rate_limiter"
)

var source *cms.InMemorySource

func init() {
	source = cms.NewInMemorySource(fixtureProducts()...)
	handler.SetProductSource(source)
	handler.SetBaseURL("https://example.com")
}

// newRouter builds the router with a clean rate-limiter table so one
// test's requests never spill into the next test's budget.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	rl.CleanupAllVisitors()
	t.Cleanup(rl.CleanupAllVisitors)
	return api.NewRouter()
}

func fixtureProducts() []cms.Product {
	return []cms.Product{
		{
			ID:    "p001",
			Name:  "Blue Ballpoint Pen",
			Price: 12,
			Images: []cms.Image{
				{ID: "i001", URL: "/img/pen-blue.jpg", Width: 800, Height: 600},
			},
			InStock:     true,
			CreatedAt:   "2026-01-01T10:00:00Z",
			Description: cms.Description{Text: "A smooth blue ballpoint pen."},
		},
		{
			ID:        "p002",
			Name:      "Red Gel Pen",
			Price:     15,
			Sale:      10,
			InStock:   true,
			CreatedAt: "2026-01-05T10:00:00Z",
		},
		{
			ID:        "p003",
			Name:      "A5 Notebook",
			Price:     25,
			InStock:   true,
			CreatedAt: "2026-01-10T10:00:00Z",
		},
		{
			ID:        "p004",
			Name:      "School Backpack",
			Price:     120,
			InStock:   false,
			CreatedAt: "2026-01-15T10:00:00Z",
		},
		{
			ID:        "p005",
			Name:      "Pencil Case",
			Price:     18,
			InStock:   true,
			CreatedAt: "2026-01-20T10:00:00Z",
		},
		{
			ID:        "p006",
			Name:      "دفتر ملاحظات",
			Price:     22,
			InStock:   true,
			CreatedAt: "2026-01-25T10:00:00Z",
		},
	}
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
