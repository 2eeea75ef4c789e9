package catalog

import (
	"reflect"
	"testing"
)

func TestBuildPager(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		pages      []int
		ellipsis   bool
		lastPage   int
	}{
		{name: "single page renders nothing", page: 1, totalPages: 1, pages: nil},
		{name: "few pages show all", page: 2, totalPages: 5, pages: []int{1, 2, 3, 4, 5}},
		{name: "exactly seven", page: 7, totalPages: 7, pages: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "start of long list", page: 1, totalPages: 10, pages: []int{1, 2, 3, 4, 5, 6, 7}, ellipsis: true, lastPage: 10},
		{name: "left edge boundary", page: 4, totalPages: 10, pages: []int{1, 2, 3, 4, 5, 6, 7}, ellipsis: true, lastPage: 10},
		{name: "middle window centers", page: 5, totalPages: 10, pages: []int{2, 3, 4, 5, 6, 7, 8}, ellipsis: true, lastPage: 10},
		{name: "right edge window", page: 7, totalPages: 10, pages: []int{4, 5, 6, 7, 8, 9, 10}},
		{name: "last page", page: 10, totalPages: 10, pages: []int{4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPager(tt.page, tt.totalPages)
			if len(got.Pages) != 0 || len(tt.pages) != 0 {
				if !reflect.DeepEqual(got.Pages, tt.pages) {
					t.Errorf("pages: expected %v, got %v", tt.pages, got.Pages)
				}
			}
			if got.Ellipsis != tt.ellipsis {
				t.Errorf("ellipsis: expected %v, got %v", tt.ellipsis, got.Ellipsis)
			}
			if got.LastPage != tt.lastPage {
				t.Errorf("lastPage: expected %d, got %d", tt.lastPage, got.LastPage)
			}
		})
	}
}
