package handlers

import (
	"net/url"
	"strings"
	"testing"
)

func TestParseArticlesQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantSize  int
		wantCats  bool
		wantTags  bool
		wantError bool
	}{
		{"defaults", "", 1, 36, false, false, false},
		{"explicit paging", "page=3&size=12", 3, 12, false, false, false},
		{"negative page passed through", "page=-4", -4, 36, false, false, false},
		{"include both", "include=categories,tags", 1, 36, true, true, false},
		{"include with spaces", "include=tags,%20categories", 1, 36, true, true, false},
		{"non numeric page", "page=x", 0, 0, false, false, true},
		{"non numeric size", "size=1e3", 0, 0, false, false, true},
		{"unknown include", "include=comments", 0, 0, false, false, true},
		{"title too long", "title=" + strings.Repeat("a", 301), 0, 0, false, false, true},
		{"sort param too long", "sort_by=" + strings.Repeat("a", 65), 0, 0, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			req, msg := parseArticlesQuery(q, 36)
			if tt.wantError {
				if msg == "" {
					t.Error("expected an error, got none")
				}
				return
			}
			if msg != "" {
				t.Fatalf("unexpected error: %s", msg)
			}
			if req.Page != tt.wantPage || req.Size != tt.wantSize {
				t.Errorf("page/size = %d/%d, want %d/%d", req.Page, req.Size, tt.wantPage, tt.wantSize)
			}
			if req.IncludeCategories != tt.wantCats || req.IncludeTags != tt.wantTags {
				t.Errorf("include = %v/%v, want %v/%v", req.IncludeCategories, req.IncludeTags, tt.wantCats, tt.wantTags)
			}
		})
	}
}
