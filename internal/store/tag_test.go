package store

import (
	"slices"
	"testing"

	"lingopress/internal/collation"
	"lingopress/internal/models"
)

func TestTagFindBySlug(t *testing.T) {
	s := NewTagStore(richCorpus(), collation.NewCache())

	tests := []struct {
		name      string
		slug      string
		locale    models.Locale
		wantNil   bool
		wantSlug  string
		wantCount int
	}{
		{name: "english", slug: "golang", locale: "en", wantSlug: "golang", wantCount: 2},
		{name: "spanish slug rendered in english", slug: "golang-es", locale: "en", wantSlug: "golang", wantCount: 2},
		{name: "spanish", slug: "golang", locale: "es", wantSlug: "golang-es", wantCount: 1},
		{name: "untranslated", slug: "testing", locale: "es", wantNil: true},
		{name: "unknown", slug: "rust", locale: "en", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sl, err := models.ParseTagSlug(tt.slug)
			if err != nil {
				t.Fatal(err)
			}
			tag, err := s.FindBySlug(sl, tt.locale)
			if err != nil {
				t.Fatalf("FindBySlug() unexpected error: %v", err)
			}
			if tt.wantNil {
				if tag != nil {
					t.Errorf("FindBySlug(%q, %q) = %q, want nil", tt.slug, tt.locale, tag.Slug)
				}
				return
			}
			if tag == nil {
				t.Fatalf("FindBySlug(%q, %q) = nil", tt.slug, tt.locale)
			}
			if tag.Slug.String() != tt.wantSlug {
				t.Errorf("Slug = %q, want %q", tag.Slug, tt.wantSlug)
			}
			if tag.ArticlesCount != tt.wantCount {
				t.Errorf("ArticlesCount = %d, want %d", tag.ArticlesCount, tt.wantCount)
			}
		})
	}
}

func TestTagList(t *testing.T) {
	s := NewTagStore(richCorpus(), collation.NewCache())

	items, err := s.List("en")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	// Collation ignores case: "golang" sorts before "Testing".
	var got []string
	for _, tag := range items {
		got = append(got, tag.Name)
	}
	if want := []string{"golang", "Testing"}; !slices.Equal(got, want) {
		t.Errorf("List(en) = %v, want %v", got, want)
	}
	if items[1].ArticlesCount != 2 {
		t.Errorf("Testing ArticlesCount = %d, want 2", items[1].ArticlesCount)
	}

	items, err = s.List("es")
	if err != nil || len(items) != 1 {
		t.Errorf("List(es) = %v, %v; want one tag", items, err)
	}
}

func TestTagSlugsByID(t *testing.T) {
	s := NewTagStore(richCorpus(), collation.NewCache())

	// Identifiers match regardless of case.
	slugs, err := s.SlugsByID(*mustTagID(t, "AAAAAAAA-AAAA-4AAA-8AAA-AAAAAAAAAAAA"))
	if err != nil {
		t.Fatalf("SlugsByID() unexpected error: %v", err)
	}
	if slugs["en"] != "golang" || slugs["es"] != "golang-es" {
		t.Errorf("SlugsByID() = %v", slugs)
	}

	slugs, err = s.SlugsByID(*mustTagID(t, "cccccccc-cccc-4ccc-8ccc-cccccccccccc"))
	if err != nil || slugs != nil {
		t.Errorf("SlugsByID(missing) = %v, %v; want nil, nil", slugs, err)
	}
}
