package store

import (
	"slices"
	"testing"

	"lingopress/internal/models"
	"lingopress/internal/search"
)

// TestArticleList_FirstPageByDate covers 25 published English articles
// listed newest first, twelve per page.
func TestArticleList_FirstPageByDate(t *testing.T) {
	s := NewArticleStore(publishedCorpus(25), search.DefaultThreshold)

	page, err := s.List(criteria(1, 12, "date", "desc", "en"))
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}

	if len(page.Items) != 12 {
		t.Fatalf("len(Items) = %d, want 12", len(page.Items))
	}
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i-1].PublishedAt.Before(page.Items[i].PublishedAt) {
			t.Fatalf("items not in descending date order at %d", i)
		}
	}
	if got := page.Items[0].Slug.String(); got != "article-25" {
		t.Errorf("first item = %q, want %q", got, "article-25")
	}
	if page.TotalItems != 25 || page.PageCount != 3 || page.Page != 1 || page.PageSize != 12 {
		t.Errorf("metadata = total %d, pages %d, page %d, size %d; want 25, 3, 1, 12",
			page.TotalItems, page.PageCount, page.Page, page.PageSize)
	}
	if !page.HasNext || page.HasPrev {
		t.Errorf("HasNext = %v, HasPrev = %v; want true, false", page.HasNext, page.HasPrev)
	}
}

func TestArticleList_Paging(t *testing.T) {
	s := NewArticleStore(publishedCorpus(25), search.DefaultThreshold)

	tests := []struct {
		name      string
		page      int
		wantFirst string
		wantLen   int
		wantNext  bool
		wantPrev  bool
	}{
		{name: "second page", page: 2, wantFirst: "article-13", wantLen: 12, wantNext: true, wantPrev: true},
		{name: "last page", page: 3, wantFirst: "article-1", wantLen: 1, wantNext: false, wantPrev: true},
		{name: "past the end", page: 9, wantLen: 0, wantNext: false, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.List(criteria(tt.page, 12, "date", "desc", "en"))
			if err != nil {
				t.Fatalf("List() unexpected error: %v", err)
			}
			if len(page.Items) != tt.wantLen {
				t.Fatalf("len(Items) = %d, want %d", len(page.Items), tt.wantLen)
			}
			if tt.wantLen > 0 && page.Items[0].Slug.String() != tt.wantFirst {
				t.Errorf("first item = %q, want %q", page.Items[0].Slug.String(), tt.wantFirst)
			}
			if page.HasNext != tt.wantNext || page.HasPrev != tt.wantPrev {
				t.Errorf("HasNext = %v, HasPrev = %v; want %v, %v", page.HasNext, page.HasPrev, tt.wantNext, tt.wantPrev)
			}
			if page.Page != tt.page {
				t.Errorf("Page = %d, want %d", page.Page, tt.page)
			}
		})
	}
}

func TestArticleList_Sort(t *testing.T) {
	s := NewArticleStore(publishedCorpus(8), search.DefaultThreshold)

	tests := []struct {
		name      string
		by, order string
		want      []string
	}{
		{
			name: "date ascending", by: "date", order: "asc",
			want: []string{"article-1", "article-2", "article-3", "article-4", "article-5", "article-6", "article-7", "article-8"},
		},
		{
			// Relevance is n%7, so article-7 scores 0 and article-8 scores 1.
			name: "relevance ignores order", by: "relevance", order: "asc",
			want: []string{"article-6", "article-5", "article-4", "article-3", "article-2", "article-1", "article-8", "article-7"},
		},
		{
			name: "unknown sort falls back to date desc", by: "popularity", order: "sideways",
			want: []string{"article-8", "article-7", "article-6", "article-5", "article-4", "article-3", "article-2", "article-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.List(criteria(1, 60, tt.by, tt.order, "en"))
			if err != nil {
				t.Fatalf("List() unexpected error: %v", err)
			}
			if got := slugsOf(page.Items); !slices.Equal(got, tt.want) {
				t.Errorf("List() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArticleList_Filters(t *testing.T) {
	s := NewArticleStore(richCorpus(), search.DefaultThreshold)

	tests := []struct {
		name     string
		locale   models.Locale
		category string
		tag      string
		want     []string
	}{
		{name: "english excludes drafts", locale: "en", want: []string{"kubernetes-basics", "web-forms", "learning-go"}},
		{name: "spanish", locale: "es", want: []string{"solo-en-espanol", "aprendiendo-go"}},
		{name: "category", locale: "en", category: catGo, want: []string{"kubernetes-basics", "learning-go"}},
		{name: "tag", locale: "en", tag: tagTesting, want: []string{"web-forms", "learning-go"}},
		{name: "category and tag", locale: "en", category: catGo, tag: tagTesting, want: []string{"learning-go"}},
		{name: "unreferenced category", locale: "en", category: catOrphan, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := criteria(1, 12, "date", "desc", tt.locale)
			if tt.category != "" {
				c.CategoryID = mustCategoryID(t, tt.category)
			}
			if tt.tag != "" {
				c.TagID = mustTagID(t, tt.tag)
			}

			page, err := s.List(c)
			if err != nil {
				t.Fatalf("List() unexpected error: %v", err)
			}
			if got := slugsOf(page.Items); !slices.Equal(got, tt.want) {
				t.Errorf("List() = %v, want %v", got, tt.want)
			}
			if page.TotalItems != len(tt.want) {
				t.Errorf("TotalItems = %d, want %d", page.TotalItems, len(tt.want))
			}
		})
	}
}

// TestArticleList_TitleSearchKeepsRanking verifies that a title search
// decides the order even when a sort was requested.
func TestArticleList_TitleSearchKeepsRanking(t *testing.T) {
	s := NewArticleStore(richCorpus(), search.DefaultThreshold)

	for _, sort := range [][2]string{{"date", "asc"}, {"date", "desc"}, {"relevance", "desc"}} {
		c := criteria(1, 12, sort[0], sort[1], "en")
		c.Title = "kubernetes"

		page, err := s.List(c)
		if err != nil {
			t.Fatalf("List() unexpected error: %v", err)
		}
		want := []string{"kubernetes-basics", "learning-go"}
		if got := slugsOf(page.Items); !slices.Equal(got, want) {
			t.Errorf("List(title, %s %s) = %v, want %v", sort[0], sort[1], got, want)
		}
	}

	c := criteria(1, 12, "date", "desc", "en")
	c.Title = "draft"
	page, err := s.List(c)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("title search returned drafts: %v", slugsOf(page.Items))
	}
}

func TestArticleList_Hydration(t *testing.T) {
	s := NewArticleStore(richCorpus(), search.DefaultThreshold)
	c := criteria(1, 12, "date", "desc", "en")
	c.CategoryID = mustCategoryID(t, catGo)
	c.TagID = mustTagID(t, tagTesting)

	page, err := s.List(c)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if _, err := page.Items[0].Categories.Values(); !models.IsCode(err, models.CodeRelationshipCollectionNotLoaded) {
		t.Errorf("Categories.Values() error = %v, want not loaded", err)
	}
	if _, err := page.Items[0].Tags.Values(); err == nil {
		t.Error("Tags should not be loaded when not requested")
	}

	page, err = s.List(c, ArticleRelationCategories)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	cats, err := page.Items[0].Categories.Values()
	if err != nil {
		t.Fatalf("Categories.Values() unexpected error: %v", err)
	}
	// The Spanish-only category is dropped in English.
	if len(cats) != 1 || cats[0].Slug.String() != "go" {
		t.Errorf("Categories = %+v, want only go", cats)
	}
	if page.Items[0].Tags.IsLoaded() {
		t.Error("Tags should stay unloaded when only categories were requested")
	}
}

func TestArticleFindBySlug(t *testing.T) {
	s := NewArticleStore(richCorpus(), search.DefaultThreshold)

	tests := []struct {
		name     string
		slug     string
		locale   models.Locale
		wantNil  bool
		wantCats []string
		wantTags []string
	}{
		{name: "english", slug: "learning-go", locale: "en", wantCats: []string{"go"}, wantTags: []string{"testing", "golang"}},
		{name: "spanish drops untranslated tag", slug: "aprendiendo-go", locale: "es", wantCats: []string{"go-es", "artico"}, wantTags: []string{"golang-es"}},
		{name: "spanish-only slug in english", slug: "solo-en-espanol", locale: "en", wantNil: true},
		{name: "english slug in spanish", slug: "learning-go", locale: "es", wantNil: true},
		{name: "unknown", slug: "nope", locale: "en", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sl, err := models.ParseArticleSlug(tt.slug)
			if err != nil {
				t.Fatal(err)
			}
			a, err := s.FindBySlug(sl, tt.locale)
			if err != nil {
				t.Fatalf("FindBySlug() unexpected error: %v", err)
			}
			if tt.wantNil {
				if a != nil {
					t.Errorf("FindBySlug(%q, %q) = %q, want nil", tt.slug, tt.locale, a.Slug)
				}
				return
			}
			if a == nil {
				t.Fatalf("FindBySlug(%q, %q) = nil", tt.slug, tt.locale)
			}

			cats, err := a.Categories.Values()
			if err != nil {
				t.Fatalf("Categories.Values() unexpected error: %v", err)
			}
			var gotCats []string
			for _, c := range cats {
				gotCats = append(gotCats, c.Slug.String())
			}
			if !slices.Equal(gotCats, tt.wantCats) {
				t.Errorf("categories = %v, want %v", gotCats, tt.wantCats)
			}

			tags, err := a.Tags.Values()
			if err != nil {
				t.Fatalf("Tags.Values() unexpected error: %v", err)
			}
			var gotTags []string
			for _, tg := range tags {
				gotTags = append(gotTags, tg.Slug.String())
			}
			if !slices.Equal(gotTags, tt.wantTags) {
				t.Errorf("tags = %v, want %v", gotTags, tt.wantTags)
			}
		})
	}
}

func TestArticleFeatured(t *testing.T) {
	s := NewArticleStore(richCorpus(), search.DefaultThreshold)

	items, err := s.Featured("en")
	if err != nil {
		t.Fatalf("Featured() unexpected error: %v", err)
	}
	// Corpus order, drafts excluded.
	want := []string{"learning-go", "kubernetes-basics"}
	if got := slugsOf(items); !slices.Equal(got, want) {
		t.Errorf("Featured(en) = %v, want %v", got, want)
	}
	for _, a := range items {
		if a.Categories.IsLoaded() || a.Tags.IsLoaded() {
			t.Errorf("featured article %q has hydrated relationships", a.Slug)
		}
	}

	items, err = s.Featured("fr")
	if err != nil || items == nil || len(items) != 0 {
		t.Errorf("Featured(fr) = %v, %v; want empty", items, err)
	}
}

func TestArticleSlugsByID(t *testing.T) {
	s := NewArticleStore(richCorpus(), search.DefaultThreshold)

	id, _ := models.ParseArticleID(articleID(1))
	slugs, err := s.SlugsByID(id)
	if err != nil {
		t.Fatalf("SlugsByID() unexpected error: %v", err)
	}
	if slugs["en"] != "learning-go" || slugs["es"] != "aprendiendo-go" {
		t.Errorf("SlugsByID() = %v", slugs)
	}

	missing, _ := models.ParseArticleID(articleID(42))
	slugs, err = s.SlugsByID(missing)
	if err != nil || slugs != nil {
		t.Errorf("SlugsByID(missing) = %v, %v; want nil, nil", slugs, err)
	}
}

// TestArticleList_MalformedRow verifies that a row with a bad slug surfaces
// as an error instead of a partial page.
func TestArticleList_MalformedRow(t *testing.T) {
	c := publishedCorpus(3)
	c.Articles[1].Slug = "Not A Slug"
	s := NewArticleStore(c, search.DefaultThreshold)

	if _, err := s.List(criteria(1, 12, "date", "desc", "en")); err == nil {
		t.Error("List() expected error for malformed row, got nil")
	}
}
