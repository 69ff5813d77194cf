// store_test.go provides shared corpus fixtures for the repository tests.
package store

import (
	"fmt"
	"testing"
	"time"

	"lingopress/internal/corpus"
	"lingopress/internal/models"
)

const (
	catProgramming = "11111111-1111-4111-8111-111111111111"
	catGo          = "22222222-2222-4222-8222-222222222222"
	catWeb         = "33333333-3333-4333-8333-333333333333"
	catOrphan      = "44444444-4444-4444-8444-444444444444"
	catSpanishOnly = "55555555-5555-4555-8555-555555555555"
	catMissing     = "99999999-9999-4999-8999-999999999999"

	tagGolang  = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	tagTesting = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

var fixtureEpoch = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

// articleID returns a valid, deterministic identifier for article n.
func articleID(n int) string {
	return fmt.Sprintf("%08d-0000-4000-8000-%012d", n, n)
}

// articleRow builds a published English article published n days after
// fixtureEpoch.
func articleRow(n int) corpus.ArticleRow {
	s := fmt.Sprintf("article-%d", n)
	return corpus.ArticleRow{
		ID:          articleID(n),
		Locale:      "en",
		Slug:        s,
		Slugs:       map[string]string{"en": s},
		Title:       fmt.Sprintf("Article number %d", n),
		Description: "Plain description.",
		AuthorName:  "Ada",
		PublishedAt: fixtureEpoch.AddDate(0, 0, n),
		UpdatedAt:   fixtureEpoch.AddDate(0, 0, n),
		Relevance:   float64(n % 7),
		Categories:  []string{},
		Tags:        []string{},
		Status:      "published",
		ReadingTime: 5,
	}
}

// publishedCorpus returns n published English articles and nothing else.
func publishedCorpus(n int) *corpus.Corpus {
	c := &corpus.Corpus{}
	for i := 1; i <= n; i++ {
		c.Articles = append(c.Articles, articleRow(i))
	}
	return c
}

func fixtureCategories() []corpus.CategoryRow {
	return []corpus.CategoryRow{
		{
			ID: catProgramming,
			Translations: map[string]corpus.CategoryTranslation{
				"en": {Name: "Programming", Description: "Writing software."},
				"es": {Name: "Programación", Description: "Escribir software."},
			},
			ImageURL:      "/img/programming.webp",
			ImageAltTitle: map[string]string{"en": "Code", "es": "Código"},
			Slugs:         map[string]string{"en": "programming", "es": "programacion"},
		},
		{
			ID: catGo,
			Translations: map[string]corpus.CategoryTranslation{
				"en": {Name: "Go"},
				"es": {Name: "Go"},
			},
			ParentID: catProgramming,
			Slugs:    map[string]string{"en": "go", "es": "go-es"},
		},
		{
			ID: catWeb,
			Translations: map[string]corpus.CategoryTranslation{
				"en": {Name: "Web"},
			},
			ParentID: catProgramming,
			Slugs:    map[string]string{"en": "web"},
		},
		{
			ID: catOrphan,
			Translations: map[string]corpus.CategoryTranslation{
				"en": {Name: "Orphan"},
			},
			ParentID: catMissing,
			Slugs:    map[string]string{"en": "orphan"},
		},
		{
			ID: catSpanishOnly,
			Translations: map[string]corpus.CategoryTranslation{
				"es": {Name: "Ártico"},
			},
			ParentID: catGo,
			Slugs:    map[string]string{"es": "artico"},
		},
	}
}

func fixtureTags() []corpus.TagRow {
	return []corpus.TagRow{
		{
			ID:           tagTesting,
			Translations: map[string]corpus.TagTranslation{"en": {Name: "Testing"}},
			Slugs:        map[string]string{"en": "testing"},
		},
		{
			ID: tagGolang,
			Translations: map[string]corpus.TagTranslation{
				"en": {Name: "golang"},
				"es": {Name: "golang"},
			},
			Slugs: map[string]string{"en": "golang", "es": "golang-es"},
		},
	}
}

// richCorpus mixes locales, drafts, categories and tags.
func richCorpus() *corpus.Corpus {
	c := &corpus.Corpus{
		Categories: fixtureCategories(),
		Tags:       fixtureTags(),
	}

	goArticle := articleRow(1)
	goArticle.Slug = "learning-go"
	goArticle.Slugs = map[string]string{"en": "learning-go", "es": "aprendiendo-go"}
	goArticle.Title = "Learning Go"
	goArticle.Description = "Kubernetes operators written in Go."
	goArticle.Categories = []string{catGo, catSpanishOnly}
	goArticle.Tags = []string{tagGolang, tagTesting}
	goArticle.IsFeatured = true

	goArticleES := goArticle
	goArticleES.Locale = "es"
	goArticleES.Slug = "aprendiendo-go"
	goArticleES.Title = "Aprendiendo Go"

	webArticle := articleRow(2)
	webArticle.Slug = "web-forms"
	webArticle.Slugs = map[string]string{"en": "web-forms"}
	webArticle.Title = "Web Forms"
	webArticle.Categories = []string{catWeb}
	webArticle.Tags = []string{tagTesting}

	draft := articleRow(3)
	draft.Slug = "draft-go"
	draft.Slugs = map[string]string{"en": "draft-go"}
	draft.Title = "Draft about Go"
	draft.Status = "draft"
	draft.IsFeatured = true
	draft.Categories = []string{catGo}
	draft.Tags = []string{tagGolang}

	kube := articleRow(4)
	kube.Slug = "kubernetes-basics"
	kube.Slugs = map[string]string{"en": "kubernetes-basics"}
	kube.Title = "Kubernetes Basics"
	kube.Categories = []string{catGo}
	kube.Tags = []string{tagGolang}
	kube.IsFeatured = true

	spanishOnly := articleRow(5)
	spanishOnly.Locale = "es"
	spanishOnly.Slug = "solo-en-espanol"
	spanishOnly.Slugs = map[string]string{"es": "solo-en-espanol"}
	spanishOnly.Title = "Solo en español"
	spanishOnly.Categories = []string{catGo}

	c.Articles = []corpus.ArticleRow{goArticle, goArticleES, webArticle, draft, kube, spanishOnly}
	return c
}

func mustCategoryID(t *testing.T, raw string) *models.CategoryID {
	t.Helper()
	id, err := models.ParseCategoryID(raw)
	if err != nil {
		t.Fatal(err)
	}
	return &id
}

func mustTagID(t *testing.T, raw string) *models.TagID {
	t.Helper()
	id, err := models.ParseTagID(raw)
	if err != nil {
		t.Fatal(err)
	}
	return &id
}

var testBounds = models.PaginationBounds{MinPageNumber: 1, MaxPageNumber: 1000, MinPageSize: 1, MaxPageSize: 60}

func criteria(page, size int, by, order string, locale models.Locale) models.ArticlesCriteria {
	return models.NewArticlesCriteria(models.ArticlesCriteriaParams{
		Page:      page,
		Size:      size,
		Bounds:    testBounds,
		SortBy:    by,
		SortOrder: order,
		Locale:    locale,
	})
}

func slugsOf(items []models.Article) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.Slug.String()
	}
	return out
}
