// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers run against the seeded development corpus.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"lingopress/internal/content"
	"lingopress/internal/corpus"
	"lingopress/internal/models"
	"lingopress/internal/storage"
	"lingopress/internal/store"
	"lingopress/internal/usecase"
)

// testEnv holds the corpus and router used by handler tests.
type testEnv struct {
	corpus *corpus.Corpus
	router chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	c := corpus.Seed([]string{"en", "es"})
	stores := store.New(c, 0.4)
	bodies := content.NewStore(storage.NewFS(fstest.MapFS{
		"en/getting-started-with-go.md": {Data: []byte("# Getting started")},
	}), nil, nil)

	svc := usecase.NewServices(usecase.Deps{
		Articles:   stores.Articles,
		Categories: stores.Categories,
		Tags:       stores.Tags,
		Bodies:     bodies,
		Locales:    models.Locales{Supported: []models.Locale{"en", "es"}, Default: "en"},
		Bounds:     models.PaginationBounds{MinPageNumber: 1, MaxPageNumber: 1000, MinPageSize: 2, MaxPageSize: 60},
	})
	public := NewPublic(svc, 3)

	r := chi.NewRouter()
	r.Get("/{locale}/articles", public.Articles)
	r.Get("/{locale}/articles/featured", public.FeaturedArticles)
	r.Get("/{locale}/articles/{slug}", public.Article)
	r.Get("/articles/{id}/slugs", public.ArticleSlugs)
	r.Get("/{locale}/categories", public.Categories)
	r.Get("/{locale}/categories/{slug}", public.Category)
	r.Get("/{locale}/categories/by-id/{id}", public.CategoryByID)
	r.Get("/categories/{id}/slugs", public.CategorySlugs)
	r.Get("/{locale}/tags", public.Tags)
	r.Get("/{locale}/tags/{slug}", public.Tag)
	r.Get("/tags/{id}/slugs", public.TagSlugs)

	return &testEnv{corpus: c, router: r}
}

// get serves path and decodes the JSON body into out when out is non-nil.
func (e *testEnv) get(t *testing.T, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: decode body: %v", path, err)
		}
	}
	return w
}
