// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes the catalog use cases as JSON endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lingopress/internal/usecase"
)

// Public groups the read-only catalog endpoints. Every handler decodes the
// request, calls one use case and writes its DTO or error as JSON.
type Public struct {
	svc             *usecase.Services
	defaultPageSize int
}

// NewPublic creates a new Public handler group. defaultPageSize is used
// when a listing request carries no size.
func NewPublic(svc *usecase.Services, defaultPageSize int) *Public {
	return &Public{svc: svc, defaultPageSize: defaultPageSize}
}

// Articles lists the published articles of a locale.
func (p *Public) Articles(w http.ResponseWriter, r *http.Request) {
	q, msg := parseArticlesQuery(r.URL.Query(), p.defaultPageSize)
	if msg != "" {
		writeBadRequest(w, msg)
		return
	}
	q.Locale = chi.URLParam(r, "locale")

	page, err := p.svc.GetArticles.Get(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// FeaturedArticles lists the featured articles of a locale.
func (p *Public) FeaturedArticles(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.GetFeaturedArticles.Get(r.Context(), usecase.GetFeaturedArticlesRequest{
		Locale: chi.URLParam(r, "locale"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Article returns one article with its body.
func (p *Public) Article(w http.ResponseWriter, r *http.Request) {
	a, err := p.svc.GetArticleBySlug.Get(r.Context(), usecase.GetArticleBySlugRequest{
		Locale: chi.URLParam(r, "locale"),
		Slug:   chi.URLParam(r, "slug"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// ArticleSlugs returns the slugs of one article in every locale.
func (p *Public) ArticleSlugs(w http.ResponseWriter, r *http.Request) {
	slugs, err := p.svc.GetArticleSlugsByID.Get(r.Context(), usecase.GetSlugsByIDRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slugs)
}

// Categories lists the categories of a locale.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.GetCategories.Get(r.Context(), usecase.GetListRequest{Locale: chi.URLParam(r, "locale")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Category returns one category with its parent and children.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	c, err := p.svc.GetCategoryBySlug.Get(r.Context(), usecase.GetBySlugRequest{
		Locale: chi.URLParam(r, "locale"),
		Slug:   chi.URLParam(r, "slug"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CategoryByID returns one category, looked up by id, with its parent and
// children.
func (p *Public) CategoryByID(w http.ResponseWriter, r *http.Request) {
	c, err := p.svc.GetCategoryByID.Get(r.Context(), usecase.GetCategoryByIDRequest{
		Locale: chi.URLParam(r, "locale"),
		ID:     chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CategorySlugs returns the slugs of one category in every locale.
func (p *Public) CategorySlugs(w http.ResponseWriter, r *http.Request) {
	slugs, err := p.svc.GetCategorySlugsByID.Get(r.Context(), usecase.GetSlugsByIDRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slugs)
}

// Tags lists the tags of a locale.
func (p *Public) Tags(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.GetTags.Get(r.Context(), usecase.GetListRequest{Locale: chi.URLParam(r, "locale")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Tag returns one tag.
func (p *Public) Tag(w http.ResponseWriter, r *http.Request) {
	t, err := p.svc.GetTagBySlug.Get(r.Context(), usecase.GetBySlugRequest{
		Locale: chi.URLParam(r, "locale"),
		Slug:   chi.URLParam(r, "slug"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// TagSlugs returns the slugs of one tag in every locale.
func (p *Public) TagSlugs(w http.ResponseWriter, r *http.Request) {
	slugs, err := p.svc.GetTagSlugsByID.Get(r.Context(), usecase.GetSlugsByIDRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slugs)
}
