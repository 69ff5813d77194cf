// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"
	"log/slog"
	"strings"

	"lingopress/internal/models"
	"lingopress/internal/store"
)

// GetArticlesRequest is the raw input of an article listing. Empty
// CategoryID, TagID and Title mean "no filter".
type GetArticlesRequest struct {
	Locale            string
	Page              int
	Size              int
	SortBy            string
	SortOrder         string
	CategoryID        string
	TagID             string
	Title             string
	IncludeCategories bool
	IncludeTags       bool
}

// GetArticles lists published articles of one locale.
type GetArticles struct {
	articles ArticleRepository
	locales  models.Locales
	bounds   models.PaginationBounds
	b        boundary
}

// NewGetArticles creates a new GetArticles use case.
func NewGetArticles(articles ArticleRepository, locales models.Locales, bounds models.PaginationBounds, log *slog.Logger, rec Recorder) *GetArticles {
	return &GetArticles{
		articles: articles,
		locales:  locales,
		bounds:   bounds,
		b:        newBoundary("get_articles", log, rec),
	}
}

// Get runs the listing.
func (uc *GetArticles) Get(_ context.Context, req GetArticlesRequest) (*ArticlesPageDTO, error) {
	locale := uc.locales.Resolve(req.Locale)

	var categoryID *models.CategoryID
	if strings.TrimSpace(req.CategoryID) != "" {
		id, err := models.ParseCategoryID(req.CategoryID)
		if err != nil {
			return nil, uc.b.validation(err, models.CodeCategoryInvalidID,
				GetArticlesInvalidCategoryID, GetArticlesInternalError,
				"category_id", truncate(req.CategoryID, maxLogID))
		}
		categoryID = &id
	}

	var tagID *models.TagID
	if strings.TrimSpace(req.TagID) != "" {
		id, err := models.ParseTagID(req.TagID)
		if err != nil {
			return nil, uc.b.validation(err, models.CodeTagInvalidID,
				GetArticlesInvalidTagID, GetArticlesInternalError,
				"tag_id", truncate(req.TagID, maxLogID))
		}
		tagID = &id
	}

	criteria := models.NewArticlesCriteria(models.ArticlesCriteriaParams{
		Page:       req.Page,
		Size:       req.Size,
		Bounds:     uc.bounds,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
		Locale:     locale,
		CategoryID: categoryID,
		TagID:      tagID,
		Title:      req.Title,
	})

	var relations []store.ArticleRelation
	if req.IncludeCategories {
		relations = append(relations, store.ArticleRelationCategories)
	}
	if req.IncludeTags {
		relations = append(relations, store.ArticleRelationTags)
	}

	page, err := uc.articles.List(criteria, relations...)
	if err != nil {
		return nil, uc.b.internal(GetArticlesInternalError, err, criteriaAttrs(criteria)...)
	}

	dto := &ArticlesPageDTO{
		Items:      make([]ArticleDTO, 0, len(page.Items)),
		TotalItems: page.TotalItems,
		Page:       page.Page,
		PageSize:   page.PageSize,
		PageCount:  page.PageCount,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
		Criteria:   criteriaToDTO(criteria),
	}
	for i := range page.Items {
		item, err := articleToDTO(&page.Items[i], req.IncludeCategories, req.IncludeTags)
		if err != nil {
			return nil, uc.b.internal(GetArticlesInternalError, err, criteriaAttrs(criteria)...)
		}
		dto.Items = append(dto.Items, item)
	}

	uc.b.success()
	return dto, nil
}

func criteriaToDTO(c models.ArticlesCriteria) CriteriaDTO {
	dto := CriteriaDTO{
		Locale:    c.Locale.String(),
		Page:      c.Pagination.Page(),
		Size:      c.Pagination.Limit,
		SortBy:    string(c.Sort.By),
		SortOrder: string(c.Sort.Order),
		Title:     c.Title,
	}
	if c.CategoryID != nil {
		dto.CategoryID = c.CategoryID.String()
	}
	if c.TagID != nil {
		dto.TagID = c.TagID.String()
	}
	return dto
}

func criteriaAttrs(c models.ArticlesCriteria) []any {
	attrs := []any{
		"locale", truncate(c.Locale.String(), maxLogParam),
		"page", c.Pagination.Page(),
		"size", c.Pagination.Limit,
		"sort_by", string(c.Sort.By),
		"sort_order", string(c.Sort.Order),
	}
	if c.HasTitle() {
		attrs = append(attrs, "title", truncate(c.Title, maxLogText))
	}
	return attrs
}

// GetArticleBySlugRequest identifies one article rendition.
type GetArticleBySlugRequest struct {
	Locale string
	Slug   string
}

// GetArticleBySlug returns one article with its relations and body.
type GetArticleBySlug struct {
	articles ArticleRepository
	bodies   BodyProvider
	locales  models.Locales
	b        boundary
}

// NewGetArticleBySlug creates a new GetArticleBySlug use case.
func NewGetArticleBySlug(articles ArticleRepository, bodies BodyProvider, locales models.Locales, log *slog.Logger, rec Recorder) *GetArticleBySlug {
	return &GetArticleBySlug{
		articles: articles,
		bodies:   bodies,
		locales:  locales,
		b:        newBoundary("get_article_by_slug", log, rec),
	}
}

// Get looks the article up. The slug must match in the requested locale
// exactly; there is no fallback to another locale.
func (uc *GetArticleBySlug) Get(ctx context.Context, req GetArticleBySlugRequest) (*ArticleDetailDTO, error) {
	locale := uc.locales.Resolve(req.Locale)
	attrs := []any{"locale", truncate(locale.String(), maxLogParam), "slug", truncate(req.Slug, maxLogSlug)}

	slug, err := models.ParseArticleSlug(req.Slug)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeArticleInvalidSlug,
			GetArticleBySlugInvalidArticleSlug, GetArticleBySlugInternalError, attrs...)
	}

	article, err := uc.articles.FindBySlug(slug, locale)
	if err != nil {
		return nil, uc.b.internal(GetArticleBySlugInternalError, err, attrs...)
	}
	if article == nil {
		return nil, uc.b.notFound(GetArticleBySlugArticleNotFound, "article not found")
	}

	dto, err := articleToDTO(article, true, true)
	if err != nil {
		return nil, uc.b.internal(GetArticleBySlugInternalError, err, attrs...)
	}

	// An article whose body is missing or does not compile is not served.
	if uc.bodies == nil {
		return nil, uc.b.notFound(GetArticleBySlugArticleNotFound, "article content not found")
	}
	body, err := uc.bodies.Get(ctx, locale, slug)
	if err != nil {
		return nil, uc.b.internal(GetArticleBySlugInternalError, err, attrs...)
	}
	if body == nil {
		return nil, uc.b.notFound(GetArticleBySlugArticleNotFound, "article content not found")
	}

	uc.b.success()
	return &ArticleDetailDTO{ArticleDTO: dto, Body: body.HTML}, nil
}

// GetFeaturedArticlesRequest selects the locale of the featured list.
type GetFeaturedArticlesRequest struct {
	Locale string
}

// GetFeaturedArticles lists the featured articles of one locale.
type GetFeaturedArticles struct {
	articles ArticleRepository
	locales  models.Locales
	b        boundary
}

// NewGetFeaturedArticles creates a new GetFeaturedArticles use case.
func NewGetFeaturedArticles(articles ArticleRepository, locales models.Locales, log *slog.Logger, rec Recorder) *GetFeaturedArticles {
	return &GetFeaturedArticles{
		articles: articles,
		locales:  locales,
		b:        newBoundary("get_featured_articles", log, rec),
	}
}

// Get returns the featured articles in corpus order, without relations.
func (uc *GetFeaturedArticles) Get(_ context.Context, req GetFeaturedArticlesRequest) ([]ArticleDTO, error) {
	locale := uc.locales.Resolve(req.Locale)

	articles, err := uc.articles.Featured(locale)
	if err != nil {
		return nil, uc.b.internal(GetFeaturedArticlesInternalError, err, "locale", truncate(locale.String(), maxLogParam))
	}

	out := make([]ArticleDTO, 0, len(articles))
	for i := range articles {
		dto, err := articleToDTO(&articles[i], false, false)
		if err != nil {
			return nil, uc.b.internal(GetFeaturedArticlesInternalError, err, "locale", truncate(locale.String(), maxLogParam))
		}
		out = append(out, dto)
	}

	uc.b.success()
	return out, nil
}

// GetSlugsByIDRequest identifies an entity by its stable id.
type GetSlugsByIDRequest struct {
	ID string
}

// GetArticleSlugsByID returns every translated slug of one article.
type GetArticleSlugsByID struct {
	articles ArticleRepository
	b        boundary
}

// NewGetArticleSlugsByID creates a new GetArticleSlugsByID use case.
func NewGetArticleSlugsByID(articles ArticleRepository, log *slog.Logger, rec Recorder) *GetArticleSlugsByID {
	return &GetArticleSlugsByID{articles: articles, b: newBoundary("get_article_slugs_by_id", log, rec)}
}

// Get returns the locale to slug map of the article.
func (uc *GetArticleSlugsByID) Get(_ context.Context, req GetSlugsByIDRequest) (TranslatedSlugs, error) {
	attrs := []any{"id", truncate(req.ID, maxLogID)}

	id, err := models.ParseArticleID(req.ID)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeArticleInvalidID,
			GetArticleSlugsByIDInvalidArticleID, GetArticleSlugsByIDInternalError, attrs...)
	}

	slugs, err := uc.articles.SlugsByID(id)
	if err != nil {
		return nil, uc.b.internal(GetArticleSlugsByIDInternalError, err, attrs...)
	}
	if slugs == nil {
		return nil, uc.b.notFound(GetArticleSlugsByIDArticleNotFound, "article not found")
	}

	uc.b.success()
	return slugsToDTO(slugs), nil
}
