// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"
	"log/slog"

	"lingopress/internal/models"
)

// GetListRequest selects the locale of a taxonomy listing.
type GetListRequest struct {
	Locale string
}

// GetBySlugRequest identifies a category or tag by a slug in any locale.
type GetBySlugRequest struct {
	Locale string
	Slug   string
}

// GetCategories lists the categories translated to one locale.
type GetCategories struct {
	categories CategoryRepository
	locales    models.Locales
	b          boundary
}

// NewGetCategories creates a new GetCategories use case.
func NewGetCategories(categories CategoryRepository, locales models.Locales, log *slog.Logger, rec Recorder) *GetCategories {
	return &GetCategories{categories: categories, locales: locales, b: newBoundary("get_categories", log, rec)}
}

// Get returns the categories ordered by localized name.
func (uc *GetCategories) Get(_ context.Context, req GetListRequest) ([]CategoryDTO, error) {
	locale := uc.locales.Resolve(req.Locale)

	items, err := uc.categories.List(locale)
	if err != nil {
		return nil, uc.b.internal(GetCategoriesInternalError, err, "locale", truncate(locale.String(), maxLogParam))
	}

	out := make([]CategoryDTO, 0, len(items))
	for i := range items {
		out = append(out, categoryToDTO(&items[i]))
	}
	uc.b.success()
	return out, nil
}

// GetCategoryBySlug returns one category with its parent and children.
type GetCategoryBySlug struct {
	categories CategoryRepository
	locales    models.Locales
	b          boundary
}

// NewGetCategoryBySlug creates a new GetCategoryBySlug use case.
func NewGetCategoryBySlug(categories CategoryRepository, locales models.Locales, log *slog.Logger, rec Recorder) *GetCategoryBySlug {
	return &GetCategoryBySlug{categories: categories, locales: locales, b: newBoundary("get_category_by_slug", log, rec)}
}

// Get looks the category up. A category without a translation for the
// requested locale is not found.
func (uc *GetCategoryBySlug) Get(_ context.Context, req GetBySlugRequest) (*CategoryDetailDTO, error) {
	locale := uc.locales.Resolve(req.Locale)
	attrs := []any{"locale", truncate(locale.String(), maxLogParam), "slug", truncate(req.Slug, maxLogSlug)}

	slug, err := models.ParseCategorySlug(req.Slug)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeCategoryInvalidSlug,
			GetCategoryBySlugInvalidCategorySlug, GetCategoryBySlugInternalError, attrs...)
	}

	category, err := uc.categories.FindBySlug(slug, locale)
	if err != nil {
		return nil, uc.b.internal(GetCategoryBySlugInternalError, err, attrs...)
	}
	if category == nil {
		return nil, uc.b.notFound(GetCategoryBySlugCategoryNotFound, "category not found")
	}

	dto, err := categoryDetailToDTO(category)
	if err != nil {
		return nil, uc.b.internal(GetCategoryBySlugInternalError, err, attrs...)
	}
	uc.b.success()
	return &dto, nil
}

// GetCategoryByIDRequest identifies a category by its stable id.
type GetCategoryByIDRequest struct {
	Locale string
	ID     string
}

// GetCategoryByID returns one category with its parent and children.
type GetCategoryByID struct {
	categories CategoryRepository
	locales    models.Locales
	b          boundary
}

// NewGetCategoryByID creates a new GetCategoryByID use case.
func NewGetCategoryByID(categories CategoryRepository, locales models.Locales, log *slog.Logger, rec Recorder) *GetCategoryByID {
	return &GetCategoryByID{categories: categories, locales: locales, b: newBoundary("get_category_by_id", log, rec)}
}

// Get looks the category up by id. A category without a translation for
// the requested locale is not found.
func (uc *GetCategoryByID) Get(_ context.Context, req GetCategoryByIDRequest) (*CategoryDetailDTO, error) {
	locale := uc.locales.Resolve(req.Locale)
	attrs := []any{"locale", truncate(locale.String(), maxLogParam), "id", truncate(req.ID, maxLogID)}

	id, err := models.ParseCategoryID(req.ID)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeCategoryInvalidID,
			GetCategoryByIDInvalidCategoryID, GetCategoryByIDInternalError, attrs...)
	}

	category, err := uc.categories.FindByID(id, locale)
	if err != nil {
		return nil, uc.b.internal(GetCategoryByIDInternalError, err, attrs...)
	}
	if category == nil {
		return nil, uc.b.notFound(GetCategoryByIDCategoryNotFound, "category not found")
	}

	dto, err := categoryDetailToDTO(category)
	if err != nil {
		return nil, uc.b.internal(GetCategoryByIDInternalError, err, attrs...)
	}
	uc.b.success()
	return &dto, nil
}

// GetCategorySlugsByID returns every translated slug of one category.
type GetCategorySlugsByID struct {
	categories CategoryRepository
	b          boundary
}

// NewGetCategorySlugsByID creates a new GetCategorySlugsByID use case.
func NewGetCategorySlugsByID(categories CategoryRepository, log *slog.Logger, rec Recorder) *GetCategorySlugsByID {
	return &GetCategorySlugsByID{categories: categories, b: newBoundary("get_category_slugs_by_id", log, rec)}
}

func (uc *GetCategorySlugsByID) Get(_ context.Context, req GetSlugsByIDRequest) (TranslatedSlugs, error) {
	attrs := []any{"id", truncate(req.ID, maxLogID)}

	id, err := models.ParseCategoryID(req.ID)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeCategoryInvalidID,
			GetCategorySlugsByIDInvalidCategoryID, GetCategorySlugsByIDInternalError, attrs...)
	}

	slugs, err := uc.categories.SlugsByID(id)
	if err != nil {
		return nil, uc.b.internal(GetCategorySlugsByIDInternalError, err, attrs...)
	}
	if slugs == nil {
		return nil, uc.b.notFound(GetCategorySlugsByIDCategoryNotFound, "category not found")
	}
	uc.b.success()
	return slugsToDTO(slugs), nil
}

// GetTags lists the tags translated to one locale.
type GetTags struct {
	tags    TagRepository
	locales models.Locales
	b       boundary
}

// NewGetTags creates a new GetTags use case.
func NewGetTags(tags TagRepository, locales models.Locales, log *slog.Logger, rec Recorder) *GetTags {
	return &GetTags{tags: tags, locales: locales, b: newBoundary("get_tags", log, rec)}
}

func (uc *GetTags) Get(_ context.Context, req GetListRequest) ([]TagDTO, error) {
	locale := uc.locales.Resolve(req.Locale)

	items, err := uc.tags.List(locale)
	if err != nil {
		return nil, uc.b.internal(GetTagsInternalError, err, "locale", truncate(locale.String(), maxLogParam))
	}

	out := make([]TagDTO, 0, len(items))
	for i := range items {
		out = append(out, tagToDTO(&items[i]))
	}
	uc.b.success()
	return out, nil
}

// GetTagBySlug returns one tag.
type GetTagBySlug struct {
	tags    TagRepository
	locales models.Locales
	b       boundary
}

// NewGetTagBySlug creates a new GetTagBySlug use case.
func NewGetTagBySlug(tags TagRepository, locales models.Locales, log *slog.Logger, rec Recorder) *GetTagBySlug {
	return &GetTagBySlug{tags: tags, locales: locales, b: newBoundary("get_tag_by_slug", log, rec)}
}

func (uc *GetTagBySlug) Get(_ context.Context, req GetBySlugRequest) (*TagDTO, error) {
	locale := uc.locales.Resolve(req.Locale)
	attrs := []any{"locale", truncate(locale.String(), maxLogParam), "slug", truncate(req.Slug, maxLogSlug)}

	slug, err := models.ParseTagSlug(req.Slug)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeTagInvalidSlug,
			GetTagBySlugInvalidTagSlug, GetTagBySlugInternalError, attrs...)
	}

	tag, err := uc.tags.FindBySlug(slug, locale)
	if err != nil {
		return nil, uc.b.internal(GetTagBySlugInternalError, err, attrs...)
	}
	if tag == nil {
		return nil, uc.b.notFound(GetTagBySlugTagNotFound, "tag not found")
	}

	dto := tagToDTO(tag)
	uc.b.success()
	return &dto, nil
}

// GetTagSlugsByID returns every translated slug of one tag.
type GetTagSlugsByID struct {
	tags TagRepository
	b    boundary
}

// NewGetTagSlugsByID creates a new GetTagSlugsByID use case.
func NewGetTagSlugsByID(tags TagRepository, log *slog.Logger, rec Recorder) *GetTagSlugsByID {
	return &GetTagSlugsByID{tags: tags, b: newBoundary("get_tag_slugs_by_id", log, rec)}
}

func (uc *GetTagSlugsByID) Get(_ context.Context, req GetSlugsByIDRequest) (TranslatedSlugs, error) {
	attrs := []any{"id", truncate(req.ID, maxLogID)}

	id, err := models.ParseTagID(req.ID)
	if err != nil {
		return nil, uc.b.validation(err, models.CodeTagInvalidID,
			GetTagSlugsByIDInvalidTagID, GetTagSlugsByIDInternalError, attrs...)
	}

	slugs, err := uc.tags.SlugsByID(id)
	if err != nil {
		return nil, uc.b.internal(GetTagSlugsByIDInternalError, err, attrs...)
	}
	if slugs == nil {
		return nil, uc.b.notFound(GetTagSlugsByIDTagNotFound, "tag not found")
	}
	uc.b.success()
	return slugsToDTO(slugs), nil
}
