// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"

	"lingopress/internal/content"
	"lingopress/internal/models"
	"lingopress/internal/store"
)

// ArticleRepository is the article query surface the use cases depend on.
// Lookups return (nil, nil) when nothing matches.
type ArticleRepository interface {
	List(criteria models.ArticlesCriteria, relations ...store.ArticleRelation) (*models.ArticlesPage, error)
	FindBySlug(slug models.ArticleSlug, locale models.Locale) (*models.Article, error)
	Featured(locale models.Locale) ([]models.Article, error)
	SlugsByID(id models.ArticleID) (map[models.Locale]string, error)
}

// CategoryRepository is the category query surface the use cases depend on.
type CategoryRepository interface {
	FindBySlug(slug models.CategorySlug, locale models.Locale) (*models.Category, error)
	FindByID(id models.CategoryID, locale models.Locale) (*models.Category, error)
	List(locale models.Locale) ([]models.Category, error)
	SlugsByID(id models.CategoryID) (map[models.Locale]string, error)
}

// TagRepository is the tag query surface the use cases depend on.
type TagRepository interface {
	FindBySlug(slug models.TagSlug, locale models.Locale) (*models.Tag, error)
	List(locale models.Locale) ([]models.Tag, error)
	SlugsByID(id models.TagID) (map[models.Locale]string, error)
}

// BodyProvider returns the compiled body of an article, or nil when it has
// none.
type BodyProvider interface {
	Get(ctx context.Context, locale models.Locale, slug models.ArticleSlug) (*content.Body, error)
}

var (
	_ ArticleRepository  = (*store.ArticleStore)(nil)
	_ CategoryRepository = (*store.CategoryStore)(nil)
	_ TagRepository      = (*store.TagStore)(nil)
	_ BodyProvider       = (*content.Store)(nil)
)
