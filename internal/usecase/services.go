// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package usecase holds the read-side orchestrators of the catalog. Each
// use case validates raw input, queries a repository and returns a DTO or
// an *Error carrying a stable id.
package usecase

import (
	"log/slog"

	"lingopress/internal/models"
)

// Deps are the collaborators every use case is built from. Recorder may be
// nil. Without Bodies no article detail can be served.
type Deps struct {
	Articles   ArticleRepository
	Categories CategoryRepository
	Tags       TagRepository
	Bodies     BodyProvider
	Locales    models.Locales
	Bounds     models.PaginationBounds
	Logger     *slog.Logger
	Recorder   Recorder
}

// Services groups all use cases.
type Services struct {
	GetArticles          *GetArticles
	GetArticleBySlug     *GetArticleBySlug
	GetFeaturedArticles  *GetFeaturedArticles
	GetArticleSlugsByID  *GetArticleSlugsByID
	GetCategories        *GetCategories
	GetCategoryBySlug    *GetCategoryBySlug
	GetCategoryByID      *GetCategoryByID
	GetCategorySlugsByID *GetCategorySlugsByID
	GetTags              *GetTags
	GetTagBySlug         *GetTagBySlug
	GetTagSlugsByID      *GetTagSlugsByID
}

// NewServices builds every use case from d.
func NewServices(d Deps) *Services {
	return &Services{
		GetArticles:          NewGetArticles(d.Articles, d.Locales, d.Bounds, d.Logger, d.Recorder),
		GetArticleBySlug:     NewGetArticleBySlug(d.Articles, d.Bodies, d.Locales, d.Logger, d.Recorder),
		GetFeaturedArticles:  NewGetFeaturedArticles(d.Articles, d.Locales, d.Logger, d.Recorder),
		GetArticleSlugsByID:  NewGetArticleSlugsByID(d.Articles, d.Logger, d.Recorder),
		GetCategories:        NewGetCategories(d.Categories, d.Locales, d.Logger, d.Recorder),
		GetCategoryBySlug:    NewGetCategoryBySlug(d.Categories, d.Locales, d.Logger, d.Recorder),
		GetCategoryByID:      NewGetCategoryByID(d.Categories, d.Locales, d.Logger, d.Recorder),
		GetCategorySlugsByID: NewGetCategorySlugsByID(d.Categories, d.Logger, d.Recorder),
		GetTags:              NewGetTags(d.Tags, d.Locales, d.Logger, d.Recorder),
		GetTagBySlug:         NewGetTagBySlug(d.Tags, d.Locales, d.Logger, d.Recorder),
		GetTagSlugsByID:      NewGetTagSlugsByID(d.Tags, d.Logger, d.Recorder),
	}
}
