// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"errors"
	"strings"
)

// Error is the only error a use case returns. ID is stable and meant for
// callers to branch on (e.g. to pick an HTTP status).
type Error struct {
	ID      string
	Message string
}

func (e *Error) Error() string {
	return e.ID + ": " + e.Message
}

// Application error ids.
const (
	GetArticlesInvalidCategoryID = "get_articles_invalid_category_id"
	GetArticlesInvalidTagID      = "get_articles_invalid_tag_id"
	GetArticlesInternalError     = "get_articles_internal_error"

	GetArticleBySlugInvalidArticleSlug = "get_article_by_slug_invalid_article_slug"
	GetArticleBySlugArticleNotFound    = "get_article_by_slug_article_not_found"
	GetArticleBySlugInternalError      = "get_article_by_slug_internal_error"

	GetFeaturedArticlesInternalError = "get_featured_articles_internal_error"

	GetArticleSlugsByIDInvalidArticleID = "get_article_slugs_by_id_invalid_article_id"
	GetArticleSlugsByIDArticleNotFound  = "get_article_slugs_by_id_article_not_found"
	GetArticleSlugsByIDInternalError    = "get_article_slugs_by_id_internal_error"

	GetCategoriesInternalError = "get_categories_internal_error"

	GetCategoryBySlugInvalidCategorySlug = "get_category_by_slug_invalid_category_slug"
	GetCategoryBySlugCategoryNotFound    = "get_category_by_slug_category_not_found"
	GetCategoryBySlugInternalError       = "get_category_by_slug_internal_error"

	GetCategoryByIDInvalidCategoryID = "get_category_by_id_invalid_category_id"
	GetCategoryByIDCategoryNotFound  = "get_category_by_id_category_not_found"
	GetCategoryByIDInternalError     = "get_category_by_id_internal_error"

	GetCategorySlugsByIDInvalidCategoryID = "get_category_slugs_by_id_invalid_category_id"
	GetCategorySlugsByIDCategoryNotFound  = "get_category_slugs_by_id_category_not_found"
	GetCategorySlugsByIDInternalError     = "get_category_slugs_by_id_internal_error"

	GetTagsInternalError = "get_tags_internal_error"

	GetTagBySlugInvalidTagSlug = "get_tag_by_slug_invalid_tag_slug"
	GetTagBySlugTagNotFound    = "get_tag_by_slug_tag_not_found"
	GetTagBySlugInternalError  = "get_tag_by_slug_internal_error"

	GetTagSlugsByIDInvalidTagID  = "get_tag_slugs_by_id_invalid_tag_id"
	GetTagSlugsByIDTagNotFound   = "get_tag_slugs_by_id_tag_not_found"
	GetTagSlugsByIDInternalError = "get_tag_slugs_by_id_internal_error"
)

// ErrorID returns the id of a use-case error, or "" for any other error.
func ErrorID(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.ID
	}
	return ""
}

// IsNotFound reports whether err is a use-case not-found error.
func IsNotFound(err error) bool {
	return strings.HasSuffix(ErrorID(err), "_not_found")
}

// IsInvalid reports whether err is a use-case invalid-input error.
func IsInvalid(err error) bool {
	return strings.Contains(ErrorID(err), "_invalid_")
}
