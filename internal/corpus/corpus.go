// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package corpus holds the pre-loaded rows of articles, categories and tags
// the query layer serves, and loads them from JSON files.
package corpus

import (
	"slices"
	"strings"
	"time"
)

// ArticleRow is one locale's rendition of an article. Rows of the same
// article share ID and carry the full locale→slug map in Slugs.
type ArticleRow struct {
	ID            string            `json:"id"`
	Locale        string            `json:"locale"`
	Slug          string            `json:"slug"`
	Slugs         map[string]string `json:"slugs"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"imageUrl"`
	ImageAltTitle string            `json:"imageAltTitle"`
	AuthorName    string            `json:"authorName"`
	PublishedAt   time.Time         `json:"publishedAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	Relevance     float64           `json:"relevance"`
	Categories    []string          `json:"categories"`
	Tags          []string          `json:"tags"`
	Status        string            `json:"status"`
	IsFeatured    bool              `json:"isFeatured"`
	ReadingTime   int               `json:"readingTime"`
}

// CategoryTranslation is the localized text of a category.
type CategoryTranslation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryRow is a category with all of its translations.
type CategoryRow struct {
	ID            string                         `json:"id"`
	Translations  map[string]CategoryTranslation `json:"translations"`
	ImageURL      string                         `json:"imageUrl"`
	ImageAltTitle map[string]string              `json:"imageAltTitle"`
	ParentID      string                         `json:"parentId,omitempty"`
	Slugs         map[string]string              `json:"slugs"`
}

// TagTranslation is the localized text of a tag.
type TagTranslation struct {
	Name string `json:"name"`
}

// TagRow is a tag with all of its translations.
type TagRow struct {
	ID           string                    `json:"id"`
	Translations map[string]TagTranslation `json:"translations"`
	Slugs        map[string]string         `json:"slugs"`
}

// Corpus is the full set of rows loaded at startup. It is treated as
// read-only once handed to the stores.
type Corpus struct {
	Articles   []ArticleRow
	Categories []CategoryRow
	Tags       []TagRow
}

// HasCategory reports whether the article references category id.
// Identifiers compare case-insensitively.
func (r *ArticleRow) HasCategory(id string) bool {
	return containsID(r.Categories, id)
}

// HasTag reports whether the article references tag id.
func (r *ArticleRow) HasTag(id string) bool {
	return containsID(r.Tags, id)
}

func containsID(ids []string, id string) bool {
	return slices.ContainsFunc(ids, func(v string) bool {
		return strings.EqualFold(v, id)
	})
}
