// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article is one locale's rendition of an article. Translations of the same
// article share an ID and differ in Slug and Locale.
type Article struct {
	ID            ArticleID
	Slug          ArticleSlug
	Locale        Locale
	Title         string
	Description   string
	ImageURL      string
	ImageAltTitle string
	AuthorName    string
	ReadingTime   int
	PublishedAt   time.Time
	UpdatedAt     time.Time
	Status        ArticleStatus
	IsFeatured    bool
	Relevance     float64

	Categories RelationshipCollection[Category]
	Tags       RelationshipCollection[Tag]
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
