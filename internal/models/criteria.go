// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// PaginationBounds are the configured limits page and size are clamped to.
type PaginationBounds struct {
	MinPageNumber int
	MaxPageNumber int
	MinPageSize   int
	MaxPageSize   int
}

// Pagination is a clamped result window.
type Pagination struct {
	Offset int
	Limit  int
}

// PaginationFromPage clamps page and size into bounds and converts them to
// an offset/limit window. It never fails.
func PaginationFromPage(page, size int, b PaginationBounds) Pagination {
	page = clamp(page, b.MinPageNumber, b.MaxPageNumber)
	size = clamp(size, b.MinPageSize, b.MaxPageSize)
	return Pagination{Offset: (page - 1) * size, Limit: size}
}

// Page returns the 1-based page number the window starts on.
func (p Pagination) Page() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortBy selects the ordering key of an article listing.
type SortBy string

const (
	SortByDate      SortBy = "date"
	SortByRelevance SortBy = "relevance"
)

// SortOrder is the direction of an article listing.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Sort is the normalized ordering of an article listing.
type Sort struct {
	By    SortBy
	Order SortOrder
}

// NewSort normalizes raw sort parameters. Unknown values fall back to
// date/desc.
func NewSort(by, order string) Sort {
	s := Sort{By: SortByDate, Order: SortOrderDesc}
	if SortBy(by) == SortByRelevance {
		s.By = SortByRelevance
	}
	if SortOrder(order) == SortOrderAsc {
		s.Order = SortOrderAsc
	}
	return s
}

// ArticlesCriteriaParams are the already-validated inputs of an article
// listing.
type ArticlesCriteriaParams struct {
	Page       int
	Size       int
	Bounds     PaginationBounds
	SortBy     string
	SortOrder  string
	Locale     Locale
	CategoryID *CategoryID
	TagID      *TagID
	Title      string
}

// ArticlesCriteria is the normalized query descriptor of an article listing.
type ArticlesCriteria struct {
	Pagination Pagination
	Sort       Sort
	Locale     Locale
	CategoryID *CategoryID
	TagID      *TagID
	// Title is empty when no title search was requested.
	Title string
}

// NewArticlesCriteria builds a criteria from p.
func NewArticlesCriteria(p ArticlesCriteriaParams) ArticlesCriteria {
	return ArticlesCriteria{
		Pagination: PaginationFromPage(p.Page, p.Size, p.Bounds),
		Sort:       NewSort(p.SortBy, p.SortOrder),
		Locale:     p.Locale,
		CategoryID: p.CategoryID,
		TagID:      p.TagID,
		Title:      strings.TrimSpace(p.Title),
	}
}

// HasTitle reports whether a title search was requested.
func (c ArticlesCriteria) HasTitle() bool { return c.Title != "" }
