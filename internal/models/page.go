// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ArticlesPage is one window of an article listing plus its metadata.
type ArticlesPage struct {
	Items      []Article
	TotalItems int
	Page       int
	PageSize   int
	PageCount  int
	HasNext    bool
	HasPrev    bool
}

// NewArticlesPage computes pagination metadata for items cut from a
// filtered set of total entries.
func NewArticlesPage(items []Article, total int, p Pagination) *ArticlesPage {
	pageCount := 1
	if p.Limit > 0 && total > 0 {
		pageCount = (total + p.Limit - 1) / p.Limit
	}
	if items == nil {
		items = []Article{}
	}
	return &ArticlesPage{
		Items:      items,
		TotalItems: total,
		Page:       p.Page(),
		PageSize:   p.Limit,
		PageCount:  pageCount,
		HasNext:    p.Offset+p.Limit < total,
		HasPrev:    p.Offset > 0,
	}
}
