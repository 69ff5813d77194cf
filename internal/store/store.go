// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the article, category and tag repositories over
// the in-memory corpus. Lookups that find nothing return (nil, nil).
package store

import (
	"lingopress/internal/collation"
	"lingopress/internal/corpus"
)

// Stores bundles the repositories built over one corpus.
type Stores struct {
	Articles   *ArticleStore
	Categories *CategoryStore
	Tags       *TagStore
}

// New builds every repository over c. Category and tag listings share one
// collator cache.
func New(c *corpus.Corpus, searchThreshold float64) *Stores {
	collators := collation.NewCache()
	return &Stores{
		Articles:   NewArticleStore(c, searchThreshold),
		Categories: NewCategoryStore(c, collators),
		Tags:       NewTagStore(c, collators),
	}
}
