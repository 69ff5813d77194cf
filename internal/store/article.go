// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"cmp"
	"slices"
	"sync"

	"lingopress/internal/corpus"
	"lingopress/internal/models"
	"lingopress/internal/search"
)

// ArticleRelation names a relationship List can hydrate.
type ArticleRelation int

const (
	ArticleRelationCategories ArticleRelation = iota + 1
	ArticleRelationTags
)

// ArticleStore answers article queries over the corpus.
type ArticleStore struct {
	corpus    *corpus.Corpus
	threshold float64

	indexOnce sync.Once
	index     *search.Index
	indexed   int
}

// NewArticleStore returns a new ArticleStore. threshold tunes how fuzzy
// title searches are.
func NewArticleStore(c *corpus.Corpus, threshold float64) *ArticleStore {
	return &ArticleStore{corpus: c, threshold: threshold}
}

// searchIndex builds the title/description index on first use.
func (s *ArticleStore) searchIndex() *search.Index {
	s.indexOnce.Do(func() {
		docs := make([]search.Document, len(s.corpus.Articles))
		for i, r := range s.corpus.Articles {
			docs[i] = search.Document{Title: r.Title, Description: r.Description}
		}
		s.index = search.New(docs, s.threshold)
		s.indexed = len(docs)
	})
	return s.index
}

// List returns one page of the published articles matching criteria,
// hydrating only the requested relations.
func (s *ArticleStore) List(criteria models.ArticlesCriteria, relations ...ArticleRelation) (*models.ArticlesPage, error) {
	rows := s.corpus.Articles

	// A title search replaces the corpus with ranked hits.
	var base []*corpus.ArticleRow
	if criteria.HasTitle() {
		idx := s.searchIndex()
		for _, h := range idx.Search(criteria.Title) {
			if h.Index < len(rows) && h.Index < s.indexed {
				base = append(base, &rows[h.Index])
			}
		}
	} else {
		base = make([]*corpus.ArticleRow, len(rows))
		for i := range rows {
			base[i] = &rows[i]
		}
	}

	filtered := make([]*corpus.ArticleRow, 0, len(base))
	for _, r := range base {
		if r.Locale != string(criteria.Locale) || r.Status != string(models.ArticleStatusPublished) {
			continue
		}
		if criteria.CategoryID != nil && !r.HasCategory(criteria.CategoryID.String()) {
			continue
		}
		if criteria.TagID != nil && !r.HasTag(criteria.TagID.String()) {
			continue
		}
		filtered = append(filtered, r)
	}

	if !criteria.HasTitle() {
		sortRows(filtered, criteria.Sort)
	}

	p := criteria.Pagination
	start := min(p.Offset, len(filtered))
	end := min(p.Offset+p.Limit, len(filtered))
	window := filtered[start:end]

	items := make([]models.Article, 0, len(window))
	for _, r := range window {
		a, err := s.hydrate(r, criteria.Locale, relations)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}

	return models.NewArticlesPage(items, len(filtered), p), nil
}

// sortRows orders rows by publication date or by stored relevance. The
// sort is stable so equal keys keep corpus order.
func sortRows(rows []*corpus.ArticleRow, sort models.Sort) {
	switch sort.By {
	case models.SortByRelevance:
		slices.SortStableFunc(rows, func(a, b *corpus.ArticleRow) int {
			return cmp.Compare(b.Relevance, a.Relevance)
		})
	default:
		slices.SortStableFunc(rows, func(a, b *corpus.ArticleRow) int {
			if sort.Order == models.SortOrderAsc {
				return a.PublishedAt.Compare(b.PublishedAt)
			}
			return b.PublishedAt.Compare(a.PublishedAt)
		})
	}
}

// FindBySlug returns the article with slug in exactly locale, with its
// categories and tags hydrated. Returns nil if not found.
func (s *ArticleStore) FindBySlug(slug models.ArticleSlug, locale models.Locale) (*models.Article, error) {
	for i := range s.corpus.Articles {
		r := &s.corpus.Articles[i]
		if r.Locale == string(locale) && r.Slug == slug.String() {
			return s.hydrate(r, locale, []ArticleRelation{ArticleRelationCategories, ArticleRelationTags})
		}
	}
	return nil, nil
}

// Featured returns the published, featured articles of locale in corpus
// order. No relationships are hydrated.
func (s *ArticleStore) Featured(locale models.Locale) ([]models.Article, error) {
	items := []models.Article{}
	for i := range s.corpus.Articles {
		r := &s.corpus.Articles[i]
		if r.Locale != string(locale) || r.Status != string(models.ArticleStatusPublished) || !r.IsFeatured {
			continue
		}
		a, err := articleFromRow(r)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, nil
}

// SlugsByID returns the locale→slug map of an article. Returns nil if not
// found.
func (s *ArticleStore) SlugsByID(id models.ArticleID) (map[models.Locale]string, error) {
	for i := range s.corpus.Articles {
		r := &s.corpus.Articles[i]
		if sameID(r.ID, id.String()) {
			return slugMap(r.Slugs), nil
		}
	}
	return nil, nil
}

// hydrate translates r and loads the requested relations in locale.
// Related entities without a slug for locale are dropped.
func (s *ArticleStore) hydrate(r *corpus.ArticleRow, locale models.Locale, relations []ArticleRelation) (*models.Article, error) {
	a, err := articleFromRow(r)
	if err != nil {
		return nil, err
	}

	if slices.Contains(relations, ArticleRelationCategories) {
		var cats []models.Category
		for i := range s.corpus.Categories {
			cr := &s.corpus.Categories[i]
			if !r.HasCategory(cr.ID) || !translated(cr.Slugs, locale) {
				continue
			}
			c, err := categoryFromRow(cr, locale)
			if err != nil {
				return nil, err
			}
			cats = append(cats, *c)
		}
		a.Categories = models.LoadedCollection(cats)
	}

	if slices.Contains(relations, ArticleRelationTags) {
		var tags []models.Tag
		for i := range s.corpus.Tags {
			tr := &s.corpus.Tags[i]
			if !r.HasTag(tr.ID) || !translated(tr.Slugs, locale) {
				continue
			}
			t, err := tagFromRow(tr, locale)
			if err != nil {
				return nil, err
			}
			tags = append(tags, *t)
		}
		a.Tags = models.LoadedCollection(tags)
	}

	return a, nil
}
