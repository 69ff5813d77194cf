// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"lingopress/internal/collation"
	"lingopress/internal/corpus"
	"lingopress/internal/models"
)

// CategoryStore answers category queries over the corpus.
type CategoryStore struct {
	corpus    *corpus.Corpus
	collators *collation.Cache
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(c *corpus.Corpus, collators *collation.Cache) *CategoryStore {
	return &CategoryStore{corpus: c, collators: collators}
}

// FindBySlug returns the category whose slug in any locale equals slug,
// rendered in locale with its parent and children loaded. Returns nil if
// no category has the slug or the category is not translated to locale.
func (s *CategoryStore) FindBySlug(slug models.CategorySlug, locale models.Locale) (*models.Category, error) {
	row := s.findRow(func(r *corpus.CategoryRow) bool {
		for _, v := range r.Slugs {
			if v == slug.String() {
				return true
			}
		}
		return false
	})
	return s.detail(row, locale)
}

// FindByID returns the category with id rendered in locale, with its
// parent and children loaded. Returns nil if there is no such category or
// it is not translated to locale.
func (s *CategoryStore) FindByID(id models.CategoryID, locale models.Locale) (*models.Category, error) {
	row := s.findRow(func(r *corpus.CategoryRow) bool { return sameID(r.ID, id.String()) })
	return s.detail(row, locale)
}

// detail translates row and hydrates its parent and children in locale.
func (s *CategoryStore) detail(row *corpus.CategoryRow, locale models.Locale) (*models.Category, error) {
	if row == nil || !translated(row.Slugs, locale) {
		return nil, nil
	}

	c, err := categoryFromRow(row, locale)
	if err != nil {
		return nil, err
	}
	c.ArticlesCount = s.articlesCount(row.ID, locale)

	// A missing or untranslated parent still counts as loaded.
	var parent *models.Category
	if row.ParentID != "" {
		pr := s.findRow(func(r *corpus.CategoryRow) bool { return sameID(r.ID, row.ParentID) })
		if pr != nil && translated(pr.Slugs, locale) {
			parent, err = categoryFromRow(pr, locale)
			if err != nil {
				return nil, err
			}
		}
	}
	c.Parent = models.Loaded(parent)

	var children []models.Category
	for i := range s.corpus.Categories {
		cr := &s.corpus.Categories[i]
		if cr.ParentID == "" || !sameID(cr.ParentID, row.ID) || !translated(cr.Slugs, locale) {
			continue
		}
		child, err := categoryFromRow(cr, locale)
		if err != nil {
			return nil, err
		}
		children = append(children, *child)
	}
	c.Children = models.LoadedCollection(children)

	return c, nil
}

// List returns every category translated to locale, ordered by name as
// readers of locale expect, with article counts.
func (s *CategoryStore) List(locale models.Locale) ([]models.Category, error) {
	items := []models.Category{}
	for i := range s.corpus.Categories {
		r := &s.corpus.Categories[i]
		if !translated(r.Slugs, locale) {
			continue
		}
		c, err := categoryFromRow(r, locale)
		if err != nil {
			return nil, err
		}
		c.ArticlesCount = s.articlesCount(r.ID, locale)
		items = append(items, *c)
	}

	collation.SortFunc(s.collators, string(locale), items, func(c models.Category) string { return c.Name })
	return items, nil
}

// SlugsByID returns the locale→slug map of a category. Returns nil if not
// found.
func (s *CategoryStore) SlugsByID(id models.CategoryID) (map[models.Locale]string, error) {
	row := s.findRow(func(r *corpus.CategoryRow) bool { return sameID(r.ID, id.String()) })
	if row == nil {
		return nil, nil
	}
	return slugMap(row.Slugs), nil
}

// articlesCount is recomputed on every call so it never goes stale.
func (s *CategoryStore) articlesCount(id string, locale models.Locale) int {
	return countPublished(s.corpus, locale, func(r *corpus.ArticleRow) bool {
		return r.HasCategory(id)
	})
}

func (s *CategoryStore) findRow(match func(*corpus.CategoryRow) bool) *corpus.CategoryRow {
	for i := range s.corpus.Categories {
		if match(&s.corpus.Categories[i]) {
			return &s.corpus.Categories[i]
		}
	}
	return nil
}
