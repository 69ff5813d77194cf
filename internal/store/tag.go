// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"slices"

	"lingopress/internal/collation"
	"lingopress/internal/corpus"
	"lingopress/internal/models"
)

// TagStore answers tag queries over the corpus.
type TagStore struct {
	corpus    *corpus.Corpus
	collators *collation.Cache
}

// NewTagStore returns a new TagStore.
func NewTagStore(c *corpus.Corpus, collators *collation.Cache) *TagStore {
	return &TagStore{corpus: c, collators: collators}
}

// FindBySlug returns the tag whose slug in any locale equals slug,
// rendered in locale. Returns nil if not found or not translated to locale.
func (s *TagStore) FindBySlug(slug models.TagSlug, locale models.Locale) (*models.Tag, error) {
	for i := range s.corpus.Tags {
		r := &s.corpus.Tags[i]
		hit := false
		for _, v := range r.Slugs {
			if v == slug.String() {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		if !translated(r.Slugs, locale) {
			return nil, nil
		}
		t, err := tagFromRow(r, locale)
		if err != nil {
			return nil, err
		}
		t.ArticlesCount = s.articlesCount(r.ID, locale)
		return t, nil
	}
	return nil, nil
}

// List returns every tag translated to locale, ordered by name, with
// article counts.
func (s *TagStore) List(locale models.Locale) ([]models.Tag, error) {
	items := []models.Tag{}
	for i := range s.corpus.Tags {
		r := &s.corpus.Tags[i]
		if !translated(r.Slugs, locale) {
			continue
		}
		t, err := tagFromRow(r, locale)
		if err != nil {
			return nil, err
		}
		t.ArticlesCount = s.articlesCount(r.ID, locale)
		items = append(items, *t)
	}

	collation.SortFunc(s.collators, string(locale), items, func(t models.Tag) string { return t.Name })
	return items, nil
}

// SlugsByID returns the locale→slug map of a tag. Returns nil if not found.
func (s *TagStore) SlugsByID(id models.TagID) (map[models.Locale]string, error) {
	i := slices.IndexFunc(s.corpus.Tags, func(r corpus.TagRow) bool {
		return sameID(r.ID, id.String())
	})
	if i < 0 {
		return nil, nil
	}
	return slugMap(s.corpus.Tags[i].Slugs), nil
}

func (s *TagStore) articlesCount(id string, locale models.Locale) int {
	return countPublished(s.corpus, locale, func(r *corpus.ArticleRow) bool {
		return r.HasTag(id)
	})
}
