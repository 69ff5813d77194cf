// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"strings"

	"lingopress/internal/corpus"
	"lingopress/internal/models"
)

// Translators turn corpus rows into domain entities. They are the only
// place relationships get promoted to loaded, and they report rows with
// malformed ids or slugs as errors.

// translated reports whether slugs has an entry for locale.
func translated(slugs map[string]string, locale models.Locale) bool {
	_, ok := slugs[string(locale)]
	return ok
}

// sameID compares raw identifiers case-insensitively.
func sameID(a, b string) bool {
	return strings.EqualFold(a, b)
}

func articleFromRow(r *corpus.ArticleRow) (*models.Article, error) {
	id, err := models.ParseArticleID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("translate article %q: %w", r.ID, err)
	}
	s, err := models.ParseArticleSlug(r.Slug)
	if err != nil {
		return nil, fmt.Errorf("translate article %q: %w", r.ID, err)
	}
	return &models.Article{
		ID:            id,
		Slug:          s,
		Locale:        models.Locale(r.Locale),
		Title:         r.Title,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		ImageAltTitle: r.ImageAltTitle,
		AuthorName:    r.AuthorName,
		ReadingTime:   r.ReadingTime,
		PublishedAt:   r.PublishedAt,
		UpdatedAt:     r.UpdatedAt,
		Status:        models.ArticleStatus(r.Status),
		IsFeatured:    r.IsFeatured,
		Relevance:     r.Relevance,
	}, nil
}

// categoryFromRow renders r in locale. The caller checks the row is
// translated first.
func categoryFromRow(r *corpus.CategoryRow, locale models.Locale) (*models.Category, error) {
	id, err := models.ParseCategoryID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("translate category %q: %w", r.ID, err)
	}
	s, err := models.ParseCategorySlug(r.Slugs[string(locale)])
	if err != nil {
		return nil, fmt.Errorf("translate category %q: %w", r.ID, err)
	}

	c := &models.Category{
		ID:            id,
		Slug:          s,
		Name:          r.Translations[string(locale)].Name,
		Description:   r.Translations[string(locale)].Description,
		ImageURL:      r.ImageURL,
		ImageAltTitle: r.ImageAltTitle[string(locale)],
	}
	if r.ParentID != "" {
		parentID, err := models.ParseCategoryID(r.ParentID)
		if err != nil {
			return nil, fmt.Errorf("translate category %q parent: %w", r.ID, err)
		}
		c.ParentID = &parentID
	}
	return c, nil
}

// tagFromRow renders r in locale. The caller checks the row is translated
// first.
func tagFromRow(r *corpus.TagRow, locale models.Locale) (*models.Tag, error) {
	id, err := models.ParseTagID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("translate tag %q: %w", r.ID, err)
	}
	s, err := models.ParseTagSlug(r.Slugs[string(locale)])
	if err != nil {
		return nil, fmt.Errorf("translate tag %q: %w", r.ID, err)
	}
	return &models.Tag{
		ID:   id,
		Slug: s,
		Name: r.Translations[string(locale)].Name,
	}, nil
}

// slugMap copies a raw locale→slug map.
func slugMap(slugs map[string]string) map[models.Locale]string {
	out := make(map[models.Locale]string, len(slugs))
	for l, s := range slugs {
		out[models.Locale(l)] = s
	}
	return out
}

// countPublished counts the published articles of locale for which match
// holds.
// TODO: precompute per-locale counts at load time once corpora grow past a
// few thousand articles; this scans every row on each call.
func countPublished(c *corpus.Corpus, locale models.Locale, match func(*corpus.ArticleRow) bool) int {
	n := 0
	for i := range c.Articles {
		r := &c.Articles[i]
		if r.Locale == string(locale) && r.Status == string(models.ArticleStatusPublished) && match(r) {
			n++
		}
	}
	return n
}
