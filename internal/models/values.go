// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"

	"github.com/google/uuid"

	"lingopress/internal/slug"
)

// ArticleID identifies an article across all of its locales.
type ArticleID struct{ value string }

// CategoryID identifies a category across all of its locales.
type CategoryID struct{ value string }

// TagID identifies a tag across all of its locales.
type TagID struct{ value string }

// ArticleSlug is the locale-specific URL segment of an article.
type ArticleSlug struct{ value string }

// CategorySlug is the locale-specific URL segment of a category.
type CategorySlug struct{ value string }

// TagSlug is the locale-specific URL segment of a tag.
type TagSlug struct{ value string }

// ParseArticleID validates raw as an article identifier.
func ParseArticleID(raw string) (ArticleID, error) {
	v, ok := parseID(raw)
	if !ok {
		return ArticleID{}, newDomainError(CodeArticleInvalidID, "invalid article id")
	}
	return ArticleID{value: v}, nil
}

// ParseCategoryID validates raw as a category identifier.
func ParseCategoryID(raw string) (CategoryID, error) {
	v, ok := parseID(raw)
	if !ok {
		return CategoryID{}, newDomainError(CodeCategoryInvalidID, "invalid category id")
	}
	return CategoryID{value: v}, nil
}

// ParseTagID validates raw as a tag identifier.
func ParseTagID(raw string) (TagID, error) {
	v, ok := parseID(raw)
	if !ok {
		return TagID{}, newDomainError(CodeTagInvalidID, "invalid tag id")
	}
	return TagID{value: v}, nil
}

// ParseArticleSlug validates raw as an article slug.
func ParseArticleSlug(raw string) (ArticleSlug, error) {
	v, ok := parseSlug(raw)
	if !ok {
		return ArticleSlug{}, newDomainError(CodeArticleInvalidSlug, "invalid article slug")
	}
	return ArticleSlug{value: v}, nil
}

// ParseCategorySlug validates raw as a category slug.
func ParseCategorySlug(raw string) (CategorySlug, error) {
	v, ok := parseSlug(raw)
	if !ok {
		return CategorySlug{}, newDomainError(CodeCategoryInvalidSlug, "invalid category slug")
	}
	return CategorySlug{value: v}, nil
}

// ParseTagSlug validates raw as a tag slug.
func ParseTagSlug(raw string) (TagSlug, error) {
	v, ok := parseSlug(raw)
	if !ok {
		return TagSlug{}, newDomainError(CodeTagInvalidSlug, "invalid tag slug")
	}
	return TagSlug{value: v}, nil
}

func (id ArticleID) String() string  { return id.value }
func (id CategoryID) String() string { return id.value }
func (id TagID) String() string      { return id.value }

func (s ArticleSlug) String() string  { return s.value }
func (s CategorySlug) String() string { return s.value }
func (s TagSlug) String() string      { return s.value }

// Equal reports whether both identifiers hold the same value.
func (id ArticleID) Equal(other ArticleID) bool { return id.value == other.value }

// Equal reports whether both identifiers hold the same value.
func (id CategoryID) Equal(other CategoryID) bool { return id.value == other.value }

// Equal reports whether both identifiers hold the same value.
func (id TagID) Equal(other TagID) bool { return id.value == other.value }

// Equal reports whether both slugs hold the same value.
func (s ArticleSlug) Equal(other ArticleSlug) bool { return s.value == other.value }

// Equal reports whether both slugs hold the same value.
func (s CategorySlug) Equal(other CategorySlug) bool { return s.value == other.value }

// Equal reports whether both slugs hold the same value.
func (s TagSlug) Equal(other TagSlug) bool { return s.value == other.value }

// parseID accepts the canonical 8-4-4-4-12 form with a version nibble in
// 1..8 and the RFC 4122 variant. Case is preserved.
func parseID(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if len(v) != 36 {
		return "", false
	}
	u, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	if ver := u.Version(); ver < 1 || ver > 8 {
		return "", false
	}
	if u.Variant() != uuid.RFC4122 {
		return "", false
	}
	return v, true
}

func parseSlug(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if !slug.Valid(v) {
		return "", false
	}
	return v, true
}
