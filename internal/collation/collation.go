// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package collation orders display names the way readers of a locale
// expect: base letters only, ignoring case, diacritics and punctuation.
// Collators are built once per locale and reused.
package collation

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings for one locale. It is safe for concurrent use.
type Collator struct {
	mu sync.Mutex
	c  *collate.Collator
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after b.
// Punctuation and spaces do not take part in the comparison.
func (c *Collator) Compare(a, b string) int {
	a, b = stripPunct(a), stripPunct(b)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Cache is a concurrency-safe map of collators keyed by locale.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Collator
}

// NewCache creates an empty collator cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Collator)}
}

// Get returns the collator for locale, building it on first use.
func (c *Cache) Get(locale string) *Collator {
	c.mu.RLock()
	col, ok := c.entries[locale]
	c.mu.RUnlock()
	if ok {
		return col
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if col, ok := c.entries[locale]; ok {
		return col
	}
	col = newCollator(locale)
	c.entries[locale] = col
	slog.Debug("collator cached", "locale", locale, "size", len(c.entries))
	return col
}

// SortFunc sorts items in place by the name key returns, using the
// collator for locale. Items that collate equal keep their order.
func SortFunc[T any](c *Cache, locale string, items []T, key func(T) string) {
	col := c.Get(locale)
	slices.SortStableFunc(items, func(a, b T) int {
		return col.Compare(key(a), key(b))
	})
}

// newCollator builds a base-strength collator: case, diacritics and width
// are ignored.
func newCollator(locale string) *Collator {
	return &Collator{c: collate.New(language.Make(locale), collate.Loose)}
}
