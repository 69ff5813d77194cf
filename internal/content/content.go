// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content serves compiled article bodies. Bodies are Markdown files
// keyed by locale and slug; compiled HTML is kept in process (L1) and,
// when configured, in a shared cache (L2).
package content

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"lingopress/internal/markdown"
	"lingopress/internal/models"
	"lingopress/internal/storage"
)

// Body is the compiled content of one article rendition.
type Body struct {
	HTML string
}

// SharedCache is an optional second cache level shared between processes.
type SharedCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// Store loads and compiles article bodies. It is safe for concurrent use.
type Store struct {
	src     storage.Source
	shared  SharedCache
	log     *slog.Logger
	compile func([]byte) (string, error)

	mu    sync.RWMutex
	local map[string]string

	group singleflight.Group
}

// NewStore returns a Store reading Markdown from src. shared and log may
// be nil.
func NewStore(src storage.Source, shared SharedCache, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		src:     src,
		shared:  shared,
		log:     log,
		compile: markdown.ToHTML,
		local:   make(map[string]string),
	}
}

// Key returns the source key of a body.
func Key(locale models.Locale, slug models.ArticleSlug) string {
	return string(locale) + "/" + slug.String() + ".md"
}

// Get returns the compiled body of the article with slug in locale.
// A missing source or a body that fails to compile returns (nil, nil);
// only source read failures are errors. Concurrent calls for the same
// body share one compilation.
func (s *Store) Get(ctx context.Context, locale models.Locale, slug models.ArticleSlug) (*Body, error) {
	key := Key(locale, slug)

	s.mu.RLock()
	html, ok := s.local[key]
	s.mu.RUnlock()
	if ok {
		return &Body{HTML: html}, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.load(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	body, _ := v.(*Body)
	return body, nil
}

func (s *Store) load(ctx context.Context, key string) (*Body, error) {
	if s.shared != nil {
		if data, ok := s.shared.Get(ctx, key); ok {
			s.remember(key, string(data))
			return &Body{HTML: string(data)}, nil
		}
	}

	source, err := storage.ReadAll(ctx, s.src, key)
	if err != nil {
		if storage.IsNotExist(err) {
			s.log.Warn("article body not found", "key", key)
			return nil, nil
		}
		return nil, fmt.Errorf("read body %s: %w", key, err)
	}

	html, err := s.compile(source)
	if err != nil {
		s.log.Error("article body compile failed", "key", key, "error", err)
		return nil, nil
	}

	s.remember(key, html)
	if s.shared != nil {
		s.shared.Set(ctx, key, []byte(html))
	}
	return &Body{HTML: html}, nil
}

func (s *Store) remember(key, html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local[key] = html
}
