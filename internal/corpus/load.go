// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"lingopress/internal/storage"
)

// File names of the three collections inside a data source.
const (
	ArticlesFile   = "articles.json"
	CategoriesFile = "categories.json"
	TagsFile       = "tags.json"
)

// Load reads the three collections from src. All three files must exist.
func Load(ctx context.Context, src storage.Source) (*Corpus, error) {
	var c Corpus
	if err := readJSON(ctx, src, ArticlesFile, &c.Articles); err != nil {
		return nil, err
	}
	if err := readJSON(ctx, src, CategoriesFile, &c.Categories); err != nil {
		return nil, err
	}
	if err := readJSON(ctx, src, TagsFile, &c.Tags); err != nil {
		return nil, err
	}

	slog.Info("corpus loaded",
		"source", fmt.Sprint(src),
		"articles", len(c.Articles),
		"categories", len(c.Categories),
		"tags", len(c.Tags),
	)
	return &c, nil
}

// LoadDir reads the collections from a local directory.
func LoadDir(ctx context.Context, dir string) (*Corpus, error) {
	return Load(ctx, storage.NewDir(dir))
}

func readJSON(ctx context.Context, src storage.Source, name string, dst any) error {
	data, err := storage.ReadAll(ctx, src, name)
	if err != nil {
		return fmt.Errorf("load corpus %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode corpus %s: %w", name, err)
	}
	return nil
}
