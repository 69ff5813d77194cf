// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Tag is a flat article label rendered in one locale.
type Tag struct {
	ID            TagID
	Slug          TagSlug
	Name          string
	ArticlesCount int
}
