// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a hierarchical article category rendered in one locale.
// Categories form a tree through ParentID; the tree is assumed acyclic.
type Category struct {
	ID            CategoryID
	Slug          CategorySlug
	Name          string
	Description   string
	ImageURL      string
	ImageAltTitle string
	ParentID      *CategoryID

	// ArticlesCount is derived on every read from the published articles
	// of the category's locale.
	ArticlesCount int

	Parent   Relationship[*Category]
	Children RelationshipCollection[Category]
}
