// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Relationship is a to-one association that is either not loaded or loaded.
// A loaded relationship may hold the zero value (e.g. a nil parent).
// The zero Relationship is not loaded.
type Relationship[T any] struct {
	value  T
	loaded bool
}

// NotLoaded returns a relationship that fails on access.
func NotLoaded[T any]() Relationship[T] {
	return Relationship[T]{}
}

// Loaded returns a relationship holding v.
func Loaded[T any](v T) Relationship[T] {
	return Relationship[T]{value: v, loaded: true}
}

// IsLoaded reports whether the relationship has been hydrated.
func (r Relationship[T]) IsLoaded() bool { return r.loaded }

// Value returns the related value, or a relationship_not_loaded error.
func (r Relationship[T]) Value() (T, error) {
	if !r.loaded {
		var zero T
		return zero, newDomainError(CodeRelationshipNotLoaded, "relationship accessed before it was loaded")
	}
	return r.value, nil
}

// RelationshipCollection is a to-many association that is either not
// loaded or loaded. The zero value is not loaded.
type RelationshipCollection[T any] struct {
	values []T
	loaded bool
}

// NotLoadedCollection returns a collection that fails on access.
func NotLoadedCollection[T any]() RelationshipCollection[T] {
	return RelationshipCollection[T]{}
}

// LoadedCollection returns a collection holding items. A nil slice loads as
// an empty collection.
func LoadedCollection[T any](items []T) RelationshipCollection[T] {
	if items == nil {
		items = []T{}
	}
	return RelationshipCollection[T]{values: items, loaded: true}
}

// IsLoaded reports whether the collection has been hydrated.
func (c RelationshipCollection[T]) IsLoaded() bool { return c.loaded }

// Values returns the related items, or a
// relationship_collection_not_loaded error.
func (c RelationshipCollection[T]) Values() ([]T, error) {
	if !c.loaded {
		return nil, newDomainError(CodeRelationshipCollectionNotLoaded, "relationship collection accessed before it was loaded")
	}
	return c.values, nil
}
