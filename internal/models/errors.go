// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "errors"

// ErrorCode is the stable discriminator carried by a DomainError.
type ErrorCode string

// Domain error codes. Callers match on these instead of on messages.
const (
	CodeArticleInvalidID   ErrorCode = "article_invalid_id"
	CodeArticleInvalidSlug ErrorCode = "article_invalid_slug"

	CodeCategoryInvalidID   ErrorCode = "category_invalid_id"
	CodeCategoryInvalidSlug ErrorCode = "category_invalid_slug"

	CodeTagInvalidID   ErrorCode = "tag_invalid_id"
	CodeTagInvalidSlug ErrorCode = "tag_invalid_slug"

	CodeRelationshipNotLoaded           ErrorCode = "relationship_not_loaded"
	CodeRelationshipCollectionNotLoaded ErrorCode = "relationship_collection_not_loaded"
)

// DomainError is returned by value-object constructors and relationship
// accessors.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newDomainError(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

// IsCode reports whether err wraps a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
