// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings
// and validation of slugs received from the outside world.
package slug

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the longest slug accepted by Valid.
const MaxLength = 128

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// whitespace matches runs of whitespace between words.
	whitespace = regexp.MustCompile(`\s+`)
	// canonical is the only shape a stored slug may take.
	canonical = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Generate creates a URL-friendly slug from the given string. Accented
// letters are reduced to their base letter before filtering.
// Example: "Café, World! 2026" → "cafe-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(stripMarks(s)))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Valid reports whether s is a canonical slug: lowercase ASCII letters and
// digits in hyphen-separated groups, at most MaxLength characters.
func Valid(s string) bool {
	if utf8.RuneCountInString(s) > MaxLength {
		return false
	}
	return canonical.MatchString(s)
}

// stripMarks decomposes s and drops combining marks ("é" → "e").
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
