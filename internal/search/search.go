// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search implements a small typo-tolerant full-text index over
// article titles and descriptions. Matching is token based, ignores case
// and diacritics, and does not depend on word order.
package search

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the fuzziness used when none is configured.
// 0 accepts only exact, prefix and substring token matches; 1 accepts
// any token within its own length in edits.
const DefaultThreshold = 0.4

// Field weights. A title hit always outranks the same description hit.
const (
	titleWeight       = 1.0
	descriptionWeight = 0.6
)

// Per-token match quality.
const (
	exactScore     = 1.0
	prefixScore    = 0.9
	substringScore = 0.75
	fuzzyScore     = 0.6
)

// Document is the searchable text of one corpus entry.
type Document struct {
	Title       string
	Description string
}

// Hit is a matching document, identified by its position in the slice the
// index was built from.
type Hit struct {
	Index int
	Score float64
}

type entry struct {
	title       []string
	description []string
}

// Index is safe for concurrent use. Tokenization happens once, on the
// first search.
type Index struct {
	docs      []Document
	threshold float64

	once    sync.Once
	entries []entry
}

// New returns an index over docs. A threshold outside [0, 1] is clamped.
func New(docs []Document, threshold float64) *Index {
	return &Index{docs: docs, threshold: math.Max(0, math.Min(1, threshold))}
}

func (ix *Index) build() {
	ix.entries = make([]entry, len(ix.docs))
	for i, d := range ix.docs {
		ix.entries[i] = entry{
			title:       Tokenize(d.Title),
			description: Tokenize(d.Description),
		}
	}
}

// Search returns the documents matching every token of query, best first.
// Documents with equal scores keep their original order.
func (ix *Index) Search(query string) []Hit {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return nil
	}
	ix.once.Do(ix.build)

	var hits []Hit
	for i, e := range ix.entries {
		if score, ok := ix.score(terms, e); ok {
			hits = append(hits, Hit{Index: i, Score: score})
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return hits
}

// score averages the best weighted match of each term. A term with no
// match anywhere rejects the document.
func (ix *Index) score(terms []string, e entry) (float64, bool) {
	var total float64
	for _, term := range terms {
		best := math.Max(
			titleWeight*ix.bestMatch(term, e.title),
			descriptionWeight*ix.bestMatch(term, e.description),
		)
		if best == 0 {
			return 0, false
		}
		total += best
	}
	return total / float64(len(terms)), true
}

func (ix *Index) bestMatch(term string, tokens []string) float64 {
	var best float64
	for _, tok := range tokens {
		if s := ix.match(term, tok); s > best {
			best = s
			if best == exactScore {
				break
			}
		}
	}
	return best
}

func (ix *Index) match(term, tok string) float64 {
	switch {
	case term == tok:
		return exactScore
	case strings.HasPrefix(tok, term):
		return prefixScore
	case strings.Contains(tok, term):
		return substringScore
	}

	n := utf8.RuneCountInString(term)
	allowed := int(ix.threshold * float64(n))
	if allowed == 0 {
		return 0
	}
	d := fuzzy.LevenshteinDistance(term, tok)
	if d > allowed {
		return 0
	}
	longest := max(n, utf8.RuneCountInString(tok))
	return fuzzyScore * (1 - float64(d)/float64(longest))
}

// Tokenize folds s to lowercase without diacritics and splits it on
// anything that is not a letter or digit.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Fold lowercases s and strips combining marks ("Canción" → "cancion").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Lower(language.Und), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
