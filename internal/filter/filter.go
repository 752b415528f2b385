// Package filter evaluates search criteria against the catalog.
// All functions are simple: []Book in, []Book out. No side effects.
package filter

import (
	"strings"

	"github.com/ewinters/stacks/internal/catalog"
)

// Any is the sentinel id meaning "no restriction" for author and genre.
const Any = "any"

// Criteria is one search submission. The zero value is the identity
// filter: empty strings normalize to no restriction, so malformed or
// blank fields degrade to matching everything rather than failing.
type Criteria struct {
	Title    string
	AuthorID string
	GenreID  string
}

// normalize trims the title query and maps empty selector ids to Any.
func (c Criteria) normalize() Criteria {
	c.Title = strings.TrimSpace(c.Title)
	if c.AuthorID == "" {
		c.AuthorID = Any
	}
	if c.GenreID == "" {
		c.GenreID = Any
	}
	return c
}

// Evaluate returns the books matching c, in the catalog's native order.
// The three clauses are AND-ed: case-insensitive title substring, exact
// author id, genre id membership. Deterministic for identical inputs.
// Unknown selector ids simply match nothing.
func Evaluate(c Criteria, books []catalog.Book) []catalog.Book {
	c = c.normalize()
	query := strings.ToLower(c.Title)

	result := make([]catalog.Book, 0, len(books))
	for _, b := range books {
		if !matchesTitle(b, query) {
			continue
		}
		if c.AuthorID != Any && b.AuthorID != c.AuthorID {
			continue
		}
		if c.GenreID != Any && !hasGenre(b, c.GenreID) {
			continue
		}
		result = append(result, b)
	}

	return result
}

// matchesTitle reports whether the book title contains the lowercased
// query. An empty query passes everything.
func matchesTitle(b catalog.Book, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), query)
}

// hasGenre reports whether id appears in the book's genre list.
// Stops at the first hit; position within the list is irrelevant.
func hasGenre(b catalog.Book, id string) bool {
	for _, gid := range b.GenreIDs {
		if gid == id {
			return true
		}
	}
	return false
}
