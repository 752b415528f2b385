// Package catalog holds the immutable book collection and the author/genre
// name tables. It is populated once at startup and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when an author or genre id has no entry.
// A miss here means the catalog data itself is inconsistent, so callers
// should surface it rather than substitute a default.
var ErrNotFound = errors.New("catalog: id not found")

// Book is a single catalog record. Immutable after load.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AuthorID    string    `json:"authorId"`
	GenreIDs    []string  `json:"genreIds"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Option is an (id, display name) pair for selectable listings.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Data is the raw catalog shape: the same struct serves the in-process
// literal, the import file format, and the store round trip.
type Data struct {
	Authors []Option `json:"authors"`
	Genres  []Option `json:"genres"`
	Books   []Book   `json:"books"`
}

// Catalog is the read-only view over a validated Data set.
// NOT an interface - concrete type, like the rest of the storage layer.
type Catalog struct {
	books    []Book
	authors  []Option // insertion order preserved for listings
	genres   []Option
	byAuthor map[string]string // id -> display name
	byGenre  map[string]string
}

// New validates d and builds a Catalog. Validation happens exactly once,
// here: duplicate ids, empty genre lists, and dangling author/genre
// references are constructor errors, never later panics.
func New(d Data) (*Catalog, error) {
	c := &Catalog{
		books:    make([]Book, len(d.Books)),
		authors:  make([]Option, len(d.Authors)),
		genres:   make([]Option, len(d.Genres)),
		byAuthor: make(map[string]string, len(d.Authors)),
		byGenre:  make(map[string]string, len(d.Genres)),
	}
	copy(c.authors, d.Authors)
	copy(c.genres, d.Genres)
	copy(c.books, d.Books)

	for _, a := range c.authors {
		if a.ID == "" {
			return nil, fmt.Errorf("author %q: empty id", a.Name)
		}
		if _, dup := c.byAuthor[a.ID]; dup {
			return nil, fmt.Errorf("author %q: duplicate id", a.ID)
		}
		c.byAuthor[a.ID] = a.Name
	}
	for _, g := range c.genres {
		if g.ID == "" {
			return nil, fmt.Errorf("genre %q: empty id", g.Name)
		}
		if _, dup := c.byGenre[g.ID]; dup {
			return nil, fmt.Errorf("genre %q: duplicate id", g.ID)
		}
		c.byGenre[g.ID] = g.Name
	}

	seen := make(map[string]bool, len(c.books))
	for _, b := range c.books {
		if b.ID == "" {
			return nil, fmt.Errorf("book %q: empty id", b.Title)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("book %q: duplicate id", b.ID)
		}
		seen[b.ID] = true
		if _, ok := c.byAuthor[b.AuthorID]; !ok {
			return nil, fmt.Errorf("book %q: unknown author %q", b.ID, b.AuthorID)
		}
		if len(b.GenreIDs) == 0 {
			return nil, fmt.Errorf("book %q: no genres", b.ID)
		}
		for _, gid := range b.GenreIDs {
			if _, ok := c.byGenre[gid]; !ok {
				return nil, fmt.Errorf("book %q: unknown genre %q", b.ID, gid)
			}
		}
	}

	return c, nil
}

// All returns every book in the catalog's native order.
// Callers must treat the slice as read-only.
func (c *Catalog) All() []Book {
	return c.books
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Book looks up a single record by id.
func (c *Catalog) Book(id string) (Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// AuthorName resolves an author id to its display name.
func (c *Catalog) AuthorName(id string) (string, error) {
	name, ok := c.byAuthor[id]
	if !ok {
		return "", fmt.Errorf("author %q: %w", id, ErrNotFound)
	}
	return name, nil
}

// GenreName resolves a genre id to its display name.
func (c *Catalog) GenreName(id string) (string, error) {
	name, ok := c.byGenre[id]
	if !ok {
		return "", fmt.Errorf("genre %q: %w", id, ErrNotFound)
	}
	return name, nil
}

// Authors lists all authors in insertion order.
func (c *Catalog) Authors() []Option {
	return c.authors
}

// Genres lists all genres in insertion order.
func (c *Catalog) Genres() []Option {
	return c.genres
}
