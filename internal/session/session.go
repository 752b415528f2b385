// Package session owns the mutable state for one browsing interaction:
// the current match set and its pagination cursor. A Session is a plain
// value owned by a single event loop; it has no internal locking and no
// global state, so independent sessions over the same catalog are cheap.
package session

import (
	"github.com/ewinters/stacks/internal/catalog"
	"github.com/ewinters/stacks/internal/filter"
	"github.com/ewinters/stacks/internal/pager"
	"github.com/ewinters/stacks/internal/preview"
	"github.com/ewinters/stacks/internal/resolve"
)

// RenderPlan tells the rendering surface what to do with one slice of
// results. Replace means clear the visible list first; otherwise the
// items are appended to whatever is already shown.
type RenderPlan struct {
	Items     []preview.Item
	Replace   bool
	Remaining int
	NoResults bool
}

// Session is the controller for one browsing interaction. Every state
// transition runs to completion before the next event is handled.
type Session struct {
	catalog *catalog.Catalog
	matches []catalog.Book
	cursor  pager.Cursor
}

// New creates a Session over cat. The session shows nothing until the
// first SubmitSearch; callers wanting the reference startup state (full
// catalog, page 1) submit the zero Criteria right after New.
func New(cat *catalog.Catalog, pageSize int) *Session {
	return &Session{
		catalog: cat,
		cursor:  pager.New(pageSize),
	}
}

// Catalog returns the catalog this session browses.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// MatchCount returns the size of the current match set.
func (s *Session) MatchCount() int {
	return len(s.matches)
}

// HasMore reports whether RequestMore would yield items.
func (s *Session) HasMore() bool {
	return s.cursor.HasMore()
}

// SubmitSearch replaces the match set with the result of evaluating c
// and renders the first page. The returned plan always replaces the
// visible list, even when the match set is empty.
func (s *Session) SubmitSearch(c filter.Criteria) RenderPlan {
	s.matches = filter.Evaluate(c, s.catalog.All())
	s.cursor.Reset(len(s.matches))
	r := s.cursor.Advance()

	return RenderPlan{
		Items:     preview.Render(s.matches[r.Start:r.End], s.catalog),
		Replace:   true,
		Remaining: s.cursor.Remaining(),
		NoResults: len(s.matches) == 0,
	}
}

// RequestMore renders the next page of the current match set, to be
// appended to the visible list. An exhausted cursor yields an empty
// plan; it never fails.
func (s *Session) RequestMore() RenderPlan {
	r := s.cursor.Advance()

	return RenderPlan{
		Items:     preview.Render(s.matches[r.Start:r.End], s.catalog),
		Replace:   false,
		Remaining: s.cursor.Remaining(),
		NoResults: len(s.matches) == 0,
	}
}

// SelectItem resolves an interaction target to the underlying book.
// A miss is a normal outcome the caller silently ignores.
func (s *Session) SelectItem(t resolve.Target) (catalog.Book, bool) {
	return resolve.Resolve(t, s.catalog)
}

// AuthorOptions lists the selectable authors, prefixed with the "any"
// pseudo-entry under the caller-supplied label.
func (s *Session) AuthorOptions(anyLabel string) []catalog.Option {
	return prependAny(anyLabel, s.catalog.Authors())
}

// GenreOptions lists the selectable genres, prefixed with the "any"
// pseudo-entry under the caller-supplied label.
func (s *Session) GenreOptions(anyLabel string) []catalog.Option {
	return prependAny(anyLabel, s.catalog.Genres())
}

func prependAny(label string, opts []catalog.Option) []catalog.Option {
	out := make([]catalog.Option, 0, len(opts)+1)
	out = append(out, catalog.Option{ID: filter.Any, Name: label})
	return append(out, opts...)
}
