package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/ewinters/stacks/internal/catalog"
	"github.com/ewinters/stacks/internal/filter"
	"github.com/ewinters/stacks/internal/resolve"
)

// fortyBooks builds a 40-book catalog where books 3, 11, 19, 27 and 35
// carry the "fantasy" genre somewhere in their genre list.
func fortyBooks(t *testing.T) *catalog.Catalog {
	t.Helper()

	d := catalog.Data{
		Authors: []catalog.Option{
			{ID: "a1", Name: "Ursula Vane"},
			{ID: "a2", Name: "Miles Harrow"},
		},
		Genres: []catalog.Option{
			{ID: "general", Name: "General"},
			{ID: "fantasy", Name: "Fantasy"},
		},
	}

	pub := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		b := catalog.Book{
			ID:          fmt.Sprintf("b%02d", i),
			Title:       fmt.Sprintf("Volume %02d", i),
			AuthorID:    "a1",
			GenreIDs:    []string{"general"},
			PublishedAt: pub.AddDate(0, 0, i),
		}
		if i%2 == 1 {
			b.AuthorID = "a2"
		}
		if i%8 == 3 {
			// Vary the position so matching is order-independent
			if i%16 == 3 {
				b.GenreIDs = []string{"fantasy", "general"}
			} else {
				b.GenreIDs = []string{"general", "fantasy"}
			}
		}
		d.Books = append(d.Books, b)
	}

	c, err := catalog.New(d)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	return c
}

func TestInitialLoadScenario(t *testing.T) {
	s := New(fortyBooks(t), 24)

	plan := s.SubmitSearch(filter.Criteria{})

	if len(plan.Items) != 24 {
		t.Errorf("expected 24 items on first page, got %d", len(plan.Items))
	}
	if !plan.Replace {
		t.Error("initial plan must replace the visible list")
	}
	if plan.Remaining != 16 {
		t.Errorf("expected 16 remaining, got %d", plan.Remaining)
	}
	if plan.NoResults {
		t.Error("NoResults must be false for a full catalog")
	}
	if !s.HasMore() {
		t.Error("expected more pages available")
	}
}

func TestShowMoreAppendsRest(t *testing.T) {
	s := New(fortyBooks(t), 24)
	s.SubmitSearch(filter.Criteria{})

	plan := s.RequestMore()

	if plan.Replace {
		t.Error("show-more plan must append, not replace")
	}
	if len(plan.Items) != 16 {
		t.Errorf("expected 16 items on second page, got %d", len(plan.Items))
	}
	if plan.Remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", plan.Remaining)
	}
	if s.HasMore() {
		t.Error("expected show-more control to disable")
	}

	// Further requests are harmless no-ops
	again := s.RequestMore()
	if len(again.Items) != 0 {
		t.Errorf("expected empty plan after exhaustion, got %d items", len(again.Items))
	}
}

func TestPagesDoNotOverlap(t *testing.T) {
	s := New(fortyBooks(t), 24)

	first := s.SubmitSearch(filter.Criteria{})
	second := s.RequestMore()

	seen := make(map[string]bool)
	for _, it := range first.Items {
		seen[it.ID] = true
	}
	for _, it := range second.Items {
		if seen[it.ID] {
			t.Errorf("item %s rendered twice", it.ID)
		}
	}
	if len(first.Items)+len(second.Items) != 40 {
		t.Errorf("expected 40 items total, got %d", len(first.Items)+len(second.Items))
	}
}

func TestGenreSearchScenario(t *testing.T) {
	s := New(fortyBooks(t), 24)
	s.SubmitSearch(filter.Criteria{})

	plan := s.SubmitSearch(filter.Criteria{GenreID: "fantasy"})

	if s.MatchCount() != 5 {
		t.Errorf("expected 5 fantasy matches, got %d", s.MatchCount())
	}
	if len(plan.Items) != 5 {
		t.Errorf("expected 5 items, got %d", len(plan.Items))
	}
	if plan.NoResults {
		t.Error("NoResults must be false with 5 matches")
	}
	if !plan.Replace {
		t.Error("search plan must replace the visible list")
	}
}

func TestNoResultsScenario(t *testing.T) {
	s := New(fortyBooks(t), 24)
	s.SubmitSearch(filter.Criteria{})

	plan := s.SubmitSearch(filter.Criteria{Title: "zzzznotfound"})

	if len(plan.Items) != 0 {
		t.Errorf("expected empty first page, got %d items", len(plan.Items))
	}
	if !plan.NoResults {
		t.Error("expected NoResults indicator")
	}
	if plan.Remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", plan.Remaining)
	}
	if s.HasMore() {
		t.Error("expected no further pages")
	}
}

func TestNewSearchResetsPagination(t *testing.T) {
	s := New(fortyBooks(t), 24)
	s.SubmitSearch(filter.Criteria{})
	s.RequestMore() // exhaust the full catalog

	plan := s.SubmitSearch(filter.Criteria{AuthorID: "a2"})

	if !plan.Replace {
		t.Error("new search must replace the visible list")
	}
	if len(plan.Items) != 20 {
		t.Errorf("expected all 20 a2 books on page 1, got %d", len(plan.Items))
	}
	if plan.Items[0].AuthorName != "Miles Harrow" {
		t.Errorf("expected author name resolved, got %q", plan.Items[0].AuthorName)
	}
}

func TestSelectItem(t *testing.T) {
	s := New(fortyBooks(t), 24)
	s.SubmitSearch(filter.Criteria{})

	row := &resolve.Node{ID: "b07", Up: &resolve.Node{}}
	b, ok := s.SelectItem(row)
	if !ok {
		t.Fatal("expected selection to resolve")
	}
	if b.Title != "Volume 07" {
		t.Errorf("expected %q, got %q", "Volume 07", b.Title)
	}

	// Click outside any preview row: silent miss, session unchanged
	if _, ok := s.SelectItem(&resolve.Node{}); ok {
		t.Error("expected miss for target outside preview rows")
	}
	if s.MatchCount() != 40 {
		t.Errorf("selection must not disturb the match set, got %d", s.MatchCount())
	}
}

func TestOptionListings(t *testing.T) {
	s := New(fortyBooks(t), 24)

	authors := s.AuthorOptions("All authors")
	if len(authors) != 3 {
		t.Fatalf("expected 3 author options, got %d", len(authors))
	}
	if authors[0].ID != filter.Any || authors[0].Name != "All authors" {
		t.Errorf("expected any pseudo-entry first, got %+v", authors[0])
	}
	if authors[1].ID != "a1" || authors[2].ID != "a2" {
		t.Errorf("author order wrong: %+v", authors[1:])
	}

	genres := s.GenreOptions("All genres")
	if len(genres) != 3 {
		t.Fatalf("expected 3 genre options, got %d", len(genres))
	}
	if genres[0].ID != filter.Any {
		t.Errorf("expected any pseudo-entry first, got %+v", genres[0])
	}
}
