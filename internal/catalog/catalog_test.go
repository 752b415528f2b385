package catalog

import (
	"errors"
	"testing"
	"time"
)

func validData() Data {
	pub := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	return Data{
		Authors: []Option{
			{ID: "a1", Name: "Ursula Vane"},
			{ID: "a2", Name: "Miles Harrow"},
		},
		Genres: []Option{
			{ID: "g1", Name: "Fantasy"},
			{ID: "g2", Name: "Mystery"},
		},
		Books: []Book{
			{ID: "b1", Title: "The Glass Orchard", AuthorID: "a1", GenreIDs: []string{"g1"}, PublishedAt: pub},
			{ID: "b2", Title: "Harbor Lights", AuthorID: "a2", GenreIDs: []string{"g2", "g1"}, PublishedAt: pub},
		},
	}
}

func TestNewValid(t *testing.T) {
	c, err := New(validData())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 books, got %d", c.Len())
	}
}

func TestNewRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Data)
	}{
		{
			name: "duplicate book id",
			mutate: func(d *Data) {
				d.Books[1].ID = d.Books[0].ID
			},
		},
		{
			name: "unknown author",
			mutate: func(d *Data) {
				d.Books[0].AuthorID = "nobody"
			},
		},
		{
			name: "unknown genre",
			mutate: func(d *Data) {
				d.Books[0].GenreIDs = []string{"nope"}
			},
		},
		{
			name: "empty genre list",
			mutate: func(d *Data) {
				d.Books[1].GenreIDs = nil
			},
		},
		{
			name: "duplicate author id",
			mutate: func(d *Data) {
				d.Authors[1].ID = d.Authors[0].ID
			},
		},
		{
			name: "empty book id",
			mutate: func(d *Data) {
				d.Books[0].ID = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.mutate(&d)
			if _, err := New(d); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestAllPreservesOrder(t *testing.T) {
	c, err := New(validData())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	books := c.All()
	if books[0].ID != "b1" || books[1].ID != "b2" {
		t.Errorf("native order not preserved: %q, %q", books[0].ID, books[1].ID)
	}
}

func TestNameLookups(t *testing.T) {
	c, err := New(validData())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	name, err := c.AuthorName("a1")
	if err != nil {
		t.Fatalf("AuthorName failed: %v", err)
	}
	if name != "Ursula Vane" {
		t.Errorf("expected %q, got %q", "Ursula Vane", name)
	}

	if _, err := c.AuthorName("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.GenreName("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListingsKeepInsertionOrder(t *testing.T) {
	c, err := New(validData())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	authors := c.Authors()
	if len(authors) != 2 || authors[0].ID != "a1" || authors[1].ID != "a2" {
		t.Errorf("author order wrong: %+v", authors)
	}
	genres := c.Genres()
	if len(genres) != 2 || genres[0].ID != "g1" || genres[1].ID != "g2" {
		t.Errorf("genre order wrong: %+v", genres)
	}
}

func TestBookLookup(t *testing.T) {
	c, err := New(validData())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	b, ok := c.Book("b2")
	if !ok {
		t.Fatal("expected to find b2")
	}
	if b.Title != "Harbor Lights" {
		t.Errorf("expected %q, got %q", "Harbor Lights", b.Title)
	}

	if _, ok := c.Book("b999"); ok {
		t.Error("expected miss for unknown id")
	}
}
