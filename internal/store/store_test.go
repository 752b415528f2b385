package store

import (
	"testing"
	"time"

	"github.com/ewinters/stacks/internal/catalog"
)

func testData() catalog.Data {
	pub := time.Date(2018, 3, 14, 0, 0, 0, 0, time.UTC)
	return catalog.Data{
		Authors: []catalog.Option{
			{ID: "a1", Name: "Ursula Vane"},
			{ID: "a2", Name: "Miles Harrow"},
		},
		Genres: []catalog.Option{
			{ID: "g1", Name: "Fantasy"},
			{ID: "g2", Name: "Mystery"},
		},
		Books: []catalog.Book{
			{
				ID:          "b1",
				Title:       "The Glass Orchard",
				AuthorID:    "a1",
				GenreIDs:    []string{"g1", "g2"},
				Image:       "covers/b1.jpg",
				Description: "An orchard made of glass.",
				PublishedAt: pub,
			},
			{
				ID:          "b2",
				Title:       "Harbor Lights",
				AuthorID:    "a2",
				GenreIDs:    []string{"g2"},
				PublishedAt: pub.AddDate(1, 0, 0),
			},
		},
	}
}

func TestOpen(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	var name string
	err = st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='books'").Scan(&name)
	if err != nil {
		t.Fatalf("books table not created: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	count, err := st.SaveCatalog(testData())
	if err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 new books, got %d", count)
	}

	d, err := st.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(d.Books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(d.Books))
	}
	// Position order must survive the round trip
	if d.Books[0].ID != "b1" || d.Books[1].ID != "b2" {
		t.Errorf("book order not preserved: %s, %s", d.Books[0].ID, d.Books[1].ID)
	}
	if len(d.Authors) != 2 || d.Authors[0].ID != "a1" || d.Authors[1].ID != "a2" {
		t.Errorf("author order not preserved: %+v", d.Authors)
	}
	if len(d.Genres) != 2 || d.Genres[0].ID != "g1" {
		t.Errorf("genre order not preserved: %+v", d.Genres)
	}

	b := d.Books[0]
	if b.Title != "The Glass Orchard" {
		t.Errorf("title mismatch: %q", b.Title)
	}
	if len(b.GenreIDs) != 2 || b.GenreIDs[0] != "g1" || b.GenreIDs[1] != "g2" {
		t.Errorf("genre ids not preserved: %v", b.GenreIDs)
	}
	if !b.PublishedAt.Equal(time.Date(2018, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("published time not preserved: %v", b.PublishedAt)
	}

	// The loaded data must still validate
	if _, err := catalog.New(d); err != nil {
		t.Errorf("loaded catalog failed validation: %v", err)
	}
}

func TestSaveCatalogIgnoresDuplicates(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	if _, err := st.SaveCatalog(testData()); err != nil {
		t.Fatalf("first SaveCatalog failed: %v", err)
	}

	count, err := st.SaveCatalog(testData())
	if err != nil {
		t.Fatalf("second SaveCatalog failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 new books on re-import, got %d", count)
	}

	d, err := st.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(d.Books) != 2 {
		t.Errorf("expected 2 books after re-import, got %d", len(d.Books))
	}
}

func TestLoadEmptyStore(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	d, err := st.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(d.Books) != 0 || len(d.Authors) != 0 || len(d.Genres) != 0 {
		t.Errorf("expected empty catalog, got %+v", d)
	}
}
