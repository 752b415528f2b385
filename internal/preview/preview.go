// Package preview maps catalog books into lightweight renderable
// summaries. Pure mapping: 1:1, order-preserving, no filtering.
package preview

import "github.com/ewinters/stacks/internal/catalog"

// unknownAuthor is shown when an author id misses the catalog. The
// catalog validates references at load, so this only appears with
// hand-built fixtures.
const unknownAuthor = "Unknown"

// Item is what the visible list renders for one book.
type Item struct {
	ID         string
	Title      string
	AuthorName string
	Image      string
}

// Render maps a slice of books to preview items. The result has the
// same length and order as the input.
func Render(books []catalog.Book, cat *catalog.Catalog) []Item {
	items := make([]Item, len(books))
	for i, b := range books {
		name, err := cat.AuthorName(b.AuthorID)
		if err != nil {
			name = unknownAuthor
		}
		items[i] = Item{
			ID:         b.ID,
			Title:      b.Title,
			AuthorName: name,
			Image:      b.Image,
		}
	}
	return items
}
