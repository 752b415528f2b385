package ui

import (
	"strings"

	"github.com/ewinters/stacks/internal/catalog"
)

// renderDetail renders the single detail view for a selected book with
// its full fields. Name lookups already validated at catalog load, so a
// miss here falls back to the raw id rather than hiding the record.
func renderDetail(b catalog.Book, cat *catalog.Catalog, width int) string {
	author, err := cat.AuthorName(b.AuthorID)
	if err != nil {
		author = b.AuthorID
	}

	genres := make([]string, 0, len(b.GenreIDs))
	for _, gid := range b.GenreIDs {
		name, err := cat.GenreName(gid)
		if err != nil {
			name = gid
		}
		genres = append(genres, name)
	}

	var b2 strings.Builder
	b2.WriteString(DetailTitle.Render(b.Title))
	b2.WriteString("\n\n")
	b2.WriteString(DetailField.Render("Author    ") + DetailText.Render(author))
	b2.WriteString("\n")
	b2.WriteString(DetailField.Render("Genres    ") + DetailText.Render(strings.Join(genres, ", ")))
	b2.WriteString("\n")
	b2.WriteString(DetailField.Render("Published ") + DetailText.Render(b.PublishedAt.Format("January 2, 2006")))
	if b.Image != "" {
		b2.WriteString("\n")
		b2.WriteString(DetailField.Render("Cover     ") + DetailText.Render(b.Image))
	}
	if b.Description != "" {
		b2.WriteString("\n\n")
		b2.WriteString(DetailText.Render(wrap(b.Description, width-8)))
	}
	b2.WriteString("\n\n")
	b2.WriteString(StatusBarText.Render("esc to close"))

	box := DetailBox
	if width > 4 {
		box = box.Width(width - 4)
	}
	return box.Render(b2.String())
}

// wrap breaks text into lines no longer than width runes, on spaces.
func wrap(s string, width int) string {
	if width < 10 {
		return s
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		switch {
		case line == "":
			line = w
		case len([]rune(line))+1+len([]rune(w)) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
