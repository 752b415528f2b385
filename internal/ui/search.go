package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ewinters/stacks/internal/catalog"
	"github.com/ewinters/stacks/internal/filter"
)

// searchField identifies the focused form field.
type searchField int

const (
	fieldTitle searchField = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

// searchModel is the search form: a free-text title input plus author
// and genre pickers. Picker option lists come from the session and are
// already prefixed with the "All" pseudo-entry.
type searchModel struct {
	title   textinput.Model
	authors []catalog.Option
	genres  []catalog.Option

	authorIdx int
	genreIdx  int
	focus     searchField
	width     int
}

func newSearch(authors, genres []catalog.Option) searchModel {
	ti := textinput.New()
	ti.Placeholder = "title contains..."
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	return searchModel{
		title:   ti,
		authors: authors,
		genres:  genres,
	}
}

// criteria builds the filter criteria from the current form state.
func (m *searchModel) criteria() filter.Criteria {
	return filter.Criteria{
		Title:    m.title.Value(),
		AuthorID: m.authors[m.authorIdx].ID,
		GenreID:  m.genres[m.genreIdx].ID,
	}
}

// reset clears the form back to the identity filter.
func (m *searchModel) reset() {
	m.title.SetValue("")
	m.authorIdx = 0
	m.genreIdx = 0
	m.focus = fieldTitle
	m.title.Focus()
}

func (m *searchModel) setSize(width int) {
	m.width = width
	if width > 20 {
		m.title.Width = width - 20
	}
}

// update handles keys while the form is open. Submit and cancel are the
// caller's concern; this only moves focus and edits fields.
func (m *searchModel) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return nil
	}

	switch m.focus {
	case fieldAuthor:
		m.authorIdx = cycle(m.authorIdx, len(m.authors), msg.String())
		return nil
	case fieldGenre:
		m.genreIdx = cycle(m.genreIdx, len(m.genres), msg.String())
		return nil
	default:
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return cmd
	}
}

func (m *searchModel) setFocus(f searchField) {
	m.focus = f
	if f == fieldTitle {
		m.title.Focus()
	} else {
		m.title.Blur()
	}
}

// cycle moves a picker index with left/right, wrapping at the ends.
func cycle(idx, n int, key string) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "left", "h":
		return (idx + n - 1) % n
	case "right", "l", " ":
		return (idx + 1) % n
	}
	return idx
}

// view renders the form.
func (m *searchModel) view() string {
	var b strings.Builder

	b.WriteString(Header.Render("Search the catalog"))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldTitle, "Title "))
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(m.label(fieldAuthor, "Author"))
	b.WriteString(FormValue.Render(picker(m.authors[m.authorIdx].Name)))
	b.WriteString("\n")
	b.WriteString(m.label(fieldGenre, "Genre "))
	b.WriteString(FormValue.Render(picker(m.genres[m.genreIdx].Name)))
	b.WriteString("\n\n")

	hints := []string{
		StatusBarKey.Render("tab") + StatusBarText.Render(" next field"),
		StatusBarKey.Render("←/→") + StatusBarText.Render(" choose"),
		StatusBarKey.Render("enter") + StatusBarText.Render(" search"),
		StatusBarKey.Render("esc") + StatusBarText.Render(" cancel"),
	}
	b.WriteString(StatusBar.Width(max(m.width, 0)).Render(strings.Join(hints, "  ")))
	return b.String()
}

func (m *searchModel) label(f searchField, text string) string {
	if m.focus == f {
		return FormLabelActive.Render("> " + text)
	}
	return FormLabel.Render("  " + text)
}

func picker(name string) string {
	return "◂ " + name + " ▸"
}
