package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"

	"github.com/ewinters/stacks/internal/session"
)

// headerLines is the fixed chrome above the list: title bar plus one
// blank separator. Layout math in lineOwner depends on it.
const headerLines = 2

// browseModel is the visible preview list. Items accumulate across
// "show more" plans and are replaced wholesale by search plans; prior
// rows are never re-rendered or dropped while appending.
type browseModel struct {
	items     []previewRow
	cursor    int
	remaining int
	noResults bool
	hasMore   bool
	compact   bool
	total     int // current match set size, for the header

	width  int
	height int

	// Spring-smoothed scrolling, same physics as a spring at 60fps.
	spring    harmonica.Spring
	scrollPos float64
	scrollVel float64
	target    float64
	animating bool
}

// previewRow pairs a rendered preview with its identifier. The id is
// what the hit-map hands to the selection resolver.
type previewRow struct {
	id     string
	title  string
	author string
}

func newBrowse(compact bool) browseModel {
	return browseModel{
		spring:  harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.8),
		compact: compact,
	}
}

// apply folds a render plan into the visible list.
func (m *browseModel) apply(plan session.RenderPlan, matchCount int, hasMore bool) {
	if plan.Replace {
		m.items = m.items[:0]
		m.cursor = 0
		m.scrollPos = 0
		m.scrollVel = 0
		m.target = 0
		m.animating = false
	}
	for _, it := range plan.Items {
		m.items = append(m.items, previewRow{id: it.ID, title: it.Title, author: it.AuthorName})
	}
	m.remaining = plan.Remaining
	m.noResults = plan.NoResults
	m.hasMore = hasMore
	m.total = matchCount
}

func (m *browseModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// linesPerItem is the block height of one preview row.
func (m *browseModel) linesPerItem() int {
	if m.compact {
		return 1
	}
	return 3 // title, author, separator
}

// moveCursor shifts the highlight and retargets the scroll spring.
// Returns true when an animation frame loop should run.
func (m *browseModel) moveCursor(delta int) bool {
	if len(m.items) == 0 {
		return false
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	return m.retarget()
}

// cursorTo jumps the highlight to an absolute index.
func (m *browseModel) cursorTo(idx int) bool {
	if len(m.items) == 0 {
		return false
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.items) {
		idx = len(m.items) - 1
	}
	m.cursor = idx
	return m.retarget()
}

// retarget points the spring at the line that keeps the cursor inside
// the viewport.
func (m *browseModel) retarget() bool {
	lpi := m.linesPerItem()
	cursorTop := float64(m.cursor * lpi)

	viewH := float64(m.viewHeight())
	if cursorTop < m.scrollPos {
		m.target = cursorTop
	} else if cursorTop+float64(lpi) > m.scrollPos+viewH {
		m.target = cursorTop + float64(lpi) - viewH
	} else {
		return m.animating
	}
	m.animating = true
	return true
}

// step advances the scroll spring one frame. Returns false once the
// spring has settled.
func (m *browseModel) step() bool {
	if !m.animating {
		return false
	}
	m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, m.target)
	if math.Abs(m.scrollPos-m.target) < 0.25 && math.Abs(m.scrollVel) < 0.25 {
		m.scrollPos = m.target
		m.scrollVel = 0
		m.animating = false
	}
	return m.animating
}

// viewHeight is the line budget for list content: total height minus
// header chrome, the show-more line and the status bar.
func (m *browseModel) viewHeight() int {
	h := m.height - headerLines - 2
	if h < 1 {
		h = 1
	}
	return h
}

// selectedID returns the preview id under the cursor, if any.
func (m *browseModel) selectedID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return "", false
	}
	return m.items[m.cursor].id, true
}

// lineOwner maps a terminal row to the preview id rendered there. The
// layout is pure arithmetic (fixed chrome, fixed block height), so a
// mouse hit can be resolved without re-rendering. Chrome rows (header,
// separators, the show-more control, the status bar) own nothing.
func (m *browseModel) lineOwner(y int) (string, bool) {
	if m.noResults || len(m.items) == 0 {
		return "", false
	}
	listY := y - headerLines
	if listY < 0 || listY >= m.viewHeight() {
		return "", false
	}

	lpi := m.linesPerItem()
	absolute := listY + m.offset()
	idx := absolute / lpi
	if idx < 0 || idx >= len(m.items) {
		return "", false
	}
	// The trailing separator line of a comfortable block is chrome
	if !m.compact && absolute%lpi == lpi-1 {
		return "", false
	}
	return m.items[idx].id, true
}

// offset is the integer scroll offset derived from the spring position.
func (m *browseModel) offset() int {
	total := len(m.items) * m.linesPerItem()
	maxOffset := total - m.viewHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	off := int(math.Round(m.scrollPos))
	if off < 0 {
		off = 0
	}
	if off > maxOffset {
		off = maxOffset
	}
	return off
}

// view renders the full browse screen.
func (m *browseModel) view() string {
	var b strings.Builder

	b.WriteString(Header.Render(fmt.Sprintf("stacks — %d matches", m.total)))
	b.WriteString("\n\n")

	switch {
	case m.noResults:
		b.WriteString(NoResults.Render("No books match your search. Press / to try again."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderShowMore())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderList renders the visible window of preview rows.
func (m *browseModel) renderList() string {
	offset := m.offset()
	viewH := m.viewHeight()

	var lines []string
	for i, row := range m.items {
		lines = append(lines, m.renderRow(row, i == m.cursor)...)
	}

	end := offset + viewH
	if end > len(lines) {
		end = len(lines)
	}
	if offset > end {
		offset = end
	}
	return strings.Join(lines[offset:end], "\n")
}

// renderRow renders one preview block.
func (m *browseModel) renderRow(row previewRow, selected bool) []string {
	style := NormalItem
	if selected {
		style = SelectedItem
	}

	if m.compact {
		return []string{style.Render(truncate(row.title+" — "+row.author, m.width-2))}
	}
	return []string{
		style.Render(truncate(row.title, m.width-2)),
		AuthorLine.Render(truncate("by "+row.author, m.width-2)),
		"",
	}
}

// renderShowMore renders the load-more control, disabled once the
// cursor is exhausted.
func (m *browseModel) renderShowMore() string {
	if m.noResults {
		return ShowMoreDisabled.Render("")
	}
	if m.hasMore {
		return ShowMore.Render(fmt.Sprintf("[m] show more (%d remaining)", m.remaining))
	}
	return ShowMoreDisabled.Render("all results shown")
}

// renderStatus renders the bottom key-hint bar.
func (m *browseModel) renderStatus() string {
	hints := []string{
		StatusBarKey.Render("/") + StatusBarText.Render(" search"),
		StatusBarKey.Render("enter") + StatusBarText.Render(" details"),
		StatusBarKey.Render("m") + StatusBarText.Render(" more"),
		StatusBarKey.Render("q") + StatusBarText.Render(" quit"),
	}
	return StatusBar.Width(max(m.width, 0)).Render(strings.Join(hints, "  "))
}

// truncate shortens s to width runes with an ellipsis.
func truncate(s string, width int) string {
	if width < 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
