// Package ui provides the Bubble Tea front end for the catalog browser.
// All state transitions go through the session controller; the UI only
// applies render plans and forwards interaction targets.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ewinters/stacks/internal/catalog"
	"github.com/ewinters/stacks/internal/config"
	"github.com/ewinters/stacks/internal/filter"
	"github.com/ewinters/stacks/internal/logging"
	"github.com/ewinters/stacks/internal/resolve"
	"github.com/ewinters/stacks/internal/session"
)

// anyLabel is the display name of the "no restriction" picker entry.
const anyLabel = "All"

// viewMode selects what the app is showing.
type viewMode int

const (
	modeBrowse viewMode = iota
	modeSearch
	modeDetail
)

// scrollFrame drives the spring scroll animation.
type scrollFrame struct{}

// App is the root Bubble Tea model.
type App struct {
	session *session.Session
	browse  browseModel
	search  searchModel

	detail catalog.Book
	mode   viewMode

	width  int
	height int
	ready  bool
}

// NewApp builds the app over an initialized session and renders the
// startup state: the full catalog filtered by the identity criteria,
// first page materialized.
func NewApp(sess *session.Session, cfg *config.Config) App {
	a := App{
		session: sess,
		browse:  newBrowse(cfg.UI.Density == "compact"),
		search:  newSearch(sess.AuthorOptions(anyLabel), sess.GenreOptions(anyLabel)),
	}

	plan := sess.SubmitSearch(filter.Criteria{})
	a.browse.apply(plan, sess.MatchCount(), sess.HasMore())
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.browse.setSize(msg.Width, msg.Height)
		a.search.setSize(msg.Width)
		return a, nil

	case scrollFrame:
		if a.browse.step() {
			return a, frameTick()
		}
		return a, nil
	}

	return a, nil
}

// handleKey processes keyboard input per mode.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			a.mode = modeBrowse
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if a.browse.moveCursor(1) {
			return a, frameTick()
		}
		return a, nil

	case "k", "up":
		if a.browse.moveCursor(-1) {
			return a, frameTick()
		}
		return a, nil

	case "g", "home":
		if a.browse.cursorTo(0) {
			return a, frameTick()
		}
		return a, nil

	case "G", "end":
		if a.browse.cursorTo(len(a.browse.items) - 1) {
			return a, frameTick()
		}
		return a, nil

	case "m", " ":
		return a.showMore()

	case "/":
		a.mode = modeSearch
		a.search.reset()
		return a, nil

	case "enter":
		id, ok := a.browse.selectedID()
		if !ok {
			return a, nil
		}
		return a.selectTarget(rowTarget(id))
	}

	return a, nil
}

// handleSearchKey processes keys while the search form is open.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		return a, nil

	case "enter":
		c := a.search.criteria()
		plan := a.session.SubmitSearch(c)
		a.browse.apply(plan, a.session.MatchCount(), a.session.HasMore())
		a.mode = modeBrowse
		logging.Debug("search submitted",
			"title", c.Title, "author", c.AuthorID, "genre", c.GenreID,
			"matches", a.session.MatchCount())
		return a, nil
	}

	return a, a.search.update(msg)
}

// handleMouse resolves clicks through the hit-map. A click lands on a
// concrete screen line; the target chain it produces (text region under
// a preview row under the list root) is what the resolver walks. Clicks
// on chrome produce a chain with no carrying ancestor and fall through
// silently.
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	if a.mode != modeBrowse {
		return a, nil
	}

	id, ok := a.browse.lineOwner(msg.Y)
	if !ok {
		// Still hand the bare chain to the resolver: misses are its call
		return a.selectTarget(chromeTarget())
	}
	return a.selectTarget(rowTarget(id))
}

// showMore materializes the next page, appending to the visible list.
func (a App) showMore() (tea.Model, tea.Cmd) {
	if !a.session.HasMore() {
		return a, nil
	}
	plan := a.session.RequestMore()
	a.browse.apply(plan, a.session.MatchCount(), a.session.HasMore())
	logging.Debug("show more", "shown", len(a.browse.items), "remaining", plan.Remaining)
	return a, nil
}

// selectTarget runs the selection resolver; a miss is a silent no-op.
func (a App) selectTarget(t resolve.Target) (tea.Model, tea.Cmd) {
	book, ok := a.session.SelectItem(t)
	if !ok {
		return a, nil
	}
	a.detail = book
	a.mode = modeDetail
	return a, nil
}

// rowTarget builds the target chain for an interaction inside a preview
// row: text region -> row (carries the id) -> list root.
func rowTarget(id string) resolve.Target {
	root := &resolve.Node{}
	row := &resolve.Node{ID: id, Up: root}
	return &resolve.Node{Up: row}
}

// chromeTarget builds the chain for an interaction outside any row.
func chromeTarget() resolve.Target {
	root := &resolve.Node{}
	return &resolve.Node{Up: root}
}

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.mode {
	case modeSearch:
		return a.search.view()
	case modeDetail:
		return renderDetail(a.detail, a.session.Catalog(), a.width)
	default:
		return a.browse.view()
	}
}

// frameTick schedules the next scroll animation frame.
func frameTick() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg {
		return scrollFrame{}
	})
}
