package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// SelectedItem style for the currently highlighted preview row.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for unselected preview rows.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// AuthorLine style for the author line under a title.
var AuthorLine = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// Header style for the top bar with the match count.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ShowMore style for the enabled load-more control.
var ShowMore = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true).
	Padding(0, 1)

// ShowMoreDisabled style for the exhausted load-more control.
var ShowMoreDisabled = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// NoResults style for the empty match set state.
var NoResults = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// FormLabel style for search form field labels.
var FormLabel = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// FormLabelActive style for the focused field's label.
var FormLabelActive = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true).
	Padding(0, 1)

// FormValue style for picker values.
var FormValue = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

// DetailBox style for the detail overlay.
var DetailBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// DetailTitle style for the book title in the detail overlay.
var DetailTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// DetailField style for field labels in the detail overlay.
var DetailField = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// DetailText style for field values in the detail overlay.
var DetailText = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)
