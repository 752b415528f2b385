package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ewinters/stacks/internal/catalog"
	"github.com/ewinters/stacks/internal/logging"
	"github.com/ewinters/stacks/internal/session"
	"github.com/ewinters/stacks/internal/store"
	"github.com/ewinters/stacks/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the catalog browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// runBrowse loads the catalog from the store and runs the TUI over it.
// The catalog is fully materialized before the first frame; the browser
// itself never touches the database.
func runBrowse() error {
	if err := logging.Init(); err != nil {
		return err
	}
	defer logging.Close()

	st, err := store.Open(cfg.DB())
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}

	data, err := st.LoadCatalog()
	st.Close()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if len(data.Books) == 0 {
		return fmt.Errorf("catalog is empty; run 'stacks import <file.json>' first")
	}

	cat, err := catalog.New(data)
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	logging.Info("catalog loaded", "books", cat.Len(),
		"authors", len(cat.Authors()), "genres", len(cat.Genres()))

	sess := session.New(cat, cfg.UI.PageSize)
	app := ui.NewApp(sess, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
