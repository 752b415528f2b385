package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ewinters/stacks/internal/config"
)

var (
	cfg    *config.Config
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "stacks",
	Short: "Browse a book catalog in the terminal",
	Long: `stacks is a terminal browser for a book catalog: filter by title,
author and genre, page through the results incrementally, and open a
detail view for any book. Catalogs are imported from JSON into a local
SQLite database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "catalog database path (default ~/.stacks/catalog.db)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
