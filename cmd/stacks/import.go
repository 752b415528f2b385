package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ewinters/stacks/internal/catalog"
	"github.com/ewinters/stacks/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a catalog JSON file into the local database",
	Long: `Import reads a catalog file with authors, genres and books, validates
it, and writes it into the local SQLite database. Books already present
(by id) are left untouched, so re-importing a file is safe. Records
without an id are assigned one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var data catalog.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	assignIDs(&data)

	// Validate before anything touches the database
	if _, err := catalog.New(data); err != nil {
		return fmt.Errorf("invalid catalog in %s: %v", path, err)
	}

	st, err := store.Open(cfg.DB())
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	defer st.Close()

	bar := progressbar.Default(int64(len(data.Books)), "importing")

	// One book per transaction would be slow and one bar tick per
	// transaction dishonest; save in page-sized batches instead.
	const batch = 50
	newCount := 0
	for start := 0; start < len(data.Books); start += batch {
		end := start + batch
		if end > len(data.Books) {
			end = len(data.Books)
		}
		chunk := data
		chunk.Books = data.Books[start:end]

		n, err := st.SaveCatalog(chunk)
		if err != nil {
			return fmt.Errorf("save books %d-%d: %w", start, end, err)
		}
		newCount += n
		bar.Add(end - start)
	}

	fmt.Printf("imported %d new books (%d in file, %d authors, %d genres)\n",
		newCount, len(data.Books), len(data.Authors), len(data.Genres))
	return nil
}

// assignIDs fills missing book ids so hand-written files don't need to
// invent them. Author and genre ids stay as written: books reference
// them, so generated ids there would only break the references.
func assignIDs(d *catalog.Data) {
	for i, b := range d.Books {
		if b.ID == "" {
			d.Books[i].ID = uuid.NewString()
		}
	}
}
