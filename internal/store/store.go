// Package store provides SQLite persistence for the catalog.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/ewinters/stacks/internal/catalog"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal
// mutex; an import may run while a browser has the same file open.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a Store at the given database path, creating tables if
// they don't exist. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables if they don't exist.
// Every table carries an explicit position column: the catalog's native
// book order and the option insertion order must survive a round trip.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS authors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS genres (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS books (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author_id TEXT NOT NULL,
		genre_ids TEXT NOT NULL,
		image TEXT,
		description TEXT,
		published_at DATETIME NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_books_position ON books(position);
	CREATE INDEX IF NOT EXISTS idx_books_author ON books(author_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing mid-operation.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveCatalog stores the catalog data, returning the count of new books
// inserted. Duplicates (by id) are silently ignored via INSERT OR
// IGNORE, so re-importing the same file is safe.
// Thread-safe: acquires write lock.
func (s *Store) SaveCatalog(d catalog.Data) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, a := range d.Authors {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO authors (id, name, position) VALUES (?, ?, ?)",
			a.ID, a.Name, i,
		); err != nil {
			return 0, fmt.Errorf("insert author %s: %w", a.ID, err)
		}
	}
	for i, g := range d.Genres {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO genres (id, name, position) VALUES (?, ?, ?)",
			g.ID, g.Name, i,
		); err != nil {
			return 0, fmt.Errorf("insert genre %s: %w", g.ID, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO books (
			id, title, author_id, genre_ids, image, description,
			published_at, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	newCount := 0
	for i, b := range d.Books {
		genreIDs, err := json.Marshal(b.GenreIDs)
		if err != nil {
			return newCount, fmt.Errorf("encode genres for %s: %w", b.ID, err)
		}

		result, err := stmt.Exec(
			b.ID,
			b.Title,
			b.AuthorID,
			string(genreIDs),
			b.Image,
			b.Description,
			b.PublishedAt,
			i,
		)
		if err != nil {
			return newCount, fmt.Errorf("insert book %s: %w", b.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return newCount, err
		}
		if affected > 0 {
			newCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return newCount, nil
}

// LoadCatalog reads the full catalog back, books in stored position
// order and authors/genres in insertion order. The result still goes
// through catalog.New for validation.
// Thread-safe: acquires read lock.
func (s *Store) LoadCatalog() (catalog.Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var d catalog.Data
	var err error

	d.Authors, err = s.queryOptions("authors")
	if err != nil {
		return catalog.Data{}, err
	}
	d.Genres, err = s.queryOptions("genres")
	if err != nil {
		return catalog.Data{}, err
	}

	rows, err := s.db.Query(`
		SELECT id, title, author_id, genre_ids, image, description, published_at
		FROM books
		ORDER BY position
	`)
	if err != nil {
		return catalog.Data{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var b catalog.Book
		var genreIDs string
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.AuthorID,
			&genreIDs,
			&b.Image,
			&b.Description,
			&b.PublishedAt,
		)
		if err != nil {
			return catalog.Data{}, err
		}
		if err := json.Unmarshal([]byte(genreIDs), &b.GenreIDs); err != nil {
			return catalog.Data{}, fmt.Errorf("decode genres for %s: %w", b.ID, err)
		}
		d.Books = append(d.Books, b)
	}

	if err := rows.Err(); err != nil {
		return catalog.Data{}, err
	}

	return d, nil
}

// queryOptions reads one of the two name tables in position order.
// Caller must hold s.mu (read lock is sufficient).
func (s *Store) queryOptions(table string) ([]catalog.Option, error) {
	// table is always a compile-time constant here, never user input
	rows, err := s.db.Query("SELECT id, name FROM " + table + " ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []catalog.Option
	for rows.Next() {
		var o catalog.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}

	return opts, rows.Err()
}
