// internal/history/store.go
package history

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

const retention = 90 * 24 * time.Hour

// Store manages search history persistence
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG data path of the history database
func DefaultPath() (string, error) {
	return xdg.DataFile("docseek/history.db")
}

// NewStore opens the history store at the default location
func NewStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Open opens (and creates if needed) a history database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Apply SQLite pragmas
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			selected_path TEXT NOT NULL DEFAULT '',
			selected_name TEXT NOT NULL DEFAULT '',
			hit_count INTEGER NOT NULL DEFAULT 0,
			searched_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_searches_searched_at ON searches(searched_at);
		CREATE INDEX IF NOT EXISTS idx_searches_query ON searches(query);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	store := &Store{db: db}
	if err := store.cleanup(time.Now()); err != nil {
		log.Printf("history: cleanup failed: %v", err)
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a search into history
func (s *Store) Add(entry *Entry) error {
	if entry.SearchedAt.IsZero() {
		entry.SearchedAt = time.Now()
	}
	res, err := s.db.Exec(`
		INSERT INTO searches (query, selected_path, selected_name, hit_count, searched_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.Query, entry.SelectedPath, entry.SelectedName, entry.HitCount, entry.SearchedAt.UTC())
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// List returns history entries, newest first
func (s *Store) List(limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, query, selected_path, selected_name, hit_count, searched_at
		FROM searches
		ORDER BY searched_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Recent returns the latest entry of each distinct query, newest first
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, query, selected_path, selected_name, hit_count, searched_at
		FROM searches
		WHERE id IN (SELECT MAX(id) FROM searches GROUP BY query)
		ORDER BY searched_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds history entries by query substring
func (s *Store) Search(querySubstr string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, query, selected_path, selected_name, hit_count, searched_at
		FROM searches
		WHERE query LIKE ?
		ORDER BY searched_at DESC, id DESC
		LIMIT ?
	`, "%"+querySubstr+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM searches WHERE id = ?", id)
	return err
}

// DeleteQuery removes every entry recorded for query
func (s *Store) DeleteQuery(query string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM searches WHERE query = ?", query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Count returns the total number of history entries
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM searches").Scan(&count)
	return count, err
}

// cleanup removes entries older than the retention window
func (s *Store) cleanup(now time.Time) error {
	_, err := s.db.Exec("DELETE FROM searches WHERE searched_at < ?", now.Add(-retention).UTC())
	return err
}

// scanEntries scans rows into an Entry slice
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Query, &e.SelectedPath, &e.SelectedName, &e.HitCount, &e.SearchedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
