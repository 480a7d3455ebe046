package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/amishk599/skillmap/internal/course"
	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/skill"
)

// SQLiteCatalog keeps the skill vocabulary and course catalog in a SQLite
// file. It holds static reference data only; analyses are never written here.
type SQLiteCatalog struct {
	db *sql.DB
}

// NewSQLiteCatalog opens (or creates) a SQLite database at dbPath and ensures
// the skills and courses tables exist.
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS skills (
			position INTEGER NOT NULL,
			name     TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			skill    TEXT NOT NULL,
			position INTEGER NOT NULL,
			title    TEXT NOT NULL,
			url      TEXT NOT NULL,
			PRIMARY KEY (skill, position)
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating catalog tables: %w", err)
		}
	}

	return &SQLiteCatalog{db: db}, nil
}

// Seed replaces the stored vocabulary and catalog in a single transaction.
func (s *SQLiteCatalog) Seed(vocab skill.Vocabulary, catalog course.Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM skills"); err != nil {
		return fmt.Errorf("clearing skills: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM courses"); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	for i, name := range vocab {
		if _, err := tx.Exec("INSERT OR IGNORE INTO skills (position, name) VALUES (?, ?)", i, name); err != nil {
			return fmt.Errorf("inserting skill %s: %w", name, err)
		}
	}
	for name, courses := range catalog {
		for i, c := range courses {
			_, err := tx.Exec(
				"INSERT INTO courses (skill, position, title, url) VALUES (?, ?, ?, ?)",
				name, i, c.Title, c.URL,
			)
			if err != nil {
				return fmt.Errorf("inserting course %q for %s: %w", c.Title, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog seed: %w", err)
	}
	return nil
}

// Load reads the vocabulary in declaration order and the catalog with each
// skill's courses in their stored order.
func (s *SQLiteCatalog) Load() (skill.Vocabulary, course.Catalog, error) {
	rows, err := s.db.Query("SELECT name FROM skills ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("loading skills: %w", err)
	}
	defer rows.Close()

	var vocab skill.Vocabulary
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, nil, fmt.Errorf("scanning skill: %w", err)
		}
		vocab = append(vocab, name)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("loading skills: %w", err)
	}

	courseRows, err := s.db.Query("SELECT skill, title, url FROM courses ORDER BY skill, position")
	if err != nil {
		return nil, nil, fmt.Errorf("loading courses: %w", err)
	}
	defer courseRows.Close()

	catalog := make(course.Catalog)
	for courseRows.Next() {
		var name string
		var c model.CourseLink
		if err := courseRows.Scan(&name, &c.Title, &c.URL); err != nil {
			return nil, nil, fmt.Errorf("scanning course: %w", err)
		}
		catalog[name] = append(catalog[name], c)
	}
	if err := courseRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("loading courses: %w", err)
	}

	return vocab, catalog, nil
}

// IsEmpty returns true if no skills have been seeded.
func (s *SQLiteCatalog) IsEmpty() (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM skills").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking if catalog is empty: %w", err)
	}
	return count == 0, nil
}

// Close closes the underlying database connection.
func (s *SQLiteCatalog) Close() error {
	return s.db.Close()
}
