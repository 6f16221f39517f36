// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists every paper the fetch stage has ever seen, so a
// run can report which publications are genuinely new and the history can
// be inspected after the site has been rewritten.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/marimo-lab/newsync/internal/scholar"
	"github.com/marimo-lab/newsync/pkg/types"
)

const dbFile = "archive.db"

// Record is one archived paper.
type Record struct {
	PaperID   string `yaml:"paper_id"`
	Title     string `yaml:"title"`
	Date      string `yaml:"date,omitempty"`
	URL       string `yaml:"url,omitempty"`
	Venue     string `yaml:"venue,omitempty"`
	FirstSeen string `yaml:"first_seen"`
}

// Store manages the paper archive SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at dir/archive.db, creating
// the schema if it does not exist.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS papers (
			paper_id   TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			date       TEXT,
			url        TEXT,
			venue      TEXT,
			first_seen TEXT NOT NULL
		)`)
	return err
}

// Record inserts the fetched papers that are not yet archived and returns
// how many were first seen in this run. Previously archived papers are left
// untouched.
func (s *Store) Record(ctx context.Context, papers []scholar.Paper) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning archive transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO papers (paper_id, title, date, url, venue, first_seen)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing archive insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	firstSeen := 0
	for _, p := range papers {
		if p.PaperID == "" {
			continue
		}
		date := p.PublicationDate
		if date == "" && p.Year > 0 {
			date = fmt.Sprintf("%d-01-01", p.Year)
		}
		res, err := stmt.ExecContext(ctx, p.PaperID, p.Title, date, p.URL, p.Venue, now)
		if err != nil {
			return 0, fmt.Errorf("archiving paper %s: %w", p.PaperID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("archiving paper %s: %w", p.PaperID, err)
		}
		firstSeen += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing archive transaction: %w", err)
	}
	return firstSeen, nil
}

// List returns all archived papers, most recently discovered first; ties
// order by paper ID for a deterministic listing.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT paper_id, title, COALESCE(date, ''), COALESCE(url, ''), COALESCE(venue, ''), first_seen
		FROM papers
		ORDER BY first_seen DESC, paper_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.PaperID, &r.Title, &r.Date, &r.URL, &r.Venue, &r.FirstSeen); err != nil {
			return nil, fmt.Errorf("scanning archive row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ExportYAML writes the full archive to w as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}

	doc := struct {
		Exported string   `yaml:"exported"`
		Papers   []Record `yaml:"papers"`
	}{
		Exported: time.Now().UTC().Format(time.RFC3339),
		Papers:   records,
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}
