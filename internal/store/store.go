// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps a ledger of past reconciliation runs in SQLite, so
// an author's citation series can be compared across time without
// re-fetching, and audits remain reproducible.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/citations"
	"github.com/pdiddy/citation-audit/pkg/types"
)

const dbFile = "citation-audit.db"

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Run is one recorded reconciliation run.
type Run struct {
	ID             int64             `json:"id"`
	Author         string            `json:"author"`
	CreatedAt      time.Time         `json:"created_at"`
	Stats          attribution.Stats `json:"stats"`
	TotalCitations int               `json:"total_citations"`
}

// NewStore opens or creates the history database at dir/citation-audit.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "history"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			author TEXT NOT NULL,
			created_at TEXT NOT NULL,
			works_examined INTEGER NOT NULL,
			works_accepted INTEGER NOT NULL,
			rejected_name_only INTEGER NOT NULL,
			rejected_no_identifier INTEGER NOT NULL,
			total_citations INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_years (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			year INTEGER NOT NULL,
			cited_by_count INTEGER NOT NULL,
			PRIMARY KEY (run_id, year)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_author ON runs(author)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run and its per-year series in one transaction and
// returns the new run ID.
func (s *Store) Record(ctx context.Context, author string, stats attribution.Stats, series types.CitationSeries) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (author, created_at, works_examined, works_accepted,
			rejected_name_only, rejected_no_identifier, total_citations)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		author, time.Now().UTC().Format(time.RFC3339),
		stats.Total(), stats.Accepted, stats.NameOnly, stats.NoIdentifier,
		citations.Total(series))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, year := range citations.Years(series) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_years (run_id, year, cited_by_count) VALUES (?, ?, ?)`,
			runID, year, series[year]); err != nil {
			return 0, fmt.Errorf("inserting year %d: %w", year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// List returns the most recent runs, newest first, optionally restricted
// to one author query. The configured max-results cap applies.
func (s *Store) List(ctx context.Context, author string) ([]Run, error) {
	query := `SELECT id, author, created_at, works_examined, works_accepted,
		rejected_name_only, rejected_no_identifier, total_citations
	FROM runs`
	args := []any{}
	if author != "" {
		query += ` WHERE author = ?`
		args = append(args, author)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, s.maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns one run and its stored series.
func (s *Store) Get(ctx context.Context, id int64) (Run, types.CitationSeries, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, author, created_at, works_examined, works_accepted,
			rejected_name_only, rejected_no_identifier, total_citations
		FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return Run{}, nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return Run{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT year, cited_by_count FROM run_years WHERE run_id = ?`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("reading run years: %w", err)
	}
	defer rows.Close()

	series := types.CitationSeries{}
	for rows.Next() {
		var year, count int
		if err := rows.Scan(&year, &count); err != nil {
			return Run{}, nil, fmt.Errorf("scanning run year: %w", err)
		}
		series[year] = count
	}
	return r, series, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt string
	var examined int
	if err := sc.Scan(&r.ID, &r.Author, &createdAt, &examined,
		&r.Stats.Accepted, &r.Stats.NameOnly, &r.Stats.NoIdentifier,
		&r.TotalCitations); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		r.CreatedAt = t
	}
	return r, nil
}
