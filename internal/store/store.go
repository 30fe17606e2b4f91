// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists decoded citation records in SQLite and serves
// full-text retrieval over titles and abstracts.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

const defaultDBFile = "data/citations.db"

// Store manages the citation SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the citation database at cfg.Path, creating
// parent directories and the schema as needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		dbPath = defaultDBFile
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS citations (
			pmid INTEGER PRIMARY KEY,
			title TEXT,
			journal TEXT,
			year INTEGER,
			authors TEXT,
			abstract TEXT,
			status TEXT,
			record TEXT NOT NULL,
			fetched_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_year ON citations(year)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_journal ON citations(journal)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='citations_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE citations_fts USING fts5(title, abstract, content=citations, content_rowid=pmid)`,
			`CREATE TRIGGER citations_ai AFTER INSERT ON citations BEGIN
				INSERT INTO citations_fts(rowid, title, abstract) VALUES (new.pmid, new.title, new.abstract);
			END`,
			`CREATE TRIGGER citations_ad AFTER DELETE ON citations BEGIN
				INSERT INTO citations_fts(citations_fts, rowid, title, abstract) VALUES('delete', old.pmid, old.title, old.abstract);
			END`,
			`CREATE TRIGGER citations_au AFTER UPDATE ON citations BEGIN
				INSERT INTO citations_fts(citations_fts, rowid, title, abstract) VALUES('delete', old.pmid, old.title, old.abstract);
				INSERT INTO citations_fts(rowid, title, abstract) VALUES (new.pmid, new.title, new.abstract);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// PutSummary holds counts from a store write.
type PutSummary struct {
	Stored  int
	Updated int
	Skipped int
}

// Total returns the number of records processed.
func (s PutSummary) Total() int {
	return s.Stored + s.Updated + s.Skipped
}

// Put upserts records keyed by PMID, writing one progress line per
// record to w. Records without a PMID are skipped: there is nothing to
// key them on.
func (s *Store) Put(ctx context.Context, records []types.Record, w io.Writer) (PutSummary, error) {
	var summary PutSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO citations (pmid, title, journal, year, authors, abstract, status, record, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		 ON CONFLICT(pmid) DO UPDATE SET
			title=excluded.title, journal=excluded.journal, year=excluded.year,
			authors=excluded.authors, abstract=excluded.abstract,
			status=excluded.status, record=excluded.record,
			fetched_at=excluded.fetched_at`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		pmid := rec.PMID()
		if pmid == 0 {
			fmt.Fprintf(w, "skipped record without PMID\n")
			summary.Skipped++
			continue
		}

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM citations WHERE pmid = ?`, pmid,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking PMID %d: %w", pmid, err)
		}

		recordJSON, err := json.Marshal(rec)
		if err != nil {
			return summary, fmt.Errorf("marshaling record %d: %w", pmid, err)
		}
		authorsJSON, _ := json.Marshal(rec.AuthorNames())

		var year int
		if pd := rec.PubDate(); pd != nil {
			year = int(pd.Year)
		}
		var status string
		if rec.MedlineCitation != nil {
			status = rec.MedlineCitation.Status
		}

		if _, err := stmt.ExecContext(ctx,
			pmid, rec.Title(), rec.JournalTitle(), year,
			string(authorsJSON), rec.AbstractText(), status, string(recordJSON),
		); err != nil {
			return summary, fmt.Errorf("storing record %d: %w", pmid, err)
		}

		if exists > 0 {
			fmt.Fprintf(w, "updated %d %s\n", pmid, rec.Title())
			summary.Updated++
		} else {
			fmt.Fprintf(w, "stored  %d %s\n", pmid, rec.Title())
			summary.Stored++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "\nstored: %d, updated: %d, skipped: %d\n",
		summary.Stored, summary.Updated, summary.Skipped)

	return summary, nil
}

// Get returns the full decoded record for a PMID, unmarshaled from the
// stored JSON. Returns nil without error when the PMID is not present.
func (s *Store) Get(ctx context.Context, pmid uint64) (*types.Record, error) {
	var recordJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM citations WHERE pmid = ?`, pmid,
	).Scan(&recordJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up PMID %d: %w", pmid, err)
	}

	var rec types.Record
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("parsing stored record %d: %w", pmid, err)
	}
	return &rec, nil
}
