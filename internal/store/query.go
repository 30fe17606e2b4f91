// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for citation store queries.
type QueryOptions struct {
	// Text is the FTS5 full-text search string, matched against titles
	// and abstracts.
	Text string

	// Year filters by publication year.
	Year int

	// Journal filters by journal title substring, case-insensitive.
	Journal string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Text == "" && q.Year == 0 && q.Journal == ""
}

// QueryResult is one citation row: the indexed columns, without the
// full record graph. Use Store.Get for the complete record.
type QueryResult struct {
	PMID     uint64   `json:"pmid" yaml:"pmid"`
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Journal  string   `json:"journal,omitempty" yaml:"journal,omitempty"`
	Year     int      `json:"year,omitempty" yaml:"year,omitempty"`
	Authors  []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Abstract string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Status   string   `json:"status,omitempty" yaml:"status,omitempty"`
}

// Query searches the store with optional full-text search and
// structured filters. Results are ranked by relevance for full-text
// queries or sorted by PMID otherwise.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Text != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.pmid, c.title, c.journal, c.year, c.authors, c.abstract, c.status
			FROM citations_fts
			JOIN citations c ON c.pmid = citations_fts.rowid
			WHERE citations_fts MATCH ?`)
		args = append(args, opts.Text)
	} else {
		qb.WriteString(
			`SELECT c.pmid, c.title, c.journal, c.year, c.authors, c.abstract, c.status
			FROM citations c
			WHERE 1=1`)
	}

	if opts.Year != 0 {
		qb.WriteString(` AND c.year = ?`)
		args = append(args, opts.Year)
	}

	if opts.Journal != "" {
		qb.WriteString(` AND c.journal LIKE ?`)
		args = append(args, "%"+opts.Journal+"%")
	}

	if useFTS {
		qb.WriteString(` ORDER BY citations_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.pmid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying citation store: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr          QueryResult
			title       sql.NullString
			journal     sql.NullString
			authorsJSON sql.NullString
			abstract    sql.NullString
			status      sql.NullString
		)

		if err := rows.Scan(
			&qr.PMID, &title, &journal, &qr.Year,
			&authorsJSON, &abstract, &status,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if title.Valid {
			qr.Title = title.String
		}
		if journal.Valid {
			qr.Journal = journal.String
		}
		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &qr.Authors)
		}
		if abstract.Valid {
			qr.Abstract = abstract.String
		}
		if status.Valid {
			qr.Status = status.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}
