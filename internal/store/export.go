// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// ExportEntry holds one citation for export: the indexed summary
// columns plus the full decoded record graph.
type ExportEntry struct {
	PMID    uint64   `json:"pmid" yaml:"pmid"`
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Journal string   `json:"journal,omitempty" yaml:"journal,omitempty"`
	Year    int      `json:"year,omitempty" yaml:"year,omitempty"`
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	Record *types.Record `json:"record,omitempty" yaml:"record,omitempty"`
}

const exportLimit = 100000

// ExportYAML writes matching citations to w as a YAML list. It supports
// the same filters as Query.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions, w io.Writer) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(entries)
}

// ExportJSON writes matching citations to w as indented JSON. It
// supports the same filters as Query.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions, w io.Writer) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Query(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			PMID:    r.PMID,
			Title:   r.Title,
			Journal: r.Journal,
			Year:    r.Year,
			Authors: r.Authors,
		}

		rec, err := s.Get(ctx, r.PMID)
		if err != nil {
			return nil, fmt.Errorf("loading record %d: %w", r.PMID, err)
		}
		entries[i].Record = rec
	}

	return entries, nil
}
