// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a search and the PMIDs it
// matched. A saved search can be fetched later without re-running the
// query.
type QueryFile struct {
	Term    string       `yaml:"term"`
	RetMax  int          `yaml:"retmax"`
	PMIDs   []uint64     `yaml:"pmids"`
	Summary QuerySummary `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	// Count is the server-side total for the term; Returned is how
	// many PMIDs this file holds.
	Count     int       `yaml:"count"`
	Returned  int       `yaml:"returned"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves a search term and its result page to a YAML file.
func WriteQueryFile(path, term string, retMax int, result *SearchResult) error {
	qf := QueryFile{
		Term:   term,
		RetMax: retMax,
		PMIDs:  result.PMIDs,
		Summary: QuerySummary{
			Count:     result.Count,
			Returned:  len(result.PMIDs),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
