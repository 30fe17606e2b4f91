// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	PMID           string    `yaml:"PMID,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// ExportCSL writes matching citations to w as a CSL-YAML list. It
// supports the same filters as Query.
func (s *Store) ExportCSL(ctx context.Context, opts QueryOptions, w io.Writer) error {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Query(ctx, opts)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	records := make([]types.Record, 0, len(results))
	for _, r := range results {
		rec, err := s.Get(ctx, r.PMID)
		if err != nil {
			return err
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return FormatCSL(records, w)
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.Record, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a decoded record to a CSLItem.
func toCSLItem(r types.Record) CSLItem {
	pmid := strconv.FormatUint(r.PMID(), 10)
	item := CSLItem{
		ID:             "pmid" + pmid,
		Type:           "article-journal",
		Title:          r.Title(),
		ContainerTitle: r.JournalTitle(),
		Abstract:       r.AbstractText(),
		DOI:            r.DOI(),
		PMID:           pmid,
	}

	if mc := r.MedlineCitation; mc != nil && mc.Article != nil {
		if al := mc.Article.AuthorList; al != nil {
			for _, a := range al.Authors {
				item.Author = append(item.Author, toCSLName(a))
			}
		}
		if j := mc.Article.Journal; j != nil && j.Issue != nil {
			item.Volume = j.Issue.Volume
			item.Issue = j.Issue.Issue
		}
		item.Page = pageValue(mc.Article.Pages)
	}

	if pd := r.PubDate(); pd != nil {
		item.Issued = &CSLDate{DateParts: [][]int{dateParts(pd)}}
	}

	return item
}

// toCSLName maps a structured author name to CSL parts. Collective
// bodies use the literal field.
func toCSLName(a types.Author) CSLName {
	if a.CollectiveName != "" {
		return CSLName{Literal: a.CollectiveName}
	}
	given := a.ForeName
	if given == "" {
		given = a.Initials
	}
	return CSLName{
		Family: a.LastName,
		Given:  given,
	}
}

// dateParts renders a partial date at its own precision: year, then
// month and day only as far as the source carried them.
func dateParts(pd *types.PartialDate) []int {
	parts := []int{int(pd.Year)}
	if pd.Month > 0 {
		parts = append(parts, int(pd.Month))
		if pd.Day > 0 {
			parts = append(parts, int(pd.Day))
		}
	}
	return parts
}

// pageValue picks the page expression for CSL output, preferring the
// combined MEDLINE form over a bare start page.
func pageValue(pages []types.Page) string {
	var start string
	for _, p := range pages {
		switch p.Kind {
		case types.PageMedline:
			return p.Value
		case types.PageStart:
			if start == "" {
				start = p.Value
			}
		}
	}
	return start
}
