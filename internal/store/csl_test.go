// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func TestToCSLItem(t *testing.T) {
	rec := sampleRecord(2231712, "Basic local alignment search tool.",
		"Journal of molecular biology", 1990, "Rapid comparison.")
	rec.MedlineCitation.Article.Journal.Issue.Issue = "3"
	rec.MedlineCitation.Article.ELocationIDs = []types.ELocationID{
		{Type: "doi", Valid: true, ID: "10.1016/S0022-2836(05)80360-2"},
	}

	item := toCSLItem(rec)

	if item.ID != "pmid2231712" {
		t.Errorf("ID = %q, want %q", item.ID, "pmid2231712")
	}
	if item.Type != "article-journal" {
		t.Errorf("Type = %q, want %q", item.Type, "article-journal")
	}
	if item.ContainerTitle != "Journal of molecular biology" {
		t.Errorf("ContainerTitle = %q", item.ContainerTitle)
	}
	if len(item.Author) != 2 {
		t.Fatalf("len(Author) = %d, want 2", len(item.Author))
	}
	if item.Author[0].Family != "Altschul" || item.Author[0].Given != "S F" {
		t.Errorf("Author[0] = %+v", item.Author[0])
	}
	if item.Volume != "215" || item.Issue != "3" {
		t.Errorf("Volume = %q, Issue = %q", item.Volume, item.Issue)
	}
	if item.Page != "403-10" {
		t.Errorf("Page = %q, want %q", item.Page, "403-10")
	}
	if item.DOI != "10.1016/S0022-2836(05)80360-2" {
		t.Errorf("DOI = %q", item.DOI)
	}
	if item.PMID != "2231712" {
		t.Errorf("PMID = %q, want %q", item.PMID, "2231712")
	}
	if item.Issued == nil || item.Issued.DateParts[0][0] != 1990 {
		t.Error("Issued year should be 1990")
	}
}

func TestToCSLItemCollectiveAuthor(t *testing.T) {
	rec := types.Record{
		MedlineCitation: &types.MedlineCitation{
			PMID: 12690091,
			Article: &types.Article{
				Title: "A novel coronavirus associated with severe acute respiratory syndrome.",
				AuthorList: &types.AuthorList{
					Authors: []types.Author{
						{CollectiveName: "SARS Working Group"},
						{LastName: "Ksiazek", ForeName: "Thomas G"},
					},
				},
			},
		},
	}

	item := toCSLItem(rec)

	if len(item.Author) != 2 {
		t.Fatalf("len(Author) = %d, want 2", len(item.Author))
	}
	if item.Author[0].Literal != "SARS Working Group" {
		t.Errorf("Author[0].Literal = %q", item.Author[0].Literal)
	}
	if item.Author[0].Family != "" || item.Author[0].Given != "" {
		t.Errorf("collective author should not carry name parts: %+v", item.Author[0])
	}
	if item.Author[1].Family != "Ksiazek" {
		t.Errorf("Author[1].Family = %q", item.Author[1].Family)
	}
}

func TestToCSLNameInitialsFallback(t *testing.T) {
	name := toCSLName(types.Author{LastName: "Kent", Initials: "WJ"})
	if name.Family != "Kent" || name.Given != "WJ" {
		t.Errorf("name = %+v, want Family Kent, Given WJ", name)
	}
}

func TestDateParts(t *testing.T) {
	tests := []struct {
		name string
		date types.PartialDate
		want []int
	}{
		{"year only", types.PartialDate{Year: 1990, Hour: -1, Minute: -1}, []int{1990}},
		{"year month", types.PartialDate{Year: 1990, Month: 10, Hour: -1, Minute: -1}, []int{1990, 10}},
		{"full date", types.PartialDate{Year: 1990, Month: 10, Day: 5, Hour: -1, Minute: -1}, []int{1990, 10, 5}},
		{"day without month ignored", types.PartialDate{Year: 1990, Day: 5, Hour: -1, Minute: -1}, []int{1990}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateParts(&tt.date)
			if len(got) != len(tt.want) {
				t.Fatalf("dateParts = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("dateParts = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestPageValue(t *testing.T) {
	tests := []struct {
		name  string
		pages []types.Page
		want  string
	}{
		{"medline form preferred", []types.Page{
			{Kind: types.PageStart, Value: "403"},
			{Kind: types.PageMedline, Value: "403-10"},
		}, "403-10"},
		{"start page only", []types.Page{
			{Kind: types.PageStart, Value: "403"},
			{Kind: types.PageEnd, Value: "410"},
		}, "403"},
		{"no pages", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageValue(tt.pages); got != tt.want {
				t.Errorf("pageValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportCSL(t *testing.T) {
	s := testSetup(t)
	putHelper(t, s,
		sampleRecord(2231712, "Basic local alignment search tool.",
			"Journal of molecular biology", 1990, ""),
		sampleRecord(11932250, "BLAT, the BLAST-like alignment tool.",
			"Genome research", 2002, ""),
	)

	var buf bytes.Buffer
	if err := s.ExportCSL(context.Background(), QueryOptions{Year: 1990}, &buf); err != nil {
		t.Fatalf("ExportCSL: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "id: pmid2231712") {
		t.Error("export should contain the matching record")
	}
	if strings.Contains(out, "pmid11932250") {
		t.Error("export should not contain the filtered-out record")
	}
}

func TestFormatCSL(t *testing.T) {
	records := []types.Record{
		sampleRecord(2231712, "Basic local alignment search tool.",
			"Journal of molecular biology", 1990, ""),
		sampleRecord(11932250, "BLAT, the BLAST-like alignment tool.",
			"Genome research", 2002, ""),
	}

	var buf bytes.Buffer
	if err := FormatCSL(records, &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}

	s := buf.String()

	if !strings.Contains(s, "id: pmid2231712") {
		t.Error("CSL output should contain the first record id")
	}
	if !strings.Contains(s, "type: article-journal") {
		t.Error("CSL output should contain type: article-journal")
	}
	if !strings.Contains(s, "family: Altschul") {
		t.Error("CSL output should contain structured author names")
	}
	if !strings.Contains(s, "container-title: Journal of molecular biology") {
		t.Error("CSL output should contain the journal as container-title")
	}
	if !strings.Contains(s, "date-parts:") {
		t.Error("CSL output should contain issued date-parts")
	}
	if got := strings.Count(s, "- id: pmid"); got != 2 {
		t.Errorf("expected 2 CSL items, found %d", got)
	}
}
