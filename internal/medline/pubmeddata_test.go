// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"errors"
	"testing"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// wrapPubmedData builds a one-record document around PubmedData
// children.
func wrapPubmedData(inner string) string {
	return `<PubmedArticleSet><PubmedArticle>` +
		`<MedlineCitation><PMID>1</PMID></MedlineCitation>` +
		`<PubmedData>` + inner + `</PubmedData>` +
		`</PubmedArticle></PubmedArticleSet>`
}

func TestDecodePubmedDataHistory(t *testing.T) {
	doc := wrapPubmedData(`<History>` +
		`<PubMedPubDate PubStatus="received"><Year>1990</Year><Month>5</Month><Day>15</Day></PubMedPubDate>` +
		`<PubMedPubDate PubStatus="entrez"><Year>1990</Year><Month>10</Month><Day>5</Day><Hour>0</Hour><Minute>1</Minute></PubMedPubDate>` +
		`<PubMedPubDate PubStatus="medline"><MedlineDate>unknown</MedlineDate></PubMedPubDate>` +
		`</History><PublicationStatus>ppublish</PublicationStatus>`)

	pd := decodeOne(t, ModeStrict, doc).PubmedData
	if pd == nil {
		t.Fatal("PubmedData is nil")
	}
	if pd.PublicationStatus != "ppublish" {
		t.Errorf("PublicationStatus = %q, want ppublish", pd.PublicationStatus)
	}
	// The yearless entry is dropped, the other two kept in order.
	if len(pd.History) != 2 {
		t.Fatalf("got %d history entries, want 2", len(pd.History))
	}
	if pd.History[0].PubStatus != "received" || pd.History[1].PubStatus != "entrez" {
		t.Errorf("PubStatus order = %q, %q", pd.History[0].PubStatus, pd.History[1].PubStatus)
	}
	if got := pd.History[1].Precision(); got != types.PrecisionMinute {
		t.Errorf("entrez entry Precision() = %d, want %d", got, types.PrecisionMinute)
	}
	if pd.History[1].Hour != 0 || pd.History[1].Minute != 1 {
		t.Errorf("entrez entry = %+v, want 00:01", pd.History[1])
	}
}

func TestDecodeArticleIDList(t *testing.T) {
	doc := wrapPubmedData(`<ArticleIdList>` +
		`<ArticleId IdType="pubmed">2231712</ArticleId>` +
		`<ArticleId IdType="doi">10.1016/S0022-2836(05)80360-2</ArticleId>` +
		`<ArticleId IdType="pii">S0022-2836(05)80360-2</ArticleId>` +
		`</ArticleIdList>`)

	ids := decodeOne(t, ModeStrict, doc).PubmedData.ArticleIDs
	if len(ids) != 3 {
		t.Fatalf("got %d article ids, want 3", len(ids))
	}
	if ids[0].Type != "pubmed" || ids[0].Value != "2231712" {
		t.Errorf("ids[0] = %+v", ids[0])
	}
	if ids[1].Type != "doi" {
		t.Errorf("ids[1] = %+v", ids[1])
	}
}

func TestDecodeReferences(t *testing.T) {
	doc := wrapPubmedData(`<ReferenceList>` +
		`<Reference>` +
		`<Citation>Smith W. Proc Natl Acad Sci U S A. 1981;78:1382-6</Citation>` +
		`<ArticleIdList><ArticleId IdType="pubmed">6941255</ArticleId></ArticleIdList>` +
		`</Reference>` +
		`<ReferenceList>` +
		`<Reference><Citation>Nested reference</Citation></Reference>` +
		`</ReferenceList>` +
		`</ReferenceList>`)

	refs := decodeOne(t, ModeStrict, doc).PubmedData.References
	// References in nested lists are flattened in document order.
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2", len(refs))
	}
	if refs[0].Citation == "" || len(refs[0].ArticleIDs) != 1 || refs[0].ArticleIDs[0].Value != "6941255" {
		t.Errorf("refs[0] = %+v", refs[0])
	}
	if refs[1].Citation != "Nested reference" {
		t.Errorf("refs[1].Citation = %q", refs[1].Citation)
	}
}

func TestDecodePubmedDataUnknownStrict(t *testing.T) {
	doc := wrapPubmedData(`<Objectives>none</Objectives>`)

	_, err := NewDecoder(ModeStrict, nil).DecodeDocument([]byte(doc))
	var ue *UnknownElementError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UnknownElementError", err)
	}
	if ue.Entity != "PubmedData" || ue.Tag != "Objectives" {
		t.Errorf("Entity/Tag = %q/%q, want PubmedData/Objectives", ue.Entity, ue.Tag)
	}
}
