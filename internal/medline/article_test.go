// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"testing"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// wrapArticle builds a one-record document around Article children.
func wrapArticle(inner string) string {
	return wrapCitation(`<PMID>1</PMID><Article PubModel="Print-Electronic">` + inner + `</Article>`)
}

// --- abstract ---

func TestDecodeAbstractKeepsFirstSection(t *testing.T) {
	// Structured abstracts carry one AbstractText per labeled section;
	// only the first is kept.
	doc := wrapArticle(`<Abstract>` +
		`<AbstractText Label="BACKGROUND">Something is unknown.</AbstractText>` +
		`<AbstractText Label="METHODS">We measured it.</AbstractText>` +
		`<AbstractText Label="RESULTS">Now it is known.</AbstractText>` +
		`</Abstract>`)

	rec := decodeOne(t, ModeStrict, doc)
	if got := rec.AbstractText(); got != "Something is unknown." {
		t.Errorf("AbstractText() = %q, want first section only", got)
	}
}

func TestDecodeAbstractEmpty(t *testing.T) {
	doc := wrapArticle(`<Abstract><CopyrightInformation>(c) 2020</CopyrightInformation></Abstract>`)

	rec := decodeOne(t, ModeStrict, doc)
	if rec.MedlineCitation.Article.Abstract == nil {
		t.Fatal("Abstract should be present")
	}
	if got := rec.AbstractText(); got != "" {
		t.Errorf("AbstractText() = %q, want empty", got)
	}
}

// --- pagination ---

func TestDecodePagination(t *testing.T) {
	doc := wrapArticle(`<Pagination>` +
		`<StartPage>403</StartPage><EndPage>410</EndPage><MedlinePgn>403-10</MedlinePgn>` +
		`</Pagination>`)

	pages := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.Pages
	want := []types.Page{
		{Kind: types.PageStart, Value: "403"},
		{Kind: types.PageEnd, Value: "410"},
		{Kind: types.PageMedline, Value: "403-10"},
	}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages, want %d", len(pages), len(want))
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("pages[%d] = %+v, want %+v", i, pages[i], want[i])
		}
	}
}

// --- electronic location identifiers ---

func TestDecodeELocationIDs(t *testing.T) {
	doc := wrapArticle(`<ELocationID EIdType="pii" ValidYN="Y">S0022-2836(05)80360-2</ELocationID>` +
		`<ELocationID EIdType="doi" ValidYN="Y">10.1016/S0022-2836(05)80360-2</ELocationID>` +
		`<ELocationID EIdType="doi" ValidYN="N">10.9999/retracted</ELocationID>`)

	rec := decodeOne(t, ModeStrict, doc)
	locs := rec.MedlineCitation.Article.ELocationIDs
	if len(locs) != 3 {
		t.Fatalf("got %d ELocationIDs, want 3", len(locs))
	}
	if locs[0].Type != "pii" || !locs[0].Valid {
		t.Errorf("locs[0] = %+v", locs[0])
	}
	if locs[2].Valid {
		t.Error("locs[2].Valid = true, want false for ValidYN=N")
	}
	// DOI accessor prefers the first valid doi entry.
	if got := rec.DOI(); got != "10.1016/S0022-2836(05)80360-2" {
		t.Errorf("DOI() = %q", got)
	}
}

// --- journal ---

func TestDecodeJournal(t *testing.T) {
	doc := wrapArticle(`<Journal>` +
		`<ISSN IssnType="Electronic">1091-6490</ISSN>` +
		`<JournalIssue CitedMedium="Internet">` +
		`<Volume>118</Volume><Issue>15</Issue>` +
		`<PubDate><Year>2021</Year><Month>Apr</Month><Day>13</Day></PubDate>` +
		`</JournalIssue>` +
		`<Title>Proceedings of the National Academy of Sciences of the United States of America</Title>` +
		`<ISOAbbreviation>Proc Natl Acad Sci U S A</ISOAbbreviation>` +
		`</Journal>`)

	j := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.Journal
	if j == nil {
		t.Fatal("Journal is nil")
	}
	if j.ISSN == nil || j.ISSN.Type != "Electronic" || j.ISSN.Value != "1091-6490" {
		t.Errorf("ISSN = %+v", j.ISSN)
	}
	if j.ISOAbbreviation != "Proc Natl Acad Sci U S A" {
		t.Errorf("ISOAbbreviation = %q", j.ISOAbbreviation)
	}
	if j.Issue == nil {
		t.Fatal("Issue is nil")
	}
	if j.Issue.CitedMedium != "Internet" || j.Issue.Volume != "118" || j.Issue.Issue != "15" {
		t.Errorf("Issue = %+v", j.Issue)
	}
	if j.Issue.PubDate == nil || j.Issue.PubDate.String() != "2021-04-13" {
		t.Errorf("PubDate = %v, want 2021-04-13", j.Issue.PubDate)
	}
}

// --- article dates ---

func TestDecodeArticleDates(t *testing.T) {
	doc := wrapArticle(`<ArticleDate DateType="Electronic"><Year>2021</Year><Month>03</Month><Day>29</Day></ArticleDate>` +
		`<ArticleDate DateType="Electronic"><Year>2021</Year><Month>04</Month><Day>02</Day></ArticleDate>`)

	dates := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.ArticleDates
	if len(dates) != 2 {
		t.Fatalf("got %d article dates, want 2", len(dates))
	}
	if dates[0].String() != "2021-03-29" || dates[1].String() != "2021-04-02" {
		t.Errorf("dates = %v, %v", dates[0], dates[1])
	}
	if dates[0].DateType != "Electronic" {
		t.Errorf("DateType = %q, want Electronic", dates[0].DateType)
	}
}

func TestDecodeArticleDateWithoutYearDropped(t *testing.T) {
	doc := wrapArticle(`<ArticleDate DateType="Electronic"><Month>04</Month></ArticleDate>`)

	dates := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.ArticleDates
	if len(dates) != 0 {
		t.Errorf("got %d article dates, want 0", len(dates))
	}
}

// --- other article fields ---

func TestDecodeArticleTitles(t *testing.T) {
	doc := wrapArticle(`<ArticleTitle>On the electrodynamics of moving bodies.</ArticleTitle>` +
		`<VernacularTitle>Zur Elektrodynamik bewegter Koerper.</VernacularTitle>` +
		`<Language>ger</Language>`)

	art := decodeOne(t, ModeStrict, doc).MedlineCitation.Article
	if art.Title != "On the electrodynamics of moving bodies." {
		t.Errorf("Title = %q", art.Title)
	}
	if art.VernacularTitle != "Zur Elektrodynamik bewegter Koerper." {
		t.Errorf("VernacularTitle = %q", art.VernacularTitle)
	}
	if art.Language != "ger" {
		t.Errorf("Language = %q, want ger", art.Language)
	}
	if art.PubModel != "Print-Electronic" {
		t.Errorf("PubModel = %q, want Print-Electronic", art.PubModel)
	}
}

func TestDecodeArticleRecognizedExtras(t *testing.T) {
	doc := wrapArticle(`<ArticleTitle>T</ArticleTitle>` +
		`<DataBankList CompleteYN="Y"><DataBank><DataBankName>GENBANK</DataBankName></DataBank></DataBankList>` +
		`<OtherAbstract Type="Publisher" Language="fre"><AbstractText>Resume.</AbstractText></OtherAbstract>`)

	art := decodeOne(t, ModeStrict, doc).MedlineCitation.Article
	if art.Title != "T" {
		t.Errorf("Title = %q, want T", art.Title)
	}
	if art.Abstract != nil {
		t.Error("OtherAbstract must not populate the main abstract")
	}
}

func TestDecodePublicationTypes(t *testing.T) {
	doc := wrapArticle(`<PublicationTypeList>` +
		`<PublicationType UI="D016428">Journal Article</PublicationType>` +
		`<PublicationType UI="D016454">Review</PublicationType>` +
		`</PublicationTypeList>`)

	pts := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.PublicationTypes
	if len(pts) != 2 {
		t.Fatalf("got %d publication types, want 2", len(pts))
	}
	if pts[0].UI != "D016428" || pts[0].Name != "Journal Article" {
		t.Errorf("pts[0] = %+v", pts[0])
	}
	if pts[1].Name != "Review" {
		t.Errorf("pts[1] = %+v", pts[1])
	}
}
