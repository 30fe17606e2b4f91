// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the citation record graph produced by the
// MEDLINE decoder, plus the configuration structures shared across
// pubmed-engine. The graph is a strict tree: every entity is owned by
// exactly one parent, optional sub-entities are nil pointers, and list
// fields are always present (possibly empty) in serialized output.
package types

// Record is one decoded PubMed citation record, delimited in source XML
// by a PubmedArticle element. It holds at most one MedlineCitation and
// at most one PubmedData block. Records are constructed once by the
// decoder and never mutated afterwards.
type Record struct {
	// MedlineCitation is the bibliographic core of the record.
	MedlineCitation *MedlineCitation `json:"medline_citation,omitempty" yaml:"medline_citation,omitempty"`

	// PubmedData carries publication history, cross-reference
	// identifiers, and the publication status.
	PubmedData *PubmedData `json:"pubmed_data,omitempty" yaml:"pubmed_data,omitempty"`
}

// MedlineCitation is the citation body: identifier, dates, the article,
// and the indexing vocabulary attached to it.
type MedlineCitation struct {
	// PMID is the numeric PubMed identifier. 0 when the source record
	// carried none or an unparseable one; never a decode failure.
	PMID uint64 `json:"pmid" yaml:"pmid"`

	// Owner and Status are carried verbatim from the source attributes.
	Owner  string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	DateCompleted *PartialDate `json:"date_completed,omitempty" yaml:"date_completed,omitempty"`
	DateRevised   *PartialDate `json:"date_revised,omitempty" yaml:"date_revised,omitempty"`

	Article *Article `json:"article,omitempty" yaml:"article,omitempty"`

	// JournalInfo is the MEDLINE journal summary (country, title
	// abbreviation, NLM identifiers).
	JournalInfo *MedlineJournalInfo `json:"journal_info,omitempty" yaml:"journal_info,omitempty"`

	MeshHeadings []MeshHeading `json:"mesh_headings" yaml:"mesh_headings"`

	// KeywordLists holds zero or more keyword lists; the source may
	// carry one list per owning organization.
	KeywordLists []KeywordList `json:"keyword_lists" yaml:"keyword_lists"`

	Chemicals     []Chemical     `json:"chemicals" yaml:"chemicals"`
	Investigators []Investigator `json:"investigators" yaml:"investigators"`

	// OtherIDs are cross-reference identifiers from other databases.
	OtherIDs []OtherID `json:"other_ids" yaml:"other_ids"`

	// CitationSubsets lists the MEDLINE subset codes (e.g. "IM").
	CitationSubsets []string `json:"citation_subsets" yaml:"citation_subsets"`

	// CoiStatement is the conflict-of-interest statement, verbatim.
	CoiStatement string `json:"coi_statement,omitempty" yaml:"coi_statement,omitempty"`

	// NumberOfReferences is kept as text: the source schema has moved
	// this field across versions and not all values are numeric.
	NumberOfReferences string `json:"number_of_references,omitempty" yaml:"number_of_references,omitempty"`
}

// MedlineJournalInfo summarizes the journal a citation was indexed
// under.
type MedlineJournalInfo struct {
	Country     string `json:"country,omitempty" yaml:"country,omitempty"`
	MedlineTA   string `json:"medline_ta,omitempty" yaml:"medline_ta,omitempty"`
	NlmUniqueID string `json:"nlm_unique_id,omitempty" yaml:"nlm_unique_id,omitempty"`
	ISSNLinking string `json:"issn_linking,omitempty" yaml:"issn_linking,omitempty"`
}

// Article is the published work described by a citation.
type Article struct {
	// PubModel is the publication model attribute, verbatim
	// (e.g. "Print", "Electronic", "Print-Electronic").
	PubModel string `json:"pub_model,omitempty" yaml:"pub_model,omitempty"`

	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	VernacularTitle string `json:"vernacular_title,omitempty" yaml:"vernacular_title,omitempty"`
	Language        string `json:"language,omitempty" yaml:"language,omitempty"`

	Journal *Journal `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Pages holds pagination entries in document order, each tagged by
	// kind (start page, end page, or the combined MEDLINE form).
	Pages []Page `json:"pages" yaml:"pages"`

	// ELocationIDs are electronic location identifiers (DOI, PII) in
	// document order.
	ELocationIDs []ELocationID `json:"e_location_ids" yaml:"e_location_ids"`

	Abstract *Abstract `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	AuthorList *AuthorList `json:"author_list,omitempty" yaml:"author_list,omitempty"`
	GrantList  *GrantList  `json:"grant_list,omitempty" yaml:"grant_list,omitempty"`

	PublicationTypes []PublicationType `json:"publication_types" yaml:"publication_types"`

	// ArticleDates are electronic publication dates, one per source
	// ArticleDate element.
	ArticleDates []PartialDate `json:"article_dates" yaml:"article_dates"`
}

// PageKind tags one pagination entry.
type PageKind string

const (
	PageStart   PageKind = "start"
	PageEnd     PageKind = "end"
	PageMedline PageKind = "medline"
)

// Page is a single pagination entry.
type Page struct {
	Kind  PageKind `json:"kind" yaml:"kind"`
	Value string   `json:"value" yaml:"value"`
}

// ELocationID is an electronic location identifier with its type code
// and validity flag.
type ELocationID struct {
	// Type is the identifier type code, verbatim (e.g. "doi", "pii").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Valid reflects the source ValidYN attribute.
	Valid bool `json:"valid" yaml:"valid"`

	ID string `json:"id" yaml:"id"`
}

// Journal describes the publication venue.
type Journal struct {
	ISSN            *ISSN         `json:"issn,omitempty" yaml:"issn,omitempty"`
	Title           string        `json:"title,omitempty" yaml:"title,omitempty"`
	ISOAbbreviation string        `json:"iso_abbreviation,omitempty" yaml:"iso_abbreviation,omitempty"`
	Issue           *JournalIssue `json:"issue,omitempty" yaml:"issue,omitempty"`
}

// ISSN is a journal serial number with its medium type.
type ISSN struct {
	// Type is the source IssnType attribute (e.g. "Print", "Electronic").
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value" yaml:"value"`
}

// JournalIssue identifies the volume and issue an article appeared in.
type JournalIssue struct {
	// CitedMedium is carried verbatim (e.g. "Internet", "Print").
	CitedMedium string       `json:"cited_medium,omitempty" yaml:"cited_medium,omitempty"`
	Volume      string       `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue       string       `json:"issue,omitempty" yaml:"issue,omitempty"`
	PubDate     *PartialDate `json:"pub_date,omitempty" yaml:"pub_date,omitempty"`
}

// Abstract holds the first abstract text block of an article. Later
// blocks in the source are discarded: the external convention treats
// only the first language variant as authoritative.
type Abstract struct {
	Text string `json:"text" yaml:"text"`
}

// AuthorList is the ordered author sequence plus the source
// completeness flag.
type AuthorList struct {
	// Complete reflects the source CompleteYN attribute.
	Complete bool     `json:"complete" yaml:"complete"`
	Authors  []Author `json:"authors" yaml:"authors"`
}

// Author is either a named person or a collective body. For a person
// the name parts are set and CollectiveName is empty; for a collective
// body only CollectiveName is set.
type Author struct {
	LastName       string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	ForeName       string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	Initials       string `json:"initials,omitempty" yaml:"initials,omitempty"`
	Suffix         string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	CollectiveName string `json:"collective_name,omitempty" yaml:"collective_name,omitempty"`

	Affiliation *AffiliationInfo `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// Identifiers are external person identifiers (e.g. ORCID).
	Identifiers []Identifier `json:"identifiers" yaml:"identifiers"`

	// Valid reflects the source ValidYN attribute.
	Valid bool `json:"valid" yaml:"valid"`
}

// AffiliationInfo is an author's institutional affiliation block.
type AffiliationInfo struct {
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// Identifier is an external identifier with its issuing source.
type Identifier struct {
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Value  string `json:"value" yaml:"value"`
}

// GrantList is the ordered grant sequence plus the source completeness
// flag.
type GrantList struct {
	Complete bool    `json:"complete" yaml:"complete"`
	Grants   []Grant `json:"grants" yaml:"grants"`
}

// Grant is one funding acknowledgment.
type Grant struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Acronym string `json:"acronym,omitempty" yaml:"acronym,omitempty"`
	Agency  string `json:"agency,omitempty" yaml:"agency,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// PublicationType is one publication type tag (e.g. "Journal Article").
type PublicationType struct {
	UI   string `json:"ui,omitempty" yaml:"ui,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// MeshHeading is a controlled-vocabulary subject term: exactly one
// descriptor plus zero or more qualifiers.
type MeshHeading struct {
	Descriptor MeshTerm   `json:"descriptor" yaml:"descriptor"`
	Qualifiers []MeshTerm `json:"qualifiers" yaml:"qualifiers"`
}

// MeshTerm is one MeSH vocabulary term part.
type MeshTerm struct {
	// UI is the MeSH unique identifier (e.g. "D000001").
	UI string `json:"ui,omitempty" yaml:"ui,omitempty"`

	// MajorTopic reflects the source MajorTopicYN attribute.
	MajorTopic bool `json:"major_topic" yaml:"major_topic"`

	Name string `json:"name" yaml:"name"`
}

// KeywordList is one keyword list with its owning organization.
type KeywordList struct {
	Owner    string    `json:"owner,omitempty" yaml:"owner,omitempty"`
	Keywords []Keyword `json:"keywords" yaml:"keywords"`
}

// Keyword is one free-vocabulary indexing term.
type Keyword struct {
	MajorTopic bool   `json:"major_topic" yaml:"major_topic"`
	Name       string `json:"name" yaml:"name"`
}

// Chemical is one indexed chemical substance.
type Chemical struct {
	// RegistryNumber is the CAS registry number, or "0" when none.
	RegistryNumber string `json:"registry_number,omitempty" yaml:"registry_number,omitempty"`

	// UI and Name identify the substance in the MeSH vocabulary.
	UI   string `json:"ui,omitempty" yaml:"ui,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// Investigator is a named contributor outside the author list. Same
// name shape as Author, minus the collective form.
type Investigator struct {
	LastName string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	ForeName string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	Initials string `json:"initials,omitempty" yaml:"initials,omitempty"`
	Suffix   string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	Affiliation *AffiliationInfo `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Identifiers []Identifier     `json:"identifiers" yaml:"identifiers"`

	Valid bool `json:"valid" yaml:"valid"`
}

// OtherID is a cross-reference identifier from another database.
type OtherID struct {
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Value  string `json:"value" yaml:"value"`
}

// PubmedData is the publication metadata block: history, article
// identifiers, status, and the reference list.
type PubmedData struct {
	// History holds one dated status entry per source PubMedPubDate;
	// entries carry their status tag in PartialDate.PubStatus.
	History []PartialDate `json:"history" yaml:"history"`

	PublicationStatus string `json:"publication_status,omitempty" yaml:"publication_status,omitempty"`

	// ArticleIDs are cross-reference identifiers (doi, pmc, pii, ...).
	ArticleIDs []ArticleID `json:"article_ids" yaml:"article_ids"`

	References []Reference `json:"references" yaml:"references"`
}

// ArticleID is one cross-reference identifier with its type code.
type ArticleID struct {
	// Type is the identifier type, verbatim (e.g. "doi", "pubmed", "pmc").
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value" yaml:"value"`
}

// Reference is one cited work from the record's reference list.
type Reference struct {
	Citation   string      `json:"citation,omitempty" yaml:"citation,omitempty"`
	ArticleIDs []ArticleID `json:"article_ids" yaml:"article_ids"`
}

// PMID returns the record's numeric identifier, or 0 when the record
// has no citation body.
func (r Record) PMID() uint64 {
	if r.MedlineCitation == nil {
		return 0
	}
	return r.MedlineCitation.PMID
}

// Title returns the article title, or "" when absent.
func (r Record) Title() string {
	if r.MedlineCitation == nil || r.MedlineCitation.Article == nil {
		return ""
	}
	return r.MedlineCitation.Article.Title
}

// AbstractText returns the abstract body, or "" when absent.
func (r Record) AbstractText() string {
	if r.MedlineCitation == nil || r.MedlineCitation.Article == nil ||
		r.MedlineCitation.Article.Abstract == nil {
		return ""
	}
	return r.MedlineCitation.Article.Abstract.Text
}

// JournalTitle returns the journal title, falling back to the MEDLINE
// title abbreviation, or "" when neither is present.
func (r Record) JournalTitle() string {
	if r.MedlineCitation == nil {
		return ""
	}
	if a := r.MedlineCitation.Article; a != nil && a.Journal != nil && a.Journal.Title != "" {
		return a.Journal.Title
	}
	if ji := r.MedlineCitation.JournalInfo; ji != nil {
		return ji.MedlineTA
	}
	return ""
}

// PubDate returns the journal issue's publication date, falling back to
// the first article date, or nil when neither is present.
func (r Record) PubDate() *PartialDate {
	if r.MedlineCitation == nil || r.MedlineCitation.Article == nil {
		return nil
	}
	a := r.MedlineCitation.Article
	if a.Journal != nil && a.Journal.Issue != nil && a.Journal.Issue.PubDate != nil {
		return a.Journal.Issue.PubDate
	}
	if len(a.ArticleDates) > 0 {
		return &a.ArticleDates[0]
	}
	return nil
}

// AuthorNames returns one display name per author, in source order.
// Collective bodies contribute their collective name.
func (r Record) AuthorNames() []string {
	if r.MedlineCitation == nil || r.MedlineCitation.Article == nil ||
		r.MedlineCitation.Article.AuthorList == nil {
		return nil
	}
	var names []string
	for _, a := range r.MedlineCitation.Article.AuthorList.Authors {
		names = append(names, a.DisplayName())
	}
	return names
}

// DOI returns the article's DOI, preferring a valid ELocationID entry
// and falling back to the cross-reference identifier list. Returns ""
// when the record carries none.
func (r Record) DOI() string {
	if r.MedlineCitation != nil && r.MedlineCitation.Article != nil {
		for _, loc := range r.MedlineCitation.Article.ELocationIDs {
			if loc.Type == "doi" && loc.Valid && loc.ID != "" {
				return loc.ID
			}
		}
	}
	if r.PubmedData != nil {
		for _, id := range r.PubmedData.ArticleIDs {
			if id.Type == "doi" && id.Value != "" {
				return id.Value
			}
		}
	}
	return ""
}

// DisplayName returns "ForeName LastName" for a person, the collective
// name for a collective body, or whichever name part is present.
func (a Author) DisplayName() string {
	if a.CollectiveName != "" {
		return a.CollectiveName
	}
	switch {
	case a.ForeName != "" && a.LastName != "":
		return a.ForeName + " " + a.LastName
	case a.LastName != "":
		return a.LastName
	default:
		return a.ForeName
	}
}
