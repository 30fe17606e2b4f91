// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"github.com/beevik/etree"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func (d *Decoder) decodeArticle(el *etree.Element) (*types.Article, error) {
	art := &types.Article{PubModel: el.SelectAttrValue("PubModel", "")}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "ArticleTitle":
			art.Title = text(child)
		case "VernacularTitle":
			art.VernacularTitle = text(child)
		case "Language":
			art.Language = text(child)
		case "Journal":
			j, err := d.decodeJournal(child)
			if err != nil {
				return nil, err
			}
			art.Journal = j
		case "Pagination":
			pages, err := d.decodePagination(child)
			if err != nil {
				return nil, err
			}
			art.Pages = pages
		case "ELocationID":
			art.ELocationIDs = append(art.ELocationIDs, decodeELocationID(child))
		case "Abstract":
			art.Abstract = decodeAbstract(child)
		case "AuthorList":
			al, err := d.decodeAuthorList(child)
			if err != nil {
				return nil, err
			}
			art.AuthorList = al
		case "GrantList":
			gl, err := d.decodeGrantList(child)
			if err != nil {
				return nil, err
			}
			art.GrantList = gl
		case "PublicationTypeList":
			art.PublicationTypes = decodePublicationTypes(child)
		case "ArticleDate":
			pd, err := d.decodeDate(child)
			if err != nil {
				return nil, err
			}
			if pd != nil {
				art.ArticleDates = append(art.ArticleDates, *pd)
			}
		case "DataBankList", "OtherAbstract":
			// Recognized but not carried on the record.
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}

	return art, nil
}

func (d *Decoder) decodeJournal(el *etree.Element) (*types.Journal, error) {
	j := &types.Journal{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "ISSN":
			j.ISSN = &types.ISSN{
				Type:  child.SelectAttrValue("IssnType", ""),
				Value: text(child),
			}
		case "Title":
			j.Title = text(child)
		case "ISOAbbreviation":
			j.ISOAbbreviation = text(child)
		case "JournalIssue":
			issue, err := d.decodeJournalIssue(child)
			if err != nil {
				return nil, err
			}
			j.Issue = issue
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}
	return j, nil
}

func (d *Decoder) decodeJournalIssue(el *etree.Element) (*types.JournalIssue, error) {
	issue := &types.JournalIssue{CitedMedium: el.SelectAttrValue("CitedMedium", "")}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Volume":
			issue.Volume = text(child)
		case "Issue":
			issue.Issue = text(child)
		case "PubDate":
			pd, err := d.decodeDate(child)
			if err != nil {
				return nil, err
			}
			issue.PubDate = pd
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}
	return issue, nil
}

func (d *Decoder) decodePagination(el *etree.Element) ([]types.Page, error) {
	var pages []types.Page
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "StartPage":
			pages = append(pages, types.Page{Kind: types.PageStart, Value: text(child)})
		case "EndPage":
			pages = append(pages, types.Page{Kind: types.PageEnd, Value: text(child)})
		case "MedlinePgn":
			pages = append(pages, types.Page{Kind: types.PageMedline, Value: text(child)})
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}
	return pages, nil
}

func decodeELocationID(el *etree.Element) types.ELocationID {
	return types.ELocationID{
		Type:  el.SelectAttrValue("EIdType", ""),
		Valid: yn(el, "ValidYN"),
		ID:    text(el),
	}
}

// decodeAbstract keeps the first AbstractText section. Structured
// abstracts carry several labeled sections; collapsing to the first
// matches how downstream consumers have always read the field.
func decodeAbstract(el *etree.Element) *types.Abstract {
	abstract := &types.Abstract{}
	if t := el.FindElement(".//AbstractText"); t != nil {
		abstract.Text = text(t)
	}
	return abstract
}

func decodePublicationTypes(el *etree.Element) []types.PublicationType {
	var pts []types.PublicationType
	for _, pt := range el.FindElements(".//PublicationType") {
		pts = append(pts, types.PublicationType{
			UI:   pt.SelectAttrValue("UI", ""),
			Name: text(pt),
		})
	}
	return pts
}
