// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"github.com/beevik/etree"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func (d *Decoder) decodeAuthorList(el *etree.Element) (*types.AuthorList, error) {
	al := &types.AuthorList{Complete: yn(el, "CompleteYN")}
	for _, a := range el.FindElements(".//Author") {
		author, err := d.decodeAuthor(a)
		if err != nil {
			return nil, err
		}
		al.Authors = append(al.Authors, author)
	}
	return al, nil
}

func (d *Decoder) decodeAuthor(el *etree.Element) (types.Author, error) {
	author := types.Author{Valid: yn(el, "ValidYN")}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "LastName":
			author.LastName = text(child)
		case "ForeName":
			author.ForeName = text(child)
		case "Initials":
			author.Initials = text(child)
		case "Suffix":
			author.Suffix = text(child)
		case "CollectiveName":
			author.CollectiveName = text(child)
		case "AffiliationInfo":
			aff, err := d.decodeAffiliationInfo(child)
			if err != nil {
				return types.Author{}, err
			}
			author.Affiliation = aff
		case "Identifier":
			author.Identifiers = append(author.Identifiers, types.Identifier{
				Source: child.SelectAttrValue("Source", ""),
				Value:  text(child),
			})
		default:
			if err := d.unknown(el, child); err != nil {
				return types.Author{}, err
			}
		}
	}
	return author, nil
}

func (d *Decoder) decodeAffiliationInfo(el *etree.Element) (*types.AffiliationInfo, error) {
	aff := &types.AffiliationInfo{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Affiliation":
			aff.Affiliation = text(child)
		case "Identifier":
			// Institutional identifiers are not carried.
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}
	return aff, nil
}

// decodeInvestigators handles the InvestigatorList container. The
// Investigator element shares the Author vocabulary minus the
// collective-name form.
func (d *Decoder) decodeInvestigators(el *etree.Element) ([]types.Investigator, error) {
	var investigators []types.Investigator
	for _, inv := range el.FindElements(".//Investigator") {
		investigator, err := d.decodeInvestigator(inv)
		if err != nil {
			return nil, err
		}
		investigators = append(investigators, investigator)
	}
	return investigators, nil
}

func (d *Decoder) decodeInvestigator(el *etree.Element) (types.Investigator, error) {
	inv := types.Investigator{Valid: yn(el, "ValidYN")}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "LastName":
			inv.LastName = text(child)
		case "ForeName":
			inv.ForeName = text(child)
		case "Initials":
			inv.Initials = text(child)
		case "Suffix":
			inv.Suffix = text(child)
		case "AffiliationInfo":
			aff, err := d.decodeAffiliationInfo(child)
			if err != nil {
				return types.Investigator{}, err
			}
			inv.Affiliation = aff
		case "Identifier":
			inv.Identifiers = append(inv.Identifiers, types.Identifier{
				Source: child.SelectAttrValue("Source", ""),
				Value:  text(child),
			})
		default:
			if err := d.unknown(el, child); err != nil {
				return types.Investigator{}, err
			}
		}
	}
	return inv, nil
}
