// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func (d *Decoder) decodeMedlineCitation(el *etree.Element) (*types.MedlineCitation, error) {
	cit := &types.MedlineCitation{
		Owner:  el.SelectAttrValue("Owner", ""),
		Status: el.SelectAttrValue("Status", ""),
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "PMID":
			cit.PMID = number(child)
		case "DateCompleted":
			pd, err := d.decodeDate(child)
			if err != nil {
				return nil, err
			}
			cit.DateCompleted = pd
		case "DateRevised":
			pd, err := d.decodeDate(child)
			if err != nil {
				return nil, err
			}
			cit.DateRevised = pd
		case "Article":
			a, err := d.decodeArticle(child)
			if err != nil {
				return nil, err
			}
			cit.Article = a
		case "MedlineJournalInfo":
			ji, err := d.decodeMedlineJournalInfo(child)
			if err != nil {
				return nil, err
			}
			cit.JournalInfo = ji
		case "MeshHeadingList":
			cit.MeshHeadings = d.decodeMeshHeadings(child)
		case "KeywordList":
			cit.KeywordLists = append(cit.KeywordLists, decodeKeywordList(child))
		case "ChemicalList":
			cit.Chemicals = d.decodeChemicals(child)
		case "InvestigatorList":
			inv, err := d.decodeInvestigators(child)
			if err != nil {
				return nil, err
			}
			cit.Investigators = inv
		case "OtherID":
			cit.OtherIDs = append(cit.OtherIDs, types.OtherID{
				Source: child.SelectAttrValue("Source", ""),
				Value:  text(child),
			})
		case "CitationSubset":
			cit.CitationSubsets = append(cit.CitationSubsets, text(child))
		case "CoiStatement":
			cit.CoiStatement = text(child)
		case "NumberOfReferences":
			cit.NumberOfReferences = text(child)
		case "GeneralNote", "SpaceFlightMission", "CommentsCorrectionsList",
			"SupplMeshList", "GeneSymbolList", "PersonalNameSubjectList":
			// Acknowledged substructures the record graph does not
			// represent. Recognizing them keeps strict mode usable on
			// real corpora.
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}

	return cit, nil
}

func (d *Decoder) decodeMedlineJournalInfo(el *etree.Element) (*types.MedlineJournalInfo, error) {
	info := &types.MedlineJournalInfo{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Country":
			info.Country = text(child)
		case "MedlineTA":
			info.MedlineTA = text(child)
		case "NlmUniqueID":
			info.NlmUniqueID = text(child)
		case "ISSNLinking":
			info.ISSNLinking = text(child)
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}
	return info, nil
}

// decodeChemicals collects every Chemical element under the list
// container. A chemical without a substance name is dropped from the
// list; the rest of the record decodes normally.
func (d *Decoder) decodeChemicals(el *etree.Element) []types.Chemical {
	var chemicals []types.Chemical
	for _, c := range el.FindElements(".//Chemical") {
		substance := c.FindElement(".//NameOfSubstance")
		if substance == nil {
			d.logger().Debug("chemical without substance name, skipping",
				zap.String("entity", c.Tag))
			continue
		}
		chem := types.Chemical{
			UI:   substance.SelectAttrValue("UI", ""),
			Name: text(substance),
		}
		if rn := c.FindElement(".//RegistryNumber"); rn != nil {
			chem.RegistryNumber = text(rn)
		}
		chemicals = append(chemicals, chem)
	}
	return chemicals
}

// decodeKeywordList decodes one keyword list. The citation may carry
// several, one per owning organization.
func decodeKeywordList(el *etree.Element) types.KeywordList {
	kl := types.KeywordList{Owner: el.SelectAttrValue("Owner", "")}
	for _, k := range el.FindElements(".//Keyword") {
		kl.Keywords = append(kl.Keywords, types.Keyword{
			MajorTopic: yn(k, "MajorTopicYN"),
			Name:       text(k),
		})
	}
	return kl
}
