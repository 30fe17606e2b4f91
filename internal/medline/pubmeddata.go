// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"github.com/beevik/etree"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func (d *Decoder) decodePubmedData(el *etree.Element) (*types.PubmedData, error) {
	pd := &types.PubmedData{}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "History":
			for _, pub := range child.FindElements(".//PubMedPubDate") {
				date, err := d.decodeDate(pub)
				if err != nil {
					return nil, err
				}
				if date != nil {
					pd.History = append(pd.History, *date)
				}
			}
		case "PublicationStatus":
			pd.PublicationStatus = text(child)
		case "ArticleIdList":
			pd.ArticleIDs = decodeArticleIDs(child)
		case "ReferenceList":
			for _, ref := range child.FindElements(".//Reference") {
				reference, err := d.decodeReference(ref)
				if err != nil {
					return nil, err
				}
				pd.References = append(pd.References, reference)
			}
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}

	return pd, nil
}

func (d *Decoder) decodeReference(el *etree.Element) (types.Reference, error) {
	ref := types.Reference{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Citation":
			ref.Citation = text(child)
		case "ArticleIdList":
			ref.ArticleIDs = decodeArticleIDs(child)
		default:
			if err := d.unknown(el, child); err != nil {
				return types.Reference{}, err
			}
		}
	}
	return ref, nil
}

func decodeArticleIDs(el *etree.Element) []types.ArticleID {
	var ids []types.ArticleID
	for _, id := range el.FindElements(".//ArticleId") {
		ids = append(ids, types.ArticleID{
			Type:  id.SelectAttrValue("IdType", ""),
			Value: text(id),
		})
	}
	return ids
}
