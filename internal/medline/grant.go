// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"github.com/beevik/etree"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func (d *Decoder) decodeGrantList(el *etree.Element) (*types.GrantList, error) {
	gl := &types.GrantList{Complete: yn(el, "CompleteYN")}
	for _, g := range el.FindElements(".//Grant") {
		grant, err := d.decodeGrant(g)
		if err != nil {
			return nil, err
		}
		gl.Grants = append(gl.Grants, grant)
	}
	return gl, nil
}

func (d *Decoder) decodeGrant(el *etree.Element) (types.Grant, error) {
	grant := types.Grant{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "GrantID":
			grant.ID = text(child)
		case "Acronym":
			grant.Acronym = text(child)
		case "Agency":
			grant.Agency = text(child)
		case "Country":
			grant.Country = text(child)
		default:
			if err := d.unknown(el, child); err != nil {
				return types.Grant{}, err
			}
		}
	}
	return grant, nil
}
