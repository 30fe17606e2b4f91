// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// decodeMeshHeadings collects every MeshHeading under the list
// container. Headings without a descriptor carry no usable signal and
// are dropped.
func (d *Decoder) decodeMeshHeadings(el *etree.Element) []types.MeshHeading {
	var headings []types.MeshHeading
	for _, h := range el.FindElements(".//MeshHeading") {
		heading, ok := d.decodeMeshHeading(h)
		if !ok {
			continue
		}
		headings = append(headings, heading)
	}
	return headings
}

func (d *Decoder) decodeMeshHeading(el *etree.Element) (types.MeshHeading, bool) {
	desc := el.FindElement(".//DescriptorName")
	if desc == nil {
		d.logger().Debug("mesh heading without descriptor, skipping",
			zap.String("entity", el.Tag))
		return types.MeshHeading{}, false
	}
	heading := types.MeshHeading{Descriptor: decodeMeshTerm(desc)}
	for _, q := range el.FindElements(".//QualifierName") {
		heading.Qualifiers = append(heading.Qualifiers, decodeMeshTerm(q))
	}
	return heading, true
}

func decodeMeshTerm(el *etree.Element) types.MeshTerm {
	return types.MeshTerm{
		UI:         el.SelectAttrValue("UI", ""),
		MajorTopic: yn(el, "MajorTopicYN"),
		Name:       text(el),
	}
}
