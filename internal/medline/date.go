// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// monthAbbrevs maps three-letter English month abbreviations, lowered,
// to month numbers.
var monthAbbrevs = map[string]uint8{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// ParseMonth converts a source month representation to 1-12. The source
// writes months either as a three-letter English abbreviation in
// arbitrary case ("May", "MAY", "may") or as a bare number ("5").
// Anything else, including out-of-range numbers, is 0 (absent); month
// parsing never fails a decode.
func ParseMonth(s string) uint8 {
	s = strings.TrimSpace(s)
	if m, ok := monthAbbrevs[strings.ToLower(s)]; ok {
		return m
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return uint8(n)
	}
	return 0
}

// decodeDate decodes a date-bearing element (DateCompleted, DateRevised,
// PubDate, ArticleDate, PubMedPubDate) into a PartialDate. A date with
// no parseable Year child is wholly absent (nil), never a zeroed date.
// Season and MedlineDate children are recognized but carry no structure
// this model represents; a date given only in one of those forms
// decodes to absent. That is a known gap, surfaced here rather than
// silently guessed around.
func (d *Decoder) decodeDate(el *etree.Element) (*types.PartialDate, error) {
	pd := types.PartialDate{
		Hour:      -1,
		Minute:    -1,
		DateType:  el.SelectAttrValue("DateType", ""),
		PubStatus: el.SelectAttrValue("PubStatus", ""),
	}
	hasYear := false

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Year":
			if y, err := strconv.ParseUint(text(child), 10, 32); err == nil {
				pd.Year = uint32(y)
				hasYear = true
			}
		case "Month":
			pd.Month = ParseMonth(text(child))
		case "Day":
			if n, err := strconv.Atoi(text(child)); err == nil && n >= 1 && n <= 31 {
				pd.Day = uint8(n)
			}
		case "Hour":
			if n, err := strconv.Atoi(text(child)); err == nil && n >= 0 && n <= 23 {
				pd.Hour = int8(n)
			}
		case "Minute":
			if n, err := strconv.Atoi(text(child)); err == nil && n >= 0 && n <= 59 {
				pd.Minute = int8(n)
			}
		case "Season", "MedlineDate":
			d.logger().Debug("unstructured date form, not represented",
				zap.String("entity", el.Tag),
				zap.String("form", child.Tag))
		default:
			if err := d.unknown(el, child); err != nil {
				return nil, err
			}
		}
	}

	if !hasYear {
		return nil, nil
	}
	return &pd, nil
}
