// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package medline decodes PubMed/MEDLINE citation XML into the typed
// record graph in pkg/types.
//
// The decoder walks the parsed element tree with one exhaustive switch
// per entity over its recognized child tags. Exhaustive dispatch is not
// the fastest way to read this schema, but it keeps every decision
// explicit: repeated tags accumulate into list fields, singular tags
// overwrite (the last occurrence wins, preserved for compatibility with
// the source schema's occasional duplicate elements), and anything
// outside the recognized set hits the default arm, where the Mode
// policy decides between failing fast and logging-and-skipping.
package medline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Mode is the policy for child elements outside an entity's recognized set.
type Mode int

const (
	// ModeLenient logs unrecognized elements and continues, dropping
	// the unrecognized subtree. The production default: one unexpected
	// field in one record must never sink the rest of a batch.
	ModeLenient Mode = iota

	// ModeStrict fails the decode on the first unrecognized element,
	// naming the tag and its containing entity. Used during development
	// to catch schema drift early.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "lenient"
}

// UnknownElementError reports a child element outside its containing
// entity's recognized set. Returned only in ModeStrict.
type UnknownElementError struct {
	Entity string
	Tag    string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unrecognized element <%s> in %s", e.Tag, e.Entity)
}

// Decoder turns MEDLINE citation XML into types.Record values. It holds
// no mutable state, so one Decoder may decode independent documents
// concurrently.
type Decoder struct {
	mode Mode
	log  *zap.Logger
}

// NewDecoder returns a Decoder with the given unknown-element policy.
// A nil logger disables diagnostics.
func NewDecoder(mode Mode, log *zap.Logger) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{mode: mode, log: log}
}

// Mode returns the decoder's unknown-element policy.
func (d *Decoder) Mode() Mode {
	return d.mode
}

func (d *Decoder) logger() *zap.Logger {
	if d.log == nil {
		return zap.NewNop()
	}
	return d.log
}

// unknown applies the Mode policy for a child element outside parent's
// recognized set.
func (d *Decoder) unknown(parent, child *etree.Element) error {
	if d.mode == ModeStrict {
		return &UnknownElementError{Entity: parent.Tag, Tag: child.Tag}
	}
	d.logger().Warn("unrecognized element, skipping",
		zap.String("entity", parent.Tag),
		zap.String("tag", child.Tag))
	return nil
}

// DecodeDocument parses data as XML and decodes every citation record
// found in it. Malformed XML is fatal for the whole document.
func (d *Decoder) DecodeDocument(data []byte) ([]types.Record, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing citation XML: %w", err)
	}
	return d.Records(doc)
}

// Records decodes every PubmedArticle element found anywhere in an
// already-parsed document, in document order. Batched multi-record
// responses therefore decode to one Record per occurrence. A document
// with no record elements yields an empty slice, not an error. In
// ModeStrict the first unrecognized element aborts the whole batch.
func (d *Decoder) Records(doc *etree.Document) ([]types.Record, error) {
	records := []types.Record{}
	for _, el := range doc.FindElements("//PubmedArticle") {
		rec, err := d.decodeRecord(el)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (d *Decoder) decodeRecord(el *etree.Element) (types.Record, error) {
	var rec types.Record
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "MedlineCitation":
			cit, err := d.decodeMedlineCitation(child)
			if err != nil {
				return rec, err
			}
			rec.MedlineCitation = cit
		case "PubmedData":
			pd, err := d.decodePubmedData(child)
			if err != nil {
				return rec, err
			}
			rec.PubmedData = pd
		default:
			if err := d.unknown(el, child); err != nil {
				return rec, err
			}
		}
	}
	return rec, nil
}

// text returns the element's direct character data, trimmed.
func text(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

// yn maps a Y/N attribute to a bool: "Y" is true, anything else,
// including absence, is false.
func yn(el *etree.Element, name string) bool {
	return el.SelectAttrValue(name, "") == "Y"
}

// number parses the element's text as an unsigned decimal, returning 0
// when it is absent or unparseable. Identifier fields are mandatory in
// the schema but default to 0 here rather than failing the decode.
func number(el *etree.Element) uint64 {
	n, err := strconv.ParseUint(text(el), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
