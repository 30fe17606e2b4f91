// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"errors"
	"testing"
)

func TestDecodeGrantList(t *testing.T) {
	doc := wrapArticle(`<GrantList CompleteYN="Y">` +
		`<Grant>` +
		`<GrantID>R01 GM011072</GrantID><Acronym>GM</Acronym>` +
		`<Agency>NIGMS NIH HHS</Agency><Country>United States</Country>` +
		`</Grant>` +
		`<Grant><Agency>Wellcome Trust</Agency><Country>United Kingdom</Country></Grant>` +
		`</GrantList>`)

	gl := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.GrantList
	if gl == nil {
		t.Fatal("GrantList is nil")
	}
	if !gl.Complete {
		t.Error("Complete = false, want true for CompleteYN=Y")
	}
	if len(gl.Grants) != 2 {
		t.Fatalf("got %d grants, want 2", len(gl.Grants))
	}

	g := gl.Grants[0]
	if g.ID != "R01 GM011072" || g.Acronym != "GM" {
		t.Errorf("grants[0] = %+v", g)
	}
	if g.Agency != "NIGMS NIH HHS" || g.Country != "United States" {
		t.Errorf("grants[0] = %+v", g)
	}

	// Agency-only grants are common; the missing fields stay empty.
	if gl.Grants[1].ID != "" || gl.Grants[1].Agency != "Wellcome Trust" {
		t.Errorf("grants[1] = %+v", gl.Grants[1])
	}
}

func TestDecodeGrantListIncomplete(t *testing.T) {
	doc := wrapArticle(`<GrantList CompleteYN="N"><Grant><Agency>NIH</Agency></Grant></GrantList>`)

	gl := decodeOne(t, ModeStrict, doc).MedlineCitation.Article.GrantList
	if gl.Complete {
		t.Error("Complete = true, want false for CompleteYN=N")
	}
}

func TestDecodeGrantUnknownChildStrict(t *testing.T) {
	doc := wrapArticle(`<GrantList><Grant><Agency>NIH</Agency><GrantOwner>X</GrantOwner></Grant></GrantList>`)

	_, err := NewDecoder(ModeStrict, nil).DecodeDocument([]byte(doc))
	var ue *UnknownElementError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UnknownElementError", err)
	}
	if ue.Entity != "Grant" || ue.Tag != "GrantOwner" {
		t.Errorf("Entity/Tag = %q/%q, want Grant/GrantOwner", ue.Entity, ue.Tag)
	}
}
