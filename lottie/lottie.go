// Package lottie provides a minimal model of a Lottie animation document:
// an untyped JSON value tree with typed accessors for the pieces the
// optimizer interprets (the assets array and, per asset, id/p/t).
package lottie

import (
	"github.com/blang/semver"
	"github.com/cybergodev/json"
	"github.com/pkg/errors"
)

// Document is a parsed animation document. Apart from the assets array it
// is treated as an opaque value tree of nulls, booleans, numbers, strings,
// arrays and objects.
type Document map[string]interface{}

// Asset is one entry of the document's assets array. Assets are mutated
// in place (payload replaced) and never added or removed.
type Asset map[string]interface{}

// Parse reads a document from its serialized form.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not parse document")
	}
	return doc, nil
}

// Serialize writes the document in compact form, without extraneous
// whitespace.
func Serialize(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize document")
	}
	return data, nil
}

// Assets returns the document's assets as independently-owned slots.
// A missing or non-array assets field yields an empty slice. Entries that
// are not objects are not assets and are excluded from the returned list,
// but remain in the document untouched.
func (doc Document) Assets() []Asset {
	raw, ok := doc["assets"].([]interface{})
	if !ok {
		return nil
	}
	assets := make([]Asset, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]interface{}); ok {
			assets = append(assets, Asset(m))
		}
	}
	return assets
}

// Version returns the document's bodymovin version ("v" field) when present
// and parsable, and "" otherwise. Used only for reporting.
func (doc Document) Version() string {
	s, ok := doc["v"].(string)
	if !ok {
		return ""
	}
	v, err := semver.ParseTolerant(s)
	if err != nil {
		return ""
	}
	return v.String()
}

// ID returns the asset's opaque identifier, used only for reporting.
func (a Asset) ID() string {
	id, _ := a["id"].(string)
	return id
}

// Payload returns the asset's p field: either a data-URI-embedded image
// or an external reference.
func (a Asset) Payload() string {
	p, _ := a["p"].(string)
	return p
}

// SetPayload replaces the asset's payload in place.
func (a Asset) SetPayload(p string) {
	a["p"] = p
}

// IsSequence reports whether the asset is tagged as a multi-frame image
// sequence (t == "seq").
func (a Asset) IsSequence() bool {
	t, _ := a["t"].(string)
	return t == "seq"
}
