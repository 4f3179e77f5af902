package config

import (
	"github.com/appbuild/cli/internal/platform"
)

// BaseSection is the document key holding platform-independent options.
const BaseSection = "base"

// Document is the layered configuration document:
//
//	{ "base": {...}, "windows": {...}, "macos": {...}, "linux": {...} }
type Document struct {
	Base      Values
	Platforms map[platform.Platform]Values
}

// NewDocument creates a document with the given base and no overlays.
func NewDocument(base Values) *Document {
	if base == nil {
		base = Values{}
	}
	return &Document{
		Base:      base,
		Platforms: make(map[platform.Platform]Values),
	}
}

// Overlay returns the overlay for p, or an empty Values.
func (d *Document) Overlay(p platform.Platform) Values {
	if o, ok := d.Platforms[p]; ok && o != nil {
		return o
	}
	return Values{}
}

// Resolve flattens the document for p: base with p's overlay on top.
func (d *Document) Resolve(p platform.Platform) Values {
	return Merge(d.Base, d.Overlay(p))
}

// Raw returns the document as a plain two-level mapping suitable for
// serialization. Platforms without an overlay are omitted.
func (d *Document) Raw() map[string]any {
	raw := map[string]any{BaseSection: map[string]any(d.Base)}
	for _, p := range platform.All() {
		if o, ok := d.Platforms[p]; ok {
			if o == nil {
				o = Values{}
			}
			raw[p.String()] = map[string]any(o)
		}
	}
	return raw
}

// Flatten returns a document whose base is the already-merged values and
// whose overlay for p is empty. Resolving it on p reproduces values exactly.
func Flatten(values Values, p platform.Platform) *Document {
	doc := NewDocument(values.Clone())
	doc.Platforms[p] = Values{}
	return doc
}
