// Package glyphport lays out the connection ports of a glyph and resolves
// port references against them.
//
// Ports are never stored as coordinates. Every slot is an offset from the
// glyph's top-left corner derived from the glyph's type, size and
// attributes, so slots are recomputed whenever a glyph is read.
package glyphport

import (
	"strconv"

	"oss.terrastruct.com/glyphs/glyphsize"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/geo"
)

const (
	// UML attribute rows start below the class name section.
	ATTRIBUTE_START_Y    = 33.
	ATTRIBUTE_ROW_HEIGHT = 20.
	ATTRIBUTE_ROW_CENTER = 10.
)

// Slot is one port position on a glyph.
type Slot struct {
	// ID is set for ports declared in the glyph's explicit port list.
	ID   string               `json:"id,omitempty"`
	Kind glyphtarget.PortKind `json:"kind"`
	// Index is the 0-based rank among slots of the same kind, or the
	// attribute row for attribute slots.
	Index int `json:"index"`

	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Ref is the canonical reference to s.
func (s Slot) Ref() glyphtarget.PortRef {
	if s.ID != "" {
		return glyphtarget.PortID(s.ID)
	}
	return glyphtarget.PortAt(s.Kind, s.Index)
}

func (s Slot) IsSource() bool {
	return s.Kind == glyphtarget.PortKindOutput || s.Kind == glyphtarget.PortKindAttribute
}

func (s Slot) IsTarget() bool {
	return s.Kind == glyphtarget.PortKindInput
}

func (s Slot) Offset() *geo.Point {
	return geo.NewPoint(s.DX, s.DY)
}

// Slots returns the glyph's ports: inputs, then outputs, then UML attribute
// ports.
//
// With an explicit port list, each port's vertical position depends only on
// its rank among ports of the same type, never on where it sits in the list.
func Slots(g *glyphtarget.Glyph, size glyphsize.Size) []Slot {
	var inputs, outputs []Slot
	if g.HasExplicitPorts() {
		for _, p := range g.Ports {
			switch p.Type {
			case glyphtarget.PortInput:
				inputs = append(inputs, Slot{ID: p.ID, Kind: glyphtarget.PortKindInput, Index: len(inputs)})
			case glyphtarget.PortOutput:
				outputs = append(outputs, Slot{ID: p.ID, Kind: glyphtarget.PortKindOutput, Index: len(outputs)})
			}
		}
	} else {
		for i := 0; i < g.NumInputs(); i++ {
			inputs = append(inputs, Slot{Kind: glyphtarget.PortKindInput, Index: i})
		}
		for i := 0; i < g.NumOutputs(); i++ {
			outputs = append(outputs, Slot{Kind: glyphtarget.PortKindOutput, Index: i})
		}
	}
	spread(inputs, 0, size.Height)
	spread(outputs, size.Width, size.Height)

	slots := make([]Slot, 0, len(inputs)+len(outputs))
	slots = append(slots, inputs...)
	slots = append(slots, outputs...)

	if g.Type == glyphtarget.TypeUMLClass {
		for i, attr := range g.Attributes {
			if attr.Type != glyphtarget.AttributeSelfDefined {
				continue
			}
			slots = append(slots, Slot{
				Kind:  glyphtarget.PortKindAttribute,
				Index: i,
				DX:    size.Width,
				DY:    ATTRIBUTE_START_Y + float64(i)*ATTRIBUTE_ROW_HEIGHT + ATTRIBUTE_ROW_CENTER,
			})
		}
	}
	return slots
}

func spread(slots []Slot, x, height float64) {
	n := float64(len(slots) + 1)
	for i := range slots {
		slots[i].DX = x
		slots[i].DY = height * (float64(i+1) / n)
	}
}

// Find resolves ref to one of the glyph's slots.
func Find(g *glyphtarget.Glyph, ref glyphtarget.PortRef, size glyphsize.Size) (Slot, bool) {
	slots := Slots(g, size)
	if ref.IsZero() {
		return Slot{}, false
	}
	if ref.IsByID() {
		for _, s := range slots {
			if s.ID == ref.ID {
				return s, true
			}
		}
		return Slot{}, false
	}

	// An explicit port may carry an id that looks like an index.
	raw := ref.String()
	for _, s := range slots {
		if s.ID != "" && s.ID == raw {
			return s, true
		}
	}

	if ref.Kind == glyphtarget.PortKindPositional {
		if ref.Index >= 0 && ref.Index < len(slots) {
			return slots[ref.Index], true
		}
		return Slot{}, false
	}
	for _, s := range slots {
		if s.Kind == ref.Kind && s.Index == ref.Index {
			return s, true
		}
	}
	return Slot{}, false
}

// Locate returns the canvas position of ref and whether it resolved. An
// unresolved reference locates at the glyph origin.
func Locate(g *glyphtarget.Glyph, ref glyphtarget.PortRef, size glyphsize.Size) (*geo.Point, bool) {
	s, ok := Find(g, ref, size)
	if !ok {
		return g.Origin(), false
	}
	return g.Origin().Add(s.DX, s.DY), true
}

// Absolute is Locate without the resolution flag.
func Absolute(g *glyphtarget.Glyph, ref glyphtarget.PortRef, size glyphsize.Size) *geo.Point {
	p, _ := Locate(g, ref, size)
	return p
}

// Normalize rewrites ref into the canonical form for g: by id for ports in
// an explicit list and by kind and index otherwise. References that do not
// resolve are returned unchanged.
func Normalize(g *glyphtarget.Glyph, ref glyphtarget.PortRef) glyphtarget.PortRef {
	s, ok := Find(g, ref, glyphsize.Size{})
	if !ok {
		return ref
	}
	return s.Ref()
}

// NormalizePage canonicalizes the port references of every connection on p
// in place and returns how many were rewritten.
func NormalizePage(p *glyphtarget.Page) int {
	n := 0
	for _, c := range p.Connections {
		if g := p.FindGlyph(c.FromGlyphID); g != nil {
			if ref := Normalize(g, c.FromPort); ref != c.FromPort {
				c.FromPort = ref
				n++
			}
		}
		if g := p.FindGlyph(c.ToGlyphID); g != nil {
			if ref := Normalize(g, c.ToPort); ref != c.ToPort {
				c.ToPort = ref
				n++
			}
		}
	}
	return n
}

// Legacy returns the positional reference older documents persisted for
// ref, the index into the combined slot list.
func Legacy(g *glyphtarget.Glyph, ref glyphtarget.PortRef) (glyphtarget.PortRef, bool) {
	s, ok := Find(g, ref, glyphsize.Size{})
	if !ok {
		return ref, false
	}
	for i, s2 := range Slots(g, glyphsize.Size{}) {
		if s2.Kind == s.Kind && s2.Index == s.Index {
			return glyphtarget.Positional(i), true
		}
	}
	return ref, false
}

// Label is a short human readable name for a slot.
func Label(s Slot) string {
	if s.ID != "" {
		return s.ID
	}
	return string(s.Kind) + " " + strconv.Itoa(s.Index)
}
