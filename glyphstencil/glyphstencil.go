// Package glyphstencil is the palette new glyphs are created from.
package glyphstencil

import (
	"github.com/google/uuid"

	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/glyphs/glyphtarget"
)

// Glyph types missing from the palette get one port on each side.
const (
	DEFAULT_INPUTS  = 1
	DEFAULT_OUTPUTS = 1
)

type Entry struct {
	Type    string  `json:"type"`
	Label   string  `json:"label"`
	Inputs  int     `json:"inputs"`
	Outputs int     `json:"outputs"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

func (e Entry) Description() string {
	if d, ok := descriptions[e.Type]; ok {
		return d
	}
	if e.Label != "" {
		return e.Label
	}
	return "Glyph"
}

type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

var byType map[string]Entry

func init() {
	byType = make(map[string]Entry)
	for _, c := range catalog {
		for _, e := range c.Entries {
			if _, ok := byType[e.Type]; !ok {
				byType[e.Type] = e
			}
		}
	}
}

func Lookup(glyphType string) (Entry, bool) {
	e, ok := byType[glyphType]
	return e, ok
}

func Categories() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.Name
	}
	return names
}

// Entries returns the entries of one category, or nil when it does not exist.
func Entries(category string) []Entry {
	for _, c := range catalog {
		if c.Name == category {
			return append([]Entry(nil), c.Entries...)
		}
	}
	return nil
}

func All() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		out[i] = Category{Name: c.Name, Entries: append([]Entry(nil), c.Entries...)}
	}
	return out
}

func NewGlyphID() string {
	return "glyph-" + uuid.NewString()
}

func NewGroupID() string {
	return "group-" + uuid.NewString()
}

func NewConnectionID() string {
	return uuid.NewString()
}

// Instantiate creates a glyph of the given type at (x, y) with the port
// counts and size of its palette entry.
func Instantiate(glyphType string, x, y float64) *glyphtarget.Glyph {
	e, ok := Lookup(glyphType)
	if !ok {
		e = Entry{Type: glyphType, Inputs: DEFAULT_INPUTS, Outputs: DEFAULT_OUTPUTS}
	}
	g := &glyphtarget.Glyph{
		ID:      NewGlyphID(),
		Type:    glyphType,
		X:       x,
		Y:       y,
		Inputs:  go2.Pointer(e.Inputs),
		Outputs: go2.Pointer(e.Outputs),
	}
	if glyphType == glyphtarget.TypeResizableRectangle {
		g.Width = e.Width
		g.Height = e.Height
	}
	return g
}
