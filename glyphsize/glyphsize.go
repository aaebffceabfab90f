// Package glyphsize computes the rendered size of a glyph from its content.
package glyphsize

import (
	"unicode/utf8"

	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/geo"
)

const (
	MIN_WIDTH         = 60.
	MIN_DEFAULT_WIDTH = 100.
	MIN_HEIGHT        = 60.
	MIN_TEXT_HEIGHT   = 40.

	CHAR_WIDTH    = 10.
	LABEL_PADDING = 32.
	ROW_HEIGHT    = 18.
	BASE_HEIGHT   = 60.

	// Text glyphs measure each rune as this fraction of the font size.
	TEXT_CHAR_RATIO = 0.6

	RESIZABLE_WIDTH  = 120.
	RESIZABLE_HEIGHT = 80.
)

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Resolve returns the size a glyph renders at. A positive explicit width or
// height always wins for that dimension.
func Resolve(g *glyphtarget.Glyph) Size {
	s := computed(g)
	if g.Width > 0 {
		s.Width = g.Width
	}
	if g.Height > 0 {
		s.Height = g.Height
	}
	return s
}

func computed(g *glyphtarget.Glyph) Size {
	runes := float64(utf8.RuneCountInString(g.Label))
	switch g.Type {
	case glyphtarget.TypeText:
		fs := g.FontSize()
		return Size{
			Width:  go2.Max(MIN_WIDTH, runes*(fs*TEXT_CHAR_RATIO)+LABEL_PADDING),
			Height: go2.Max(fs*2, MIN_TEXT_HEIGHT),
		}
	case glyphtarget.TypeResizableRectangle:
		return Size{Width: RESIZABLE_WIDTH, Height: RESIZABLE_HEIGHT}
	case glyphtarget.TypeUMLClass:
		rows := len(g.Attributes) + len(g.Methods)
		return Size{
			Width:  labelWidth(runes),
			Height: rowsHeight(rows),
		}
	default:
		return Size{
			Width:  labelWidth(runes),
			Height: rowsHeight(len(g.Attributes)),
		}
	}
}

func labelWidth(runes float64) float64 {
	return go2.Max(go2.Max(MIN_WIDTH, runes*CHAR_WIDTH+LABEL_PADDING), MIN_DEFAULT_WIDTH)
}

func rowsHeight(rows int) float64 {
	return go2.Max(float64(rows)*ROW_HEIGHT+BASE_HEIGHT, MIN_HEIGHT)
}

// Box is the glyph's bounding box on the canvas.
func Box(g *glyphtarget.Glyph) *geo.Box {
	s := Resolve(g)
	return geo.NewBox(g.Origin(), s.Width, s.Height)
}
