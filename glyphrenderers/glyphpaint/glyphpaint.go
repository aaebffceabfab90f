// Package glyphpaint holds the colors and outlines shared by the renderers.
package glyphpaint

import (
	"strings"

	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/color"
)

const (
	CORNER_RADIUS     = 8.
	PORT_RADIUS       = 7.
	PORT_STROKE_WIDTH = 2.
	SHAPE_STROKE      = 2.

	LABEL_FONT_SIZE = 13.
	// ATTRIBUTE_FONT_SIZE is used for UML attribute and method rows.
	ATTRIBUTE_FONT_SIZE = 12.

	DASH_ARRAY = "5,5"
)

type Outline int

const (
	OutlineRect Outline = iota
	OutlineEllipse
	OutlineDiamond
)

func OutlineOf(glyphType string) Outline {
	switch {
	case glyphType == "circle",
		glyphType == "flow-connector",
		glyphType == "flow-on-page-connector",
		strings.HasPrefix(glyphType, "network-") && strings.Contains(glyphType, "cloud"):
		return OutlineEllipse
	case strings.HasPrefix(glyphType, "flow-decision"):
		return OutlineDiamond
	default:
		return OutlineRect
	}
}

var typeFills = map[string]string{
	"flow-start":              "#bbf7d0",
	"flow-end":                "#fca5a5",
	"flow-process":            "#e0e7ef",
	"flow-io":                 "#bae6fd",
	"flow-decision":           "#fef9c3",
	"flow-decision-alt":       "#fef9c3",
	"flow-document":           "#e0e7ef",
	"flow-multi-document":     "#f3f4f6",
	"flow-subroutine":         "#ddd6fe",
	"flow-delay":              "#fcd34d",
	"flow-predefined-process": "#c7d2fe",
	"flow-data":               "#6ee7b7",
	"flow-connector":          "#a5b4fc",
	"flow-off-page-connector": "#fbbf24",
	"flow-card":               "#fbbf24",
	"flow-merge":              "#fbbf24",
	"flow-extract":            "#fbbf24",
	"flow-sorted-data":        "#fca5a5",
	"flow-display":            "#fef08a",
	"flow-collate":            "#f3f4f6",
	"flow-manual-input":       "#fbcfe8",
	"flow-manual-operation":   "#fcd34d",
	"flow-summarize":          "#a7f3d0",
	"flow-split":              "#bae6fd",
	"flow-preparation":        "#f9fafb",
	"flow-database":           "#fef9c3",
	"flow-manual-loop":        "#fef9c3",
	"flow-loop-limit":         "#bae6fd",
	"debug":                   "#ffe066",
	glyphtarget.TypeText:      "none",
}

// Fill is the glyph's fill color: its data fill (or older data color) when
// valid, then the type's color, then white. Text glyphs have no fill.
func Fill(g *glyphtarget.Glyph) string {
	for _, key := range []string{"fill", "color"} {
		if c := g.DataString(key); color.Valid(c) {
			return c
		}
	}
	if c, ok := typeFills[g.Type]; ok {
		return c
	}
	return color.GlyphFill
}

// Stroke is the glyph's data stroke when valid, otherwise a darker shade of
// fill. White and invalid fills get the default outline color and an
// unfilled glyph gets no outline.
func Stroke(g *glyphtarget.Glyph, fill string) string {
	if c := g.DataString("stroke"); color.Valid(c) {
		return c
	}
	if fill == "none" {
		return "none"
	}
	if fill == color.GlyphFill {
		return color.GlyphStroke
	}
	d, err := color.Darken(fill)
	if err != nil {
		return color.GlyphStroke
	}
	return d
}

// TextColor is the glyph's data text color when valid, otherwise a color
// readable on fill.
func TextColor(g *glyphtarget.Glyph, fill string) string {
	if c := g.DataString("textColor"); color.Valid(c) {
		return c
	}
	if !color.Valid(fill) {
		return color.Text
	}
	return color.TextOn(fill)
}

// ConnectionColor resolves a connection's stroke color. Black and invalid
// colors fall back to the default connection color.
func ConnectionColor(v *glyphtarget.View) string {
	if v == nil {
		return color.ConnectionLine
	}
	c := strings.TrimSpace(v.Color)
	switch strings.ToLower(c) {
	case "black", "#000", "#000000":
		return color.ConnectionLine
	}
	return color.Or(c, color.ConnectionLine)
}

// DashArray is empty for solid connections.
func DashArray(v *glyphtarget.View) string {
	if v != nil && v.Dashed {
		return DASH_ARRAY
	}
	return ""
}

// Rows is the text of a UML class's attribute and method rows, in order.
func Rows(g *glyphtarget.Glyph) []string {
	if g.Type != glyphtarget.TypeUMLClass {
		return nil
	}
	rows := make([]string, 0, len(g.Attributes)+len(g.Methods))
	for _, a := range g.Attributes {
		rows = append(rows, a.Signature())
	}
	for _, m := range g.Methods {
		rows = append(rows, m.Signature())
	}
	return rows
}
