// Package glyphsvg renders a laid out page as a standalone SVG document.
package glyphsvg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphorder"
	"oss.terrastruct.com/glyphs/glyphport"
	"oss.terrastruct.com/glyphs/glyphrenderers/glyphpaint"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/color"
	"oss.terrastruct.com/glyphs/lib/geo"
	"oss.terrastruct.com/glyphs/lib/svg"
)

const (
	DEFAULT_PADDING = 40

	LABEL_FONT_SIZE = 14.
	FONT_FAMILY     = "Helvetica, Arial, sans-serif"
)

type RenderOpts struct {
	Pad *int64
	// Background fills the canvas. Empty means white and "none" leaves it
	// transparent.
	Background string
	// NoXMLTag omits the XML declaration so the output can be inlined.
	NoXMLTag bool
}

// Dimensions is the padded canvas of d.
func Dimensions(d *glyphlayout.Diagram, pad int) (left, top, width, height float64) {
	bb := d.BoundingBox()
	if bb == nil {
		bb = geo.NewBox(geo.NewPoint(0, 0), 0, 0)
	}
	p := float64(pad)
	left = math.Floor(bb.TopLeft.X - p)
	top = math.Floor(bb.TopLeft.Y - p)
	width = math.Ceil(bb.TopLeft.X+bb.Width+p) - left
	height = math.Ceil(bb.TopLeft.Y+bb.Height+p) - top
	return left, top, width, height
}

func Render(d *glyphlayout.Diagram, opts *RenderOpts) ([]byte, error) {
	if d == nil {
		return nil, errors.New("nothing to render")
	}
	pad := DEFAULT_PADDING
	if opts == nil {
		opts = &RenderOpts{}
	}
	if opts.Pad != nil {
		pad = int(*opts.Pad)
	}

	buf := &bytes.Buffer{}
	left, top, width, height := Dimensions(d, pad)
	if !opts.NoXMLTag {
		fmt.Fprint(buf, `<?xml version="1.0" encoding="utf-8"?>`+"\n")
	}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" data-page="%s" viewBox="%s %s %s %s" width="%s" height="%s" font-family="%s">`,
		svg.EscapeText(d.PageID), num(left), num(top), num(width), num(height), num(width), num(height), FONT_FAMILY)
	buf.WriteByte('\n')

	if bg := background(opts.Background); bg != "none" {
		fmt.Fprintf(buf, `<rect class="background" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(left), num(top), num(width), num(height), bg)
		buf.WriteByte('\n')
	}

	for _, it := range d.Order {
		switch it.Kind {
		case glyphorder.KindGlyph:
			drawShape(buf, d.Shapes[it.Index])
		case glyphorder.KindConnection:
			if r := d.RouteAt(it.Index); r != nil {
				drawRoute(buf, r)
			}
		}
	}

	fmt.Fprint(buf, "</svg>\n")
	return buf.Bytes(), nil
}

func background(c string) string {
	if c == "none" {
		return c
	}
	return color.Or(c, color.Background)
}

func drawShape(w io.Writer, s *glyphlayout.Shape) {
	g := s.Glyph
	b := s.Box
	fill := glyphpaint.Fill(g)
	stroke := glyphpaint.Stroke(g, fill)

	fmt.Fprintf(w, `<g class="glyph" id="%s" data-type="%s">`, "glyph-"+svg.EscapeText(s.ID), svg.EscapeText(s.Type))
	if fill != "none" {
		fmt.Fprint(w, outline(b, glyphpaint.OutlineOf(s.Type), fill, stroke))
	}

	textFill := glyphpaint.TextColor(g, fill)
	rows := glyphpaint.Rows(g)
	switch {
	case g.Type == glyphtarget.TypeText:
		c := b.Center()
		fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			num(c.X), num(c.Y), textFill, num(g.FontSize()), svg.EscapeText(g.Label))
	case g.Type == glyphtarget.TypeUMLClass:
		nameY := b.TopLeft.Y + glyphport.ATTRIBUTE_START_Y/2
		fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" font-size="%s" font-weight="bold" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			num(b.Center().X), num(nameY), textFill, num(LABEL_FONT_SIZE), svg.EscapeText(g.Label))
		sepY := b.TopLeft.Y + glyphport.ATTRIBUTE_START_Y
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
			num(b.TopLeft.X), num(sepY), num(b.TopLeft.X+b.Width), num(sepY), stroke)
		for i, row := range rows {
			y := sepY + float64(i)*glyphport.ATTRIBUTE_ROW_HEIGHT + glyphport.ATTRIBUTE_ROW_CENTER
			fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" font-size="%s" dominant-baseline="middle">%s</text>`,
				num(b.TopLeft.X+8), num(y), textFill, num(glyphpaint.ATTRIBUTE_FONT_SIZE), svg.EscapeText(row))
		}
	case g.Label != "":
		c := b.Center()
		fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			num(c.X), num(c.Y), textFill, num(LABEL_FONT_SIZE), svg.EscapeText(g.Label))
	}

	for _, p := range s.Ports {
		fmt.Fprintf(w, `<circle class="port %s" data-port="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`,
			p.Kind, svg.EscapeText(p.Ref().String()), num(p.At.X), num(p.At.Y),
			num(glyphpaint.PORT_RADIUS), color.Port, color.GlyphStroke, num(glyphpaint.PORT_STROKE_WIDTH))
	}
	fmt.Fprint(w, "</g>\n")
}

func outline(b *geo.Box, o glyphpaint.Outline, fill, stroke string) string {
	style := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%s"`, fill, stroke, num(glyphpaint.SHAPE_STROKE))
	switch o {
	case glyphpaint.OutlineEllipse:
		c := b.Center()
		return fmt.Sprintf(`<ellipse class="shape" cx="%s" cy="%s" rx="%s" ry="%s" %s/>`,
			num(c.X), num(c.Y), num(b.Width/2), num(b.Height/2), style)
	case glyphpaint.OutlineDiamond:
		c := b.Center()
		pts := []*geo.Point{
			geo.NewPoint(c.X, b.TopLeft.Y),
			geo.NewPoint(b.TopLeft.X+b.Width, c.Y),
			geo.NewPoint(c.X, b.TopLeft.Y+b.Height),
			geo.NewPoint(b.TopLeft.X, c.Y),
		}
		strs := make([]string, 0, len(pts))
		for _, p := range pts {
			strs = append(strs, num(p.X)+","+num(p.Y))
		}
		return fmt.Sprintf(`<polygon class="shape" points="%s" %s/>`, strings.Join(strs, " "), style)
	default:
		return fmt.Sprintf(`<rect class="shape" x="%s" y="%s" width="%s" height="%s" rx="%s" %s/>`,
			num(b.TopLeft.X), num(b.TopLeft.Y), num(b.Width), num(b.Height), num(glyphpaint.CORNER_RADIUS), style)
	}
}

func drawRoute(w io.Writer, r *glyphlayout.Route) {
	v := r.Connection.View
	fmt.Fprintf(w, `<g class="connection" id="%s" data-style="%s">`, "connection-"+svg.EscapeText(r.ID), r.Style)

	dash := ""
	if da := glyphpaint.DashArray(v); da != "" {
		dash = fmt.Sprintf(` stroke-dasharray="%s"`, da)
	}
	fmt.Fprintf(w, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`,
		r.D, glyphpaint.ConnectionColor(v), num(v.StrokeWidth()), dash)

	if lb := r.LabelBox; lb != nil {
		c := lb.Center()
		fmt.Fprintf(w, `<rect class="label" x="%s" y="%s" width="%s" height="%s" fill="#fff"/>`,
			num(lb.TopLeft.X), num(lb.TopLeft.Y), num(lb.Width), num(lb.Height))
		fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" font-size="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`,
			num(c.X), num(c.Y), color.ConnectionLabel, num(glyphpaint.LABEL_FONT_SIZE), svg.EscapeText(r.Connection.Label))
	}
	fmt.Fprint(w, "</g>\n")
}

func num(f float64) string {
	return svg.Number(f)
}
