// Package glyphlayout runs one render pass over a page: it sizes every glyph,
// places its ports, routes every live connection and orders the result for
// painting.
package glyphlayout

import (
	"context"
	"unicode/utf8"

	"cdr.dev/slog"

	"oss.terrastruct.com/glyphs/glyphorder"
	"oss.terrastruct.com/glyphs/glyphpath"
	"oss.terrastruct.com/glyphs/glyphport"
	"oss.terrastruct.com/glyphs/glyphsize"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/geo"
	"oss.terrastruct.com/glyphs/lib/log"
)

const (
	LABEL_CHAR_WIDTH = 8.
	LABEL_HEIGHT     = 20.
)

type Opts struct {
	// DefaultStyle routes connections that do not set a style.
	DefaultStyle glyphpath.Style
	// CurveSegments is how finely curves are flattened for hit-testing and
	// raster output.
	CurveSegments int
}

func (o *Opts) style() glyphpath.Style {
	if o == nil {
		return glyphpath.DefaultStyle
	}
	return glyphpath.StyleOr(string(o.DefaultStyle), glyphpath.DefaultStyle)
}

func (o *Opts) segments() int {
	if o == nil || o.CurveSegments < 1 {
		return glyphpath.DEFAULT_SEGMENTS
	}
	return o.CurveSegments
}

type Port struct {
	glyphport.Slot
	At *geo.Point `json:"at"`
}

type Shape struct {
	Glyph *glyphtarget.Glyph `json:"-"`
	ID    string             `json:"id"`
	Type  string             `json:"type"`
	Box   *geo.Box           `json:"box"`
	Ports []Port             `json:"ports"`
}

type Route struct {
	Connection *glyphtarget.Connection `json:"-"`
	ID         string                  `json:"id"`
	Src        *geo.Point              `json:"src"`
	Dst        *geo.Point              `json:"dst"`
	// SrcStub and DstStub are set when a port reference did not resolve and
	// the endpoint fell back to the glyph origin.
	SrcStub bool            `json:"srcStub,omitempty"`
	DstStub bool            `json:"dstStub,omitempty"`
	Style   glyphpath.Style `json:"style"`
	Path    glyphpath.Path  `json:"-"`
	// D is Path as SVG path data.
	D string `json:"d"`
	// Polyline is Path flattened.
	Polyline geo.Route `json:"-"`
	LabelBox *geo.Box  `json:"labelBox,omitempty"`
}

type Diagram struct {
	PageID string   `json:"pageId"`
	Shapes []*Shape `json:"shapes"`
	Routes []*Route `json:"routes"`

	Order []glyphorder.Item `json:"order"`

	shapes map[string]*Shape
	// routes is keyed by the connection's index on the page.
	routes map[int]*Route
}

// Layout computes the geometry of every glyph and live connection on p.
// Connections with a missing endpoint are left out.
func Layout(ctx context.Context, p *glyphtarget.Page, opts *Opts) *Diagram {
	d := &Diagram{
		PageID: p.ID,
		Shapes: make([]*Shape, 0, len(p.Glyphs)),
		Routes: make([]*Route, 0, len(p.Connections)),
		shapes: make(map[string]*Shape, len(p.Glyphs)),
		routes: make(map[int]*Route, len(p.Connections)),
	}

	sizes := make(map[string]glyphsize.Size, len(p.Glyphs))
	for _, g := range p.Glyphs {
		size := glyphsize.Resolve(g)
		sizes[g.ID] = size
		s := &Shape{
			Glyph: g,
			ID:    g.ID,
			Type:  g.Type,
			Box:   geo.NewBox(g.Origin(), size.Width, size.Height),
		}
		for _, slot := range glyphport.Slots(g, size) {
			s.Ports = append(s.Ports, Port{
				Slot: slot,
				At:   g.Origin().Add(slot.DX, slot.DY),
			})
		}
		d.Shapes = append(d.Shapes, s)
		if _, ok := d.shapes[g.ID]; !ok {
			d.shapes[g.ID] = s
		}
	}

	for i, c := range p.Connections {
		from := d.Shape(c.FromGlyphID)
		to := d.Shape(c.ToGlyphID)
		if from == nil || to == nil {
			log.Debug(ctx, "skipping dangling connection",
				slog.F("connection", c.ID),
				slog.F("from", c.FromGlyphID),
				slog.F("to", c.ToGlyphID),
			)
			continue
		}
		src, srcOK := glyphport.Locate(from.Glyph, c.FromPort, sizes[from.ID])
		dst, dstOK := glyphport.Locate(to.Glyph, c.ToPort, sizes[to.ID])
		if !srcOK || !dstOK {
			log.Debug(ctx, "connection port did not resolve, drawing a stub",
				slog.F("connection", c.ID),
				slog.F("fromPort", c.FromPort.String()),
				slog.F("toPort", c.ToPort.String()),
			)
		}

		style := glyphpath.StyleOr(c.Style(), opts.style())
		path := glyphpath.Build(src, dst, style, c.Points)
		r := &Route{
			Connection: c,
			ID:         c.ID,
			Src:        src,
			Dst:        dst,
			SrcStub:    !srcOK,
			DstStub:    !dstOK,
			Style:      style,
			Path:       path,
			D:          path.String(),
			Polyline:   path.Route(opts.segments()),
			LabelBox:   LabelBox(c.Label, src, dst),
		}
		d.Routes = append(d.Routes, r)
		d.routes[i] = r
	}

	d.Order = glyphorder.Page(p)
	return d
}

// LabelBox is the background box of a connection label, centered between
// the endpoints. It is nil for an empty label.
func LabelBox(label string, src, dst *geo.Point) *geo.Box {
	if label == "" {
		return nil
	}
	mid := src.Midpoint(dst)
	w := float64(utf8.RuneCountInString(label)) * LABEL_CHAR_WIDTH
	return geo.NewBox(geo.NewPoint(mid.X-w/2, mid.Y-LABEL_HEIGHT/2), w, LABEL_HEIGHT)
}

func (d *Diagram) Shape(id string) *Shape {
	return d.shapes[id]
}

// RouteAt returns the route of the connection at index i on the page.
func (d *Diagram) RouteAt(i int) *Route {
	return d.routes[i]
}

func (d *Diagram) Route(connectionID string) *Route {
	for _, r := range d.Routes {
		if r.ID == connectionID {
			return r
		}
	}
	return nil
}

// BoundingBox covers every glyph box, route point and label box. It is nil
// for an empty page.
func (d *Diagram) BoundingBox() *geo.Box {
	var bb *geo.Box
	for _, s := range d.Shapes {
		bb = bb.Union(s.Box)
	}
	for _, r := range d.Routes {
		if len(r.Polyline) > 0 {
			tl, br := r.Polyline.GetBoundingBox()
			bb = bb.Union(geo.NewBox(tl, br.X-tl.X, br.Y-tl.Y))
		}
		bb = bb.Union(r.LabelBox)
	}
	return bb
}
