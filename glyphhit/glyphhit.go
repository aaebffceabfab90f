// Package glyphhit finds what lies under a point of a laid out page.
package glyphhit

import (
	"math"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphorder"
	"oss.terrastruct.com/glyphs/glyphport"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/geo"
)

const (
	PORT_RADIUS   = 7.
	// HANDLE_RADIUS is the half side of the square grabbed around a corner.
	HANDLE_RADIUS = 6.
	// STROKE_SLOP widens a connection's stroke on both sides.
	STROKE_SLOP = 4.
)

type Kind string

const (
	KindPort       Kind = "port"
	KindHandle     Kind = "handle"
	KindGlyph      Kind = "glyph"
	KindConnection Kind = "connection"
)

type Opts struct {
	PortRadius   float64
	HandleRadius float64
	StrokeSlop   float64
}

func (o *Opts) portRadius() float64 {
	if o == nil || o.PortRadius <= 0 {
		return PORT_RADIUS
	}
	return o.PortRadius
}

func (o *Opts) handleRadius() float64 {
	if o == nil || o.HandleRadius <= 0 {
		return HANDLE_RADIUS
	}
	return o.HandleRadius
}

func (o *Opts) strokeSlop() float64 {
	if o == nil || o.StrokeSlop < 0 {
		return STROKE_SLOP
	}
	return o.StrokeSlop
}

type Hit struct {
	Kind         Kind   `json:"kind"`
	GlyphID      string `json:"glyphId,omitempty"`
	ConnectionID string `json:"connectionId,omitempty"`
	// Port is set for port hits.
	Port *glyphport.Slot `json:"port,omitempty"`
	// Corner indexes geo.Box.Corners for handle hits.
	Corner int `json:"corner,omitempty"`
}

// Test returns the topmost item under pt, or nil.
func Test(d *glyphlayout.Diagram, pt *geo.Point, opts *Opts) *Hit {
	for i := len(d.Order) - 1; i >= 0; i-- {
		it := d.Order[i]
		switch it.Kind {
		case glyphorder.KindGlyph:
			if h := testShape(d.Shapes[it.Index], pt, opts); h != nil {
				return h
			}
		case glyphorder.KindConnection:
			if h := testRoute(d.RouteAt(it.Index), pt, opts); h != nil {
				return h
			}
		}
	}
	return nil
}

func testShape(s *glyphlayout.Shape, pt *geo.Point, opts *Opts) *Hit {
	pr := opts.portRadius()
	for _, p := range s.Ports {
		if within(p.At, pt, pr) {
			slot := p.Slot
			return &Hit{Kind: KindPort, GlyphID: s.ID, Port: &slot}
		}
	}
	if s.Type == glyphtarget.TypeResizableRectangle {
		hr := opts.handleRadius()
		for i, c := range s.Box.Corners() {
			if withinSquare(c, pt, hr) {
				return &Hit{Kind: KindHandle, GlyphID: s.ID, Corner: i}
			}
		}
	}
	if s.Box.Contains(pt) {
		return &Hit{Kind: KindGlyph, GlyphID: s.ID}
	}
	return nil
}

func testRoute(r *glyphlayout.Route, pt *geo.Point, opts *Opts) *Hit {
	if r == nil {
		return nil
	}
	tol := r.Connection.View.StrokeWidth()/2 + opts.strokeSlop()
	if r.Polyline.DistanceTo(pt) <= tol {
		return &Hit{Kind: KindConnection, ConnectionID: r.ID}
	}
	return nil
}

func within(center, pt *geo.Point, r float64) bool {
	return geo.EuclideanDistance(center.X, center.Y, pt.X, pt.Y) <= r
}

// withinSquare reports whether pt lies in the square of half side r
// centered on center.
func withinSquare(center, pt *geo.Point, r float64) bool {
	return math.Abs(pt.X-center.X) <= r && math.Abs(pt.Y-center.Y) <= r
}
