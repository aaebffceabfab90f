// Package glyphpath builds the path a connection is drawn along.
package glyphpath

import (
	"math"

	"oss.terrastruct.com/glyphs/lib/geo"
	"oss.terrastruct.com/glyphs/lib/svg"
)

type Style string

const (
	Line      Style = "line"
	Manhattan Style = "manhattan"
	Bezier    Style = "bezier"

	DefaultStyle = Bezier
)

// BEZIER_PULL is the fraction of the horizontal distance each control point
// sits from its endpoint.
const BEZIER_PULL = 0.3

const DEFAULT_SEGMENTS = 16

var Styles = []Style{Line, Manhattan, Bezier}

func ParseStyle(s string) (Style, bool) {
	for _, st := range Styles {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// StyleOr parses s, returning fallback when s is empty or unknown.
func StyleOr(s string, fallback Style) Style {
	if st, ok := ParseStyle(s); ok {
		return st
	}
	return fallback
}

type Op string

const (
	OpMove  Op = "M"
	OpLine  Op = "L"
	OpCurve Op = "C"
)

// Command is one path instruction. A move or line has one point, a curve
// has two control points followed by its end point.
type Command struct {
	Op     Op           `json:"op"`
	Points []*geo.Point `json:"points"`
}

func (c Command) End() *geo.Point {
	return c.Points[len(c.Points)-1]
}

type Path []Command

// Build returns the path from one port to another. Waypoints, when present,
// override the style with straight segments through each of them in order.
func Build(from, to *geo.Point, style Style, waypoints []*geo.Point) Path {
	from = from.Copy()
	to = to.Copy()
	p := Path{{Op: OpMove, Points: []*geo.Point{from}}}

	if len(waypoints) > 0 {
		for _, w := range waypoints {
			p = append(p, lineTo(w.X, w.Y))
		}
		return append(p, lineTo(to.X, to.Y))
	}

	switch style {
	case Line:
		return append(p, lineTo(to.X, to.Y))
	case Manhattan:
		dx := math.Abs(to.X - from.X)
		dy := math.Abs(to.Y - from.Y)
		if dx > dy {
			mx := (from.X + to.X) / 2
			return append(p,
				lineTo(mx, from.Y),
				lineTo(mx, to.Y),
				lineTo(to.X, to.Y),
			)
		}
		my := (from.Y + to.Y) / 2
		return append(p,
			lineTo(from.X, my),
			lineTo(to.X, my),
			lineTo(to.X, to.Y),
		)
	default:
		pull := (to.X - from.X) * BEZIER_PULL
		return append(p, Command{
			Op: OpCurve,
			Points: []*geo.Point{
				geo.NewPoint(from.X+pull, from.Y),
				geo.NewPoint(to.X-pull, to.Y),
				to,
			},
		})
	}
}

func lineTo(x, y float64) Command {
	return Command{Op: OpLine, Points: []*geo.Point{geo.NewPoint(x, y)}}
}

func (p Path) Start() *geo.Point {
	if len(p) == 0 {
		return nil
	}
	return p[0].Points[0]
}

func (p Path) End() *geo.Point {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1].End()
}

// String renders p as SVG path data.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	pb := &svg.PathBuilder{}
	for _, c := range p {
		switch c.Op {
		case OpMove:
			pb.MoveTo(c.Points[0])
		case OpLine:
			pb.LineTo(c.Points[0])
		case OpCurve:
			pb.CurveTo(c.Points[0], c.Points[1], c.Points[2])
		}
	}
	return pb.PathData()
}

// Route flattens p into a polyline, sampling each curve with n segments.
func (p Path) Route(n int) geo.Route {
	if n < 1 {
		n = DEFAULT_SEGMENTS
	}
	var route geo.Route
	for _, c := range p {
		switch c.Op {
		case OpMove, OpLine:
			route = append(route, c.Points[0].Copy())
		case OpCurve:
			if len(route) == 0 {
				continue
			}
			start := route[len(route)-1]
			curve := geo.NewBezierCurve([]*geo.Point{start, c.Points[0], c.Points[1], c.Points[2]})
			route = append(route, curve.Flatten(n)[1:]...)
		}
	}
	return route
}

// Midpoint is the point halfway between the path's endpoints.
func (p Path) Midpoint() *geo.Point {
	if len(p) == 0 {
		return nil
	}
	return p.Start().Midpoint(p.End())
}
