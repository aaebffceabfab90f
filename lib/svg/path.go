package svg

import (
	"math"
	"strconv"
	"strings"

	"oss.terrastruct.com/glyphs/lib/geo"
)

// PathBuilder accumulates absolute SVG path commands.
type PathBuilder struct {
	commands []string
	current  *geo.Point
}

// chopPrecision keeps serialized coordinates stable across float noise.
func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// Number formats f the way path data and attributes expect it.
func Number(f float64) string {
	f = chopPrecision(f)
	if f == 0 {
		// Avoid "-0".
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (b *PathBuilder) emit(op string, pts ...*geo.Point) {
	parts := make([]string, 0, 1+2*len(pts))
	parts = append(parts, op)
	for _, p := range pts {
		parts = append(parts, Number(p.X), Number(p.Y))
	}
	b.commands = append(b.commands, strings.Join(parts, " "))
	b.current = pts[len(pts)-1].Copy()
}

func (b *PathBuilder) MoveTo(p *geo.Point) {
	b.emit("M", p)
}

func (b *PathBuilder) LineTo(p *geo.Point) {
	if b.current == nil {
		b.MoveTo(p)
		return
	}
	b.emit("L", p)
}

func (b *PathBuilder) CurveTo(c1, c2, end *geo.Point) {
	if b.current == nil {
		b.MoveTo(c1)
	}
	b.emit("C", c1, c2, end)
}

// Current is the pen position, nil before the first command.
func (b *PathBuilder) Current() *geo.Point {
	return b.current
}

func (b *PathBuilder) PathData() string {
	return strings.Join(b.commands, " ")
}
