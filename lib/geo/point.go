package geo

import (
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Add returns p translated by (dx, dy).
func (p *Point) Add(dx, dy float64) *Point {
	return NewPoint(p.X+dx, p.Y+dy)
}

type Points []*Point

func (ps Points) Copy() Points {
	if ps == nil {
		return nil
	}
	out := make(Points, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Copy())
	}
	return out
}

// https://stackoverflow.com/questions/849211/shortest-distance-between-a-point-and-a-line-segment
func (p *Point) DistanceToLine(p1, p2 *Point) float64 {
	a := p.X - p1.X
	b := p.Y - p1.Y
	c := p2.X - p1.X
	d := p2.Y - p1.Y

	dot := (a * c) + (b * d)
	len_sq := (c * c) + (d * d)

	param := -1.0

	if len_sq != 0 {
		param = dot / len_sq
	}

	var xx float64
	var yy float64

	if param < 0.0 {
		xx = p1.X
		yy = p1.Y
	} else if param > 1.0 {
		xx = p2.X
		yy = p2.Y
	} else {
		xx = p1.X + (param * c)
		yy = p1.Y + (param * d)
	}

	dx := p.X - xx
	dy := p.Y - yy

	return math.Sqrt((dx * dx) + (dy * dy))
}

// Midpoint is the point halfway between a and b.
func (a *Point) Midpoint(b *Point) *Point {
	return NewPoint((a.X+b.X)/2, (a.Y+b.Y)/2)
}
