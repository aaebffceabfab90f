package geo

import (
	"math"
)

type Route []*Point

func (route Route) Length() float64 {
	l := 0.
	for i := 0; i < len(route)-1; i++ {
		l += EuclideanDistance(
			route[i].X, route[i].Y,
			route[i+1].X, route[i+1].Y,
		)
	}
	return l
}

// DistanceTo returns the shortest distance from p to any segment of the route.
// A single point route measures the distance to that point.
func (route Route) DistanceTo(p *Point) float64 {
	switch len(route) {
	case 0:
		return math.Inf(1)
	case 1:
		return EuclideanDistance(p.X, p.Y, route[0].X, route[0].Y)
	}
	d := math.Inf(1)
	for i := 0; i < len(route)-1; i++ {
		d = math.Min(d, p.DistanceToLine(route[i], route[i+1]))
	}
	return d
}

func (route Route) GetBoundingBox() (tl, br *Point) {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, p := range route {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return NewPoint(minX, minY), NewPoint(maxX, maxY)
}
