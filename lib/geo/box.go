package geo

import (
	"math"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

// Corners returns the corners clockwise starting at the top left.
func (b *Box) Corners() [4]*Point {
	tl := b.TopLeft
	return [4]*Point{
		tl.Copy(),
		NewPoint(tl.X+b.Width, tl.Y),
		NewPoint(tl.X+b.Width, tl.Y+b.Height),
		NewPoint(tl.X, tl.Y+b.Height),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b *Box) Contains(p *Point) bool {
	if b == nil || p == nil {
		return false
	}
	return p.X >= b.TopLeft.X && p.X <= b.TopLeft.X+b.Width &&
		p.Y >= b.TopLeft.Y && p.Y <= b.TopLeft.Y+b.Height
}

// Union returns the smallest box containing both a and b. Either may be nil.
func (a *Box) Union(b *Box) *Box {
	if a == nil {
		return b.Copy()
	}
	if b == nil {
		return a.Copy()
	}
	minX := math.Min(a.TopLeft.X, b.TopLeft.X)
	minY := math.Min(a.TopLeft.Y, b.TopLeft.Y)
	maxX := math.Max(a.TopLeft.X+a.Width, b.TopLeft.X+b.Width)
	maxY := math.Max(a.TopLeft.Y+a.Height, b.TopLeft.Y+b.Height)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}
