// Package glyphoracle edits documents without mutating them.
//
// Every function takes a page or document and returns a new one. Only the
// slices and glyphs an edit touches are copied; everything else is shared
// with the input, which must be treated as read-only.
package glyphoracle

import (
	"errors"
	"fmt"
	"math"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/glyphs/glyphport"
	"oss.terrastruct.com/glyphs/glyphsize"
	"oss.terrastruct.com/glyphs/glyphstencil"
	"oss.terrastruct.com/glyphs/glyphtarget"
)

var (
	ErrGlyphNotFound      = errors.New("glyph not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrPageNotFound       = errors.New("page not found")
	ErrDuplicateID        = errors.New("duplicate id")
	ErrInvalidConnection  = errors.New("invalid connection")
)

const (
	ARRANGE_ORIGIN = 60.
	ARRANGE_PITCH  = 80.

	MIN_RESIZE = 1.
)

func AddGlyph(p *glyphtarget.Page, g *glyphtarget.Glyph) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to add glyph %#v", g.ID)

	g = g.Copy()
	if g.ID == "" {
		g.ID = glyphstencil.NewGlyphID()
	}
	if p.FindGlyph(g.ID) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
	}
	p = p.Copy()
	p.Glyphs = append(p.Glyphs, g)
	return p, nil
}

// MoveGlyph moves a glyph to (x, y). Every other member of its group moves
// by the same delta.
func MoveGlyph(p *glyphtarget.Page, id string, x, y float64) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to move glyph %#v", id)

	g := p.FindGlyph(id)
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, id)
	}
	dx := x - g.X
	dy := y - g.Y

	p = p.Copy()
	for i, g2 := range p.Glyphs {
		if g2.ID == id || (g.GroupID != "" && g2.GroupID == g.GroupID) {
			g2 = g2.Copy()
			g2.X += dx
			g2.Y += dy
			p.Glyphs[i] = g2
		}
	}
	return p, nil
}

// ResizeGlyph stores an explicit size on the glyph.
func ResizeGlyph(p *glyphtarget.Page, id string, width, height float64) (*glyphtarget.Page, error) {
	return UpdateGlyph(p, id, func(g *glyphtarget.Glyph) {
		g.Width = math.Max(width, MIN_RESIZE)
		g.Height = math.Max(height, MIN_RESIZE)
	})
}

// UpdateGlyph applies fn to a copy of the glyph. If fn changes the id, the
// connections of the glyph follow it.
func UpdateGlyph(p *glyphtarget.Page, id string, fn func(*glyphtarget.Glyph)) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to update glyph %#v", id)

	i := p.GlyphIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, id)
	}
	g := p.Glyphs[i].Copy()
	fn(g)
	if g.ID == "" {
		return nil, errors.New("glyph id cannot be empty")
	}

	if g.ID != id && p.FindGlyph(g.ID) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, g.ID)
	}

	p = p.Copy()
	p.Glyphs[i] = g
	if g.ID == id {
		return p, nil
	}
	for j, c := range p.Connections {
		if !c.Touches(id) {
			continue
		}
		c = c.Copy()
		if c.FromGlyphID == id {
			c.FromGlyphID = g.ID
		}
		if c.ToGlyphID == id {
			c.ToGlyphID = g.ID
		}
		p.Connections[j] = c
	}
	return p, nil
}

// SetPortCounts changes the generated port counts of a glyph. Connections to
// ports that no longer exist are kept and render as stubs at the glyph's
// origin.
func SetPortCounts(p *glyphtarget.Page, id string, inputs, outputs int) (*glyphtarget.Page, error) {
	return UpdateGlyph(p, id, func(g *glyphtarget.Glyph) {
		g.Inputs = go2.Pointer(go2.Max(inputs, 0))
		g.Outputs = go2.Pointer(go2.Max(outputs, 0))
	})
}

// DeleteGlyph removes a glyph and every connection touching it.
func DeleteGlyph(p *glyphtarget.Page, id string) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to delete glyph %#v", id)

	i := p.GlyphIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, id)
	}
	p2 := p.Copy()
	p2.Glyphs = append(p2.Glyphs[:i], p2.Glyphs[i+1:]...)
	p2.Connections = p2.Connections[:0]
	for _, c := range p.Connections {
		if !c.Touches(id) {
			p2.Connections = append(p2.Connections, c)
		}
	}
	return p2, nil
}

// BringToFront moves a glyph to the end of the paint order.
func BringToFront(p *glyphtarget.Page, id string) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to bring glyph %#v to front", id)

	i := p.GlyphIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, id)
	}
	g := p.Glyphs[i]
	p = p.Copy()
	p.Glyphs = append(append(p.Glyphs[:i], p.Glyphs[i+1:]...), g)
	return p, nil
}

// SendToBack moves a glyph to the start of the paint order.
func SendToBack(p *glyphtarget.Page, id string) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to send glyph %#v to back", id)

	i := p.GlyphIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, id)
	}
	glyphs := make([]*glyphtarget.Glyph, 0, len(p.Glyphs))
	glyphs = append(glyphs, p.Glyphs[i])
	glyphs = append(glyphs, p.Glyphs[:i]...)
	glyphs = append(glyphs, p.Glyphs[i+1:]...)
	p = p.Copy()
	p.Glyphs = glyphs
	return p, nil
}

// Group assigns groupID to every listed glyph. An empty groupID gets a fresh
// one, which is returned.
func Group(p *glyphtarget.Page, ids []string, groupID string) (_ *glyphtarget.Page, _ string, err error) {
	defer xdefer.Errorf(&err, "failed to group %v", ids)

	if groupID == "" {
		groupID = glyphstencil.NewGroupID()
	}
	p, err = setGroup(p, ids, groupID)
	if err != nil {
		return nil, "", err
	}
	return p, groupID, nil
}

func Ungroup(p *glyphtarget.Page, ids []string) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to ungroup %v", ids)
	return setGroup(p, ids, "")
}

func setGroup(p *glyphtarget.Page, ids []string, groupID string) (*glyphtarget.Page, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if p.FindGlyph(id) == nil {
			return nil, fmt.Errorf("%w: %s", ErrGlyphNotFound, id)
		}
		want[id] = struct{}{}
	}
	p = p.Copy()
	for i, g := range p.Glyphs {
		if _, ok := want[g.ID]; ok {
			g = g.Copy()
			g.GroupID = groupID
			p.Glyphs[i] = g
		}
	}
	return p, nil
}

// AutoArrange lays glyphs out on a square grid in paint order.
func AutoArrange(p *glyphtarget.Page) *glyphtarget.Page {
	p = p.Copy()
	cols := int(math.Ceil(math.Sqrt(float64(len(p.Glyphs)))))
	for i, g := range p.Glyphs {
		g = g.Copy()
		g.X = ARRANGE_ORIGIN + float64(i%cols)*ARRANGE_PITCH
		g.Y = ARRANGE_ORIGIN + float64(i/cols)*ARRANGE_PITCH
		p.Glyphs[i] = g
	}
	return p
}

// AddConnection validates and appends a connection. The source must be an
// output or attribute port and the target an input port on another glyph.
// Port references are stored in their canonical form.
func AddConnection(p *glyphtarget.Page, c *glyphtarget.Connection) (_ *glyphtarget.Page, id string, err error) {
	defer xdefer.Errorf(&err, "failed to connect %#v to %#v", c.FromGlyphID, c.ToGlyphID)

	from := p.FindGlyph(c.FromGlyphID)
	if from == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrGlyphNotFound, c.FromGlyphID)
	}
	to := p.FindGlyph(c.ToGlyphID)
	if to == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrGlyphNotFound, c.ToGlyphID)
	}
	if from.ID == to.ID {
		return nil, "", fmt.Errorf("%w: glyph cannot connect to itself", ErrInvalidConnection)
	}
	src, ok := glyphport.Find(from, c.FromPort, glyphsize.Size{})
	if !ok {
		return nil, "", fmt.Errorf("%w: no port %q on %s", ErrInvalidConnection, c.FromPort, from.ID)
	}
	if !src.IsSource() {
		return nil, "", fmt.Errorf("%w: %s port %q is not an output", ErrInvalidConnection, from.ID, c.FromPort)
	}
	dst, ok := glyphport.Find(to, c.ToPort, glyphsize.Size{})
	if !ok {
		return nil, "", fmt.Errorf("%w: no port %q on %s", ErrInvalidConnection, c.ToPort, to.ID)
	}
	if !dst.IsTarget() {
		return nil, "", fmt.Errorf("%w: %s port %q is not an input", ErrInvalidConnection, to.ID, c.ToPort)
	}

	c = c.Copy()
	c.FromPort = src.Ref()
	c.ToPort = dst.Ref()
	if c.ID == "" {
		c.ID = glyphstencil.NewConnectionID()
	}
	if p.FindConnection(c.ID) != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
	}
	if c.Type == "" {
		c.Type = glyphtarget.ConnectionDefault
	}

	p = p.Copy()
	p.Connections = append(p.Connections, c)
	return p, c.ID, nil
}

// UpdateConnection applies fn to a copy of the connection.
func UpdateConnection(p *glyphtarget.Page, id string, fn func(*glyphtarget.Connection)) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to update connection %#v", id)

	i := p.ConnectionIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrConnectionNotFound, id)
	}
	c := p.Connections[i].Copy()
	fn(c)
	if c.ID != id && p.FindConnection(c.ID) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
	}
	p = p.Copy()
	p.Connections[i] = c
	return p, nil
}

func DeleteConnection(p *glyphtarget.Page, id string) (_ *glyphtarget.Page, err error) {
	defer xdefer.Errorf(&err, "failed to delete connection %#v", id)

	i := p.ConnectionIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrConnectionNotFound, id)
	}
	p = p.Copy()
	p.Connections = append(p.Connections[:i], p.Connections[i+1:]...)
	return p, nil
}

// PruneDangling drops connections with a missing endpoint and reports how
// many were dropped.
func PruneDangling(p *glyphtarget.Page) (*glyphtarget.Page, int) {
	p2 := p.Copy()
	p2.Connections = p2.Connections[:0]
	for _, c := range p.Connections {
		if !p.IsDangling(c) {
			p2.Connections = append(p2.Connections, c)
		}
	}
	return p2, len(p.Connections) - len(p2.Connections)
}
