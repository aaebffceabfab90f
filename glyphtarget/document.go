package glyphtarget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"oss.terrastruct.com/util-go/xdefer"
)

type Document struct {
	Pages []*Page `json:"pages"`
}

func NewDocument() *Document {
	return &Document{
		Pages: []*Page{NewPage("page-1", "Page 1")},
	}
}

// Parse reads a document in any of its persisted envelopes: {"pages": [...]},
// a bare array of pages, or the single page {"glyphs": [...], "connections": [...]}.
func Parse(b []byte) (_ *Document, err error) {
	defer xdefer.Errorf(&err, "failed to parse document")

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, errors.New("empty input")
	}

	d := &Document{}
	if b[0] == '[' {
		if err := json.Unmarshal(b, &d.Pages); err != nil {
			return nil, err
		}
	} else {
		var env struct {
			Pages       *[]*Page      `json:"pages"`
			Glyphs      []*Glyph      `json:"glyphs"`
			Connections []*Connection `json:"connections"`
		}
		if err := json.Unmarshal(b, &env); err != nil {
			return nil, err
		}
		if env.Pages != nil {
			d.Pages = *env.Pages
		} else {
			p := NewPage("", "")
			p.Glyphs = env.Glyphs
			p.Connections = env.Connections
			d.Pages = []*Page{p}
		}
	}
	d.fill()
	return d, nil
}

// fill drops null entries and sets the defaults older documents omit.
func (d *Document) fill() {
	pages := d.Pages[:0]
	for _, p := range d.Pages {
		if p != nil {
			pages = append(pages, p)
		}
	}
	d.Pages = pages

	for i, p := range d.Pages {
		if p.ID == "" {
			p.ID = fmt.Sprintf("page-%d", i+1)
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("Page %d", i+1)
		}
		glyphs := make([]*Glyph, 0, len(p.Glyphs))
		for _, g := range p.Glyphs {
			if g != nil {
				glyphs = append(glyphs, g)
			}
		}
		p.Glyphs = glyphs
		conns := make([]*Connection, 0, len(p.Connections))
		for _, c := range p.Connections {
			if c == nil {
				continue
			}
			if c.Type == "" {
				c.Type = ConnectionDefault
			}
			conns = append(conns, c)
		}
		p.Connections = conns
	}
}

func (d *Document) Bytes() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (d *Document) PageIndex(id string) int {
	for i, p := range d.Pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FindPage looks a page up by id, then by name. An empty key selects the
// first page.
func (d *Document) FindPage(key string) *Page {
	if len(d.Pages) == 0 {
		return nil
	}
	if key == "" {
		return d.Pages[0]
	}
	if i := d.PageIndex(key); i >= 0 {
		return d.Pages[i]
	}
	for _, p := range d.Pages {
		if p.Name == key {
			return p
		}
	}
	return nil
}

// Copy is shallow: pages are shared with d.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}
	return &Document{Pages: append([]*Page(nil), d.Pages...)}
}

// Validate reports structural problems: duplicate ids, self connections and
// connections whose endpoints are missing. Every problem found is returned.
func (d *Document) Validate() error {
	var err error
	pageIDs := make(map[string]struct{}, len(d.Pages))
	for _, p := range d.Pages {
		if _, ok := pageIDs[p.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("duplicate page id %q", p.ID))
		}
		pageIDs[p.ID] = struct{}{}
		err = multierr.Append(err, p.Validate())
	}
	return err
}

func (p *Page) Validate() error {
	var err error
	glyphIDs := make(map[string]struct{}, len(p.Glyphs))
	for _, g := range p.Glyphs {
		if g.ID == "" {
			err = multierr.Append(err, fmt.Errorf("%s: glyph of type %q has no id", p.ID, g.Type))
			continue
		}
		if _, ok := glyphIDs[g.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate glyph id %q", p.ID, g.ID))
		}
		glyphIDs[g.ID] = struct{}{}
	}
	connIDs := make(map[string]struct{}, len(p.Connections))
	for i, c := range p.Connections {
		name := c.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		} else {
			if _, ok := connIDs[c.ID]; ok {
				err = multierr.Append(err, fmt.Errorf("%s: duplicate connection id %q", p.ID, c.ID))
			}
			connIDs[c.ID] = struct{}{}
		}
		if _, ok := glyphIDs[c.FromGlyphID]; !ok {
			err = multierr.Append(err, fmt.Errorf("%s: connection %s: missing source glyph %q", p.ID, name, c.FromGlyphID))
		}
		if _, ok := glyphIDs[c.ToGlyphID]; !ok {
			err = multierr.Append(err, fmt.Errorf("%s: connection %s: missing target glyph %q", p.ID, name, c.ToGlyphID))
		}
		if c.FromGlyphID == c.ToGlyphID {
			err = multierr.Append(err, fmt.Errorf("%s: connection %s: connects glyph %q to itself", p.ID, name, c.FromGlyphID))
		}
	}
	return err
}
