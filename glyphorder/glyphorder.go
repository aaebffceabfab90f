// Package glyphorder computes the paint order of a page.
//
// Glyphs paint in list order. A connection shares the order key of the
// lower of its two endpoints and paints directly behind that glyph, so
// either endpoint can occlude it. Connections sharing a key keep their
// input order.
package glyphorder

import (
	"sort"

	"oss.terrastruct.com/glyphs/glyphtarget"
)

type Kind string

const (
	KindGlyph      Kind = "glyph"
	KindConnection Kind = "connection"
)

type Item struct {
	Kind Kind `json:"kind"`
	// Index is the item's position in the page's glyph or connection list.
	Index int    `json:"index"`
	ID    string `json:"id"`
	Order int    `json:"order"`

	Glyph      *glyphtarget.Glyph      `json:"-"`
	Connection *glyphtarget.Connection `json:"-"`
}

// RenderOrder returns glyphs and connections in paint order, bottom first.
// Connections with a missing endpoint are left out.
func RenderOrder(glyphs []*glyphtarget.Glyph, connections []*glyphtarget.Connection) []Item {
	index := make(map[string]int, len(glyphs))
	for i, g := range glyphs {
		if _, ok := index[g.ID]; !ok {
			index[g.ID] = i
		}
	}

	items := make([]Item, 0, len(glyphs)+len(connections))
	for i, g := range glyphs {
		items = append(items, Item{
			Kind:  KindGlyph,
			Index: i,
			ID:    g.ID,
			Order: i,
			Glyph: g,
		})
	}
	for i, c := range connections {
		from, ok := index[c.FromGlyphID]
		if !ok {
			continue
		}
		to, ok := index[c.ToGlyphID]
		if !ok {
			continue
		}
		items = append(items, Item{
			Kind:       KindConnection,
			Index:      i,
			ID:         c.ID,
			Order:      min(from, to),
			Connection: c,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Kind == KindConnection && items[j].Kind == KindGlyph
	})
	return items
}

// Page is RenderOrder over a page's lists.
func Page(p *glyphtarget.Page) []Item {
	return RenderOrder(p.Glyphs, p.Connections)
}
