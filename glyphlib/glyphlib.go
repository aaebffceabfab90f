// Package glyphlib ties document parsing, layout and validation together for
// callers that start from persisted bytes.
package glyphlib

import (
	"context"
	"fmt"

	"cdr.dev/slog"
	"go.uber.org/multierr"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphport"
	"oss.terrastruct.com/glyphs/glyphsize"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/log"
)

type CompileOptions struct {
	// Page selects a page by id or name. Empty selects the first page.
	Page   string
	Layout *glyphlayout.Opts
}

// Load parses a document and rewrites every resolvable port reference into
// its canonical form.
func Load(ctx context.Context, b []byte) (_ *glyphtarget.Document, err error) {
	defer xdefer.Errorf(&err, "failed to load document")

	d, err := glyphtarget.Parse(b)
	if err != nil {
		return nil, err
	}
	for _, p := range d.Pages {
		if n := glyphport.NormalizePage(p); n > 0 {
			log.Debug(ctx, "normalized port references", slog.F("page", p.ID), slog.F("count", n))
		}
	}
	return d, nil
}

// Compile loads input and lays out the selected page.
func Compile(ctx context.Context, input []byte, opts *CompileOptions) (*glyphlayout.Diagram, *glyphtarget.Document, error) {
	if opts == nil {
		opts = &CompileOptions{}
	}
	d, err := Load(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	p := d.FindPage(opts.Page)
	if p == nil {
		return nil, nil, fmt.Errorf("page %q not found", opts.Page)
	}
	return glyphlayout.Layout(ctx, p, opts.Layout), d, nil
}

// Validate reports every structural problem of d together: duplicate ids,
// dangling connections, self connections and port references that do not
// resolve to a slot of the right direction.
func Validate(d *glyphtarget.Document) error {
	err := d.Validate()
	for _, p := range d.Pages {
		err = multierr.Append(err, validatePorts(p))
	}
	return err
}

func validatePorts(p *glyphtarget.Page) error {
	var err error
	for i, c := range p.Connections {
		name := c.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if g := p.FindGlyph(c.FromGlyphID); g != nil {
			err = multierr.Append(err, checkPort(p, name, "source", g, c.FromPort, glyphport.Slot.IsSource))
		}
		if g := p.FindGlyph(c.ToGlyphID); g != nil {
			err = multierr.Append(err, checkPort(p, name, "target", g, c.ToPort, glyphport.Slot.IsTarget))
		}
	}
	return err
}

func checkPort(p *glyphtarget.Page, conn, end string, g *glyphtarget.Glyph, ref glyphtarget.PortRef, ok func(glyphport.Slot) bool) error {
	slot, found := glyphport.Find(g, ref, glyphsize.Resolve(g))
	if !found {
		return fmt.Errorf("%s: connection %s: %s port %q not found on glyph %q", p.ID, conn, end, ref.String(), g.ID)
	}
	if !ok(slot) {
		return fmt.Errorf("%s: connection %s: %s port %q on glyph %q has kind %s", p.ID, conn, end, ref.String(), g.ID, slot.Kind)
	}
	return nil
}
