// Package glyphpng rasterizes a laid out page.
package glyphpng

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphorder"
	"oss.terrastruct.com/glyphs/glyphport"
	"oss.terrastruct.com/glyphs/glyphrenderers/glyphpaint"
	"oss.terrastruct.com/glyphs/glyphrenderers/glyphsvg"
	"oss.terrastruct.com/glyphs/glyphtarget"
	libcolor "oss.terrastruct.com/glyphs/lib/color"
)

const (
	DEFAULT_SCALE = 1.
	// MAX_PIXELS bounds the canvas of one render.
	MAX_PIXELS = 64 << 20

	LABEL_FONT_SIZE = 14.
)

type RenderOpts struct {
	Pad *int64
	// Scale multiplies every dimension of the output.
	Scale      float64
	Background string
}

var (
	fontOnce sync.Once
	regular  *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		regular, fontErr = truetype.Parse(goregular.TTF)
	})
	return regular, fontErr
}

type painter struct {
	dc    *gg.Context
	ttf   *truetype.Font
	scale float64
	faces map[float64]font.Face
}

func (p *painter) setFontSize(size float64) {
	f, ok := p.faces[size]
	if !ok {
		f = truetype.NewFace(p.ttf, &truetype.Options{
			Size:    size * p.scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		p.faces[size] = f
	}
	p.dc.SetFontFace(f)
}

func (p *painter) setColor(css, fallback string) {
	c, err := libcolor.NRGBA(css)
	if err != nil {
		c, _ = libcolor.NRGBA(fallback)
	}
	p.dc.SetColor(c)
}

func Render(d *glyphlayout.Diagram, opts *RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render png")

	if d == nil {
		return nil, errors.New("nothing to render")
	}
	if opts == nil {
		opts = &RenderOpts{}
	}
	pad := glyphsvg.DEFAULT_PADDING
	if opts.Pad != nil {
		pad = int(*opts.Pad)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DEFAULT_SCALE
	}

	left, top, width, height := glyphsvg.Dimensions(d, pad)
	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	if w < 1 || h < 1 {
		return nil, errors.New("empty canvas")
	}
	if w*h > MAX_PIXELS {
		return nil, errors.New("canvas too large, lower the scale")
	}

	ttf, err := loadFont()
	if err != nil {
		return nil, err
	}

	p := &painter{
		dc:    gg.NewContext(w, h),
		ttf:   ttf,
		scale: scale,
		faces: make(map[float64]font.Face),
	}
	if opts.Background != "none" {
		p.setColor(opts.Background, libcolor.Background)
		p.dc.Clear()
	}
	p.dc.Scale(scale, scale)
	p.dc.Translate(-left, -top)

	for _, it := range d.Order {
		switch it.Kind {
		case glyphorder.KindGlyph:
			p.drawShape(d.Shapes[it.Index])
		case glyphorder.KindConnection:
			if r := d.RouteAt(it.Index); r != nil {
				p.drawRoute(r)
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := p.dc.EncodePNG(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *painter) drawShape(s *glyphlayout.Shape) {
	dc := p.dc
	g := s.Glyph
	b := s.Box
	fill := glyphpaint.Fill(g)
	stroke := glyphpaint.Stroke(g, fill)
	c := b.Center()

	if fill != "none" {
		switch glyphpaint.OutlineOf(s.Type) {
		case glyphpaint.OutlineEllipse:
			dc.DrawEllipse(c.X, c.Y, b.Width/2, b.Height/2)
		case glyphpaint.OutlineDiamond:
			dc.MoveTo(c.X, b.TopLeft.Y)
			dc.LineTo(b.TopLeft.X+b.Width, c.Y)
			dc.LineTo(c.X, b.TopLeft.Y+b.Height)
			dc.LineTo(b.TopLeft.X, c.Y)
			dc.ClosePath()
		default:
			dc.DrawRoundedRectangle(b.TopLeft.X, b.TopLeft.Y, b.Width, b.Height, glyphpaint.CORNER_RADIUS)
		}
		p.setColor(fill, libcolor.GlyphFill)
		dc.FillPreserve()
		p.setColor(stroke, libcolor.GlyphStroke)
		dc.SetLineWidth(glyphpaint.SHAPE_STROKE)
		dc.Stroke()
	}

	p.setColor(glyphpaint.TextColor(g, fill), libcolor.Text)
	switch g.Type {
	case glyphtarget.TypeText:
		p.setFontSize(g.FontSize())
		dc.DrawStringAnchored(g.Label, c.X, c.Y, 0.5, 0.5)
	case glyphtarget.TypeUMLClass:
		p.setFontSize(LABEL_FONT_SIZE)
		dc.DrawStringAnchored(g.Label, c.X, b.TopLeft.Y+glyphport.ATTRIBUTE_START_Y/2, 0.5, 0.5)
		sepY := b.TopLeft.Y + glyphport.ATTRIBUTE_START_Y
		p.setFontSize(glyphpaint.ATTRIBUTE_FONT_SIZE)
		for i, row := range glyphpaint.Rows(g) {
			y := sepY + float64(i)*glyphport.ATTRIBUTE_ROW_HEIGHT + glyphport.ATTRIBUTE_ROW_CENTER
			dc.DrawStringAnchored(row, b.TopLeft.X+8, y, 0, 0.5)
		}
		p.setColor(stroke, libcolor.GlyphStroke)
		dc.SetLineWidth(1)
		dc.DrawLine(b.TopLeft.X, sepY, b.TopLeft.X+b.Width, sepY)
		dc.Stroke()
	default:
		if g.Label != "" {
			p.setFontSize(LABEL_FONT_SIZE)
			dc.DrawStringAnchored(g.Label, c.X, c.Y, 0.5, 0.5)
		}
	}

	dc.SetLineWidth(glyphpaint.PORT_STROKE_WIDTH)
	for _, port := range s.Ports {
		dc.DrawCircle(port.At.X, port.At.Y, glyphpaint.PORT_RADIUS)
		p.setColor(libcolor.Port, libcolor.Port)
		dc.FillPreserve()
		p.setColor(libcolor.GlyphStroke, libcolor.GlyphStroke)
		dc.Stroke()
	}
}

func (p *painter) drawRoute(r *glyphlayout.Route) {
	dc := p.dc
	v := r.Connection.View
	if len(r.Polyline) > 0 {
		dc.MoveTo(r.Polyline[0].X, r.Polyline[0].Y)
		for _, pt := range r.Polyline[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		p.setColor(glyphpaint.ConnectionColor(v), libcolor.ConnectionLine)
		dc.SetLineWidth(v.StrokeWidth())
		if glyphpaint.DashArray(v) != "" {
			dc.SetDash(5, 5)
		}
		dc.Stroke()
		dc.SetDash()
	}

	if lb := r.LabelBox; lb != nil {
		dc.DrawRectangle(lb.TopLeft.X, lb.TopLeft.Y, lb.Width, lb.Height)
		dc.SetColor(color.White)
		dc.Fill()
		c := lb.Center()
		p.setColor(libcolor.ConnectionLabel, libcolor.ConnectionLabel)
		p.setFontSize(glyphpaint.LABEL_FONT_SIZE)
		dc.DrawStringAnchored(r.Connection.Label, c.X, c.Y, 0.5, 0.5)
	}
}
