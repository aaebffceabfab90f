package glyphsvg_test

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"

	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphrenderers/glyphsvg"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/log"
)

func scenario() *glyphtarget.Page {
	p := glyphtarget.NewPage("page-1", "Page 1")
	p.Glyphs = []*glyphtarget.Glyph{
		{ID: "a", Type: "rect", Label: "A&B", Inputs: go2.Pointer(1), Outputs: go2.Pointer(1)},
		{ID: "b", Type: "rect", X: 200, Inputs: go2.Pointer(1), Outputs: go2.Pointer(1)},
	}
	p.Connections = []*glyphtarget.Connection{
		{
			ID:          "c1",
			FromGlyphID: "a",
			FromPort:    glyphtarget.PortAt(glyphtarget.PortKindOutput, 0),
			ToGlyphID:   "b",
			ToPort:      glyphtarget.PortAt(glyphtarget.PortKindInput, 0),
			Label:       "x<y",
		},
	}
	return p
}

func render(t *testing.T, p *glyphtarget.Page, opts *glyphsvg.RenderOpts) string {
	ctx := log.WithTB(context.Background(), t, nil)
	out, err := glyphsvg.Render(glyphlayout.Layout(ctx, p, nil), opts)
	assert.Success(t, err)

	// Output must be well formed XML.
	dec := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.String(t, "EOF", err.Error())
			break
		}
	}
	return string(out)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := render(t, scenario(), nil)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.True(t, strings.Contains(out, `viewBox="-40 -40 380 140"`))
	assert.True(t, strings.Contains(out, `<path d="M 100 30 C 130 30 170 30 200 30" fill="none" stroke="#f87171" stroke-width="2"/>`))
	assert.True(t, strings.Contains(out, `>A&amp;B</text>`))
	assert.True(t, strings.Contains(out, `>x&lt;y</text>`))
	assert.True(t, strings.Contains(out, `<rect class="label" x="138" y="20" width="24" height="20" fill="#fff"/>`))
	assert.Equal(t, 4, strings.Count(out, `r="7"`))

	ia := strings.Index(out, `id="glyph-a"`)
	ic := strings.Index(out, `id="connection-c1"`)
	ib := strings.Index(out, `id="glyph-b"`)
	assert.True(t, ic >= 0 && ic < ia && ia < ib)
}

func TestRenderOpts(t *testing.T) {
	t.Parallel()

	out := render(t, scenario(), &glyphsvg.RenderOpts{
		Pad:        go2.Pointer(int64(0)),
		Background: "none",
		NoXMLTag:   true,
	})
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.Contains(out, `viewBox="0 0 300 60"`))
	assert.True(t, !strings.Contains(out, `class="background"`))
}

func TestRenderConnectionView(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		view *glyphtarget.View
		exp  string
	}{
		{
			name: "dashed",
			view: &glyphtarget.View{Dashed: true, Thickness: 3},
			exp:  `stroke="#f87171" stroke-width="3" stroke-dasharray="5,5"/>`,
		},
		{
			name: "black",
			view: &glyphtarget.View{Color: "black"},
			exp:  `stroke="#f87171" stroke-width="2"/>`,
		},
		{
			name: "custom",
			view: &glyphtarget.View{Color: "#3b82f6", Style: "line"},
			exp:  `<path d="M 100 30 L 200 30" fill="none" stroke="#3b82f6" stroke-width="2"/>`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := scenario()
			p.Connections[0].View = tc.view
			assert.True(t, strings.Contains(render(t, p, nil), tc.exp))
		})
	}
}

func TestRenderOutlines(t *testing.T) {
	t.Parallel()

	p := glyphtarget.NewPage("p", "P")
	p.Glyphs = []*glyphtarget.Glyph{
		{ID: "c", Type: "circle"},
		{ID: "d", Type: "flow-decision", X: 200},
		{ID: "t", Type: glyphtarget.TypeText, Label: "note", X: 400, Inputs: go2.Pointer(0), Outputs: go2.Pointer(0)},
		{
			ID: "u", Type: glyphtarget.TypeUMLClass, Label: "User", X: 600,
			Attributes: []glyphtarget.Attribute{{Name: "id", DataType: "int", Visibility: "+"}},
		},
	}
	out := render(t, p, nil)

	assert.True(t, strings.Contains(out, `<ellipse class="shape" cx="50" cy="30" rx="50" ry="30"`))
	assert.True(t, strings.Contains(out, `<polygon class="shape" points="250,0 300,30 250,60 200,30"`))
	assert.True(t, strings.Contains(out, `fill="#fef9c3"`))
	assert.True(t, strings.Contains(out, `>+id: int</text>`))
	assert.True(t, strings.Contains(out, `font-size="20"`))

	start := strings.Index(out, `id="glyph-t"`)
	end := start + strings.Index(out[start:], "</g>")
	assert.True(t, !strings.Contains(out[start:end], `class="shape"`))
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	out := render(t, glyphtarget.NewPage("p", "P"), nil)
	assert.True(t, strings.Contains(out, `viewBox="-40 -40 80 80"`))

	_, err := glyphsvg.Render(nil, nil)
	assert.ErrorString(t, err, "nothing to render")
}
