package glyphlayout_test

import (
	"context"
	"encoding/json"
	"testing"

	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphpath"
	"oss.terrastruct.com/glyphs/glyphtarget"
	"oss.terrastruct.com/glyphs/lib/geo"
	"oss.terrastruct.com/glyphs/lib/log"
)

func scenarioPage() *glyphtarget.Page {
	p := glyphtarget.NewPage("page-1", "Page 1")
	p.Glyphs = []*glyphtarget.Glyph{
		{ID: "a", Type: "rect", X: 0, Y: 0, Inputs: go2.Pointer(1), Outputs: go2.Pointer(1)},
		{ID: "b", Type: "rect", X: 200, Y: 0, Inputs: go2.Pointer(1), Outputs: go2.Pointer(1)},
	}
	p.Connections = []*glyphtarget.Connection{
		{
			ID:          "c1",
			FromGlyphID: "a",
			FromPort:    glyphtarget.PortAt(glyphtarget.PortKindOutput, 0),
			ToGlyphID:   "b",
			ToPort:      glyphtarget.PortAt(glyphtarget.PortKindInput, 0),
			Label:       "go",
			Type:        glyphtarget.ConnectionDefault,
		},
	}
	return p
}

func TestLayoutScenario(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	d := glyphlayout.Layout(ctx, scenarioPage(), nil)

	assert.String(t, "page-1", d.PageID)
	assert.Equal(t, 2, len(d.Shapes))
	assert.Equal(t, 1, len(d.Routes))

	a := d.Shape("a")
	assert.True(t, a != nil)
	assert.Equal(t, 100., a.Box.Width)
	assert.Equal(t, 60., a.Box.Height)
	assert.Equal(t, 2, len(a.Ports))
	assert.True(t, a.Ports[0].At.Equals(geo.NewPoint(0, 30)))
	assert.True(t, a.Ports[1].At.Equals(geo.NewPoint(100, 30)))

	r := d.Route("c1")
	assert.True(t, r != nil)
	assert.True(t, r == d.RouteAt(0))
	assert.True(t, r.Src.Equals(geo.NewPoint(100, 30)))
	assert.True(t, r.Dst.Equals(geo.NewPoint(200, 30)))
	assert.True(t, !r.SrcStub && !r.DstStub)
	assert.Equal(t, glyphpath.Bezier, r.Style)
	assert.String(t, "M 100 30 C 130 30 170 30 200 30", r.D)
	assert.Equal(t, glyphpath.DEFAULT_SEGMENTS+1, len(r.Polyline))

	assert.True(t, r.LabelBox.TopLeft.Equals(geo.NewPoint(142, 20)))
	assert.Equal(t, 16., r.LabelBox.Width)
	assert.Equal(t, 20., r.LabelBox.Height)

	bb := d.BoundingBox()
	assert.True(t, bb.TopLeft.Equals(geo.NewPoint(0, 0)))
	assert.Equal(t, 300., bb.Width)
	assert.Equal(t, 60., bb.Height)

	assert.Equal(t, 3, len(d.Order))
	assert.String(t, "c1", d.Order[0].ID)
	assert.String(t, "a", d.Order[1].ID)
	assert.String(t, "b", d.Order[2].ID)
}

func TestLayoutStyle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		view      *glyphtarget.View
		def       glyphpath.Style
		waypoints []*geo.Point
		exp       string
	}{
		{
			name: "default",
			exp:  "M 100 30 C 130 30 170 30 200 30",
		},
		{
			name: "opts_default",
			def:  glyphpath.Line,
			exp:  "M 100 30 L 200 30",
		},
		{
			name: "view_wins",
			view: &glyphtarget.View{Style: "manhattan"},
			def:  glyphpath.Line,
			exp:  "M 100 30 L 150 30 L 150 30 L 200 30",
		},
		{
			name: "unknown_view_style",
			view: &glyphtarget.View{Style: "zigzag"},
			def:  glyphpath.Line,
			exp:  "M 100 30 L 200 30",
		},
		{
			name:      "waypoints",
			waypoints: []*geo.Point{geo.NewPoint(150, 100)},
			exp:       "M 100 30 L 150 100 L 200 30",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := log.WithTB(context.Background(), t, nil)
			p := scenarioPage()
			p.Connections[0].View = tc.view
			p.Connections[0].Points = tc.waypoints
			d := glyphlayout.Layout(ctx, p, &glyphlayout.Opts{DefaultStyle: tc.def})
			assert.String(t, tc.exp, d.Route("c1").D)
		})
	}
}

func TestLayoutDanglingAndStubs(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	p := scenarioPage()
	p.Connections = append(p.Connections,
		&glyphtarget.Connection{
			ID:          "ghost",
			FromGlyphID: "a",
			FromPort:    glyphtarget.PortAt(glyphtarget.PortKindOutput, 0),
			ToGlyphID:   "missing",
			ToPort:      glyphtarget.PortAt(glyphtarget.PortKindInput, 0),
		},
		&glyphtarget.Connection{
			ID:          "stub",
			FromGlyphID: "a",
			FromPort:    glyphtarget.PortAt(glyphtarget.PortKindOutput, 0),
			ToGlyphID:   "b",
			ToPort:      glyphtarget.PortID("nope"),
		},
	)

	d := glyphlayout.Layout(ctx, p, nil)
	assert.Equal(t, 2, len(d.Routes))
	assert.True(t, d.Route("ghost") == nil)
	assert.True(t, d.RouteAt(1) == nil)

	r := d.RouteAt(2)
	assert.String(t, "stub", r.ID)
	assert.True(t, !r.SrcStub)
	assert.True(t, r.DstStub)
	assert.True(t, r.Dst.Equals(geo.NewPoint(200, 0)))
	assert.True(t, r.LabelBox == nil)

	for _, it := range d.Order {
		assert.NotEqual(t, "ghost", it.ID)
	}
}

func TestLayoutEmpty(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	d := glyphlayout.Layout(ctx, glyphtarget.NewPage("p", "P"), nil)
	assert.Equal(t, 0, len(d.Shapes))
	assert.True(t, d.BoundingBox() == nil)
}

func TestLabelBox(t *testing.T) {
	t.Parallel()

	assert.True(t, glyphlayout.LabelBox("", geo.NewPoint(0, 0), geo.NewPoint(10, 0)) == nil)

	b := glyphlayout.LabelBox("héllo", geo.NewPoint(0, 0), geo.NewPoint(100, 40))
	assert.Equal(t, 40., b.Width)
	assert.True(t, b.TopLeft.Equals(geo.NewPoint(30, 10)))
}

func TestBoundingBoxCoversRoutes(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	p := scenarioPage()
	p.Connections[0].Points = []*geo.Point{geo.NewPoint(150, -80), geo.NewPoint(400, 200)}
	d := glyphlayout.Layout(ctx, p, nil)

	bb := d.BoundingBox()
	assert.True(t, bb.TopLeft.Equals(geo.NewPoint(0, -80)))
	assert.Equal(t, 400., bb.Width)
	assert.Equal(t, 280., bb.Height)
}

func TestDiagramJSON(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	d := glyphlayout.Layout(ctx, scenarioPage(), nil)
	b, err := json.Marshal(d)
	assert.Success(t, err)

	var out struct {
		PageID string `json:"pageId"`
		Routes []struct {
			ID string `json:"id"`
			D  string `json:"d"`
		} `json:"routes"`
		Shapes []struct {
			ID    string `json:"id"`
			Ports []struct {
				Kind string `json:"kind"`
			} `json:"ports"`
		} `json:"shapes"`
	}
	assert.Success(t, json.Unmarshal(b, &out))
	assert.String(t, "page-1", out.PageID)
	assert.String(t, "M 100 30 C 130 30 170 30 200 30", out.Routes[0].D)
	assert.String(t, "input", out.Shapes[0].Ports[0].Kind)
	assert.String(t, "output", out.Shapes[0].Ports[1].Kind)
}
