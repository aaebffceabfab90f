package glyphpath_test

import (
	"testing"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/glyphs/glyphpath"
	"oss.terrastruct.com/glyphs/lib/geo"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		from      *geo.Point
		to        *geo.Point
		style     glyphpath.Style
		waypoints []*geo.Point
		exp       string
	}{
		{
			name:  "line",
			from:  geo.NewPoint(100, 30),
			to:    geo.NewPoint(200, 30),
			style: glyphpath.Line,
			exp:   "M 100 30 L 200 30",
		},
		{
			name:  "manhattan_wide",
			from:  geo.NewPoint(0, 0),
			to:    geo.NewPoint(100, 10),
			style: glyphpath.Manhattan,
			exp:   "M 0 0 L 50 0 L 50 10 L 100 10",
		},
		{
			name:  "manhattan_tall",
			from:  geo.NewPoint(0, 0),
			to:    geo.NewPoint(10, 100),
			style: glyphpath.Manhattan,
			exp:   "M 0 0 L 0 50 L 10 50 L 10 100",
		},
		{
			name:  "manhattan_tie_uses_horizontal_midline",
			from:  geo.NewPoint(0, 0),
			to:    geo.NewPoint(-40, 40),
			style: glyphpath.Manhattan,
			exp:   "M 0 0 L 0 20 L -40 20 L -40 40",
		},
		{
			name:  "bezier",
			from:  geo.NewPoint(0, 0),
			to:    geo.NewPoint(100, 50),
			style: glyphpath.Bezier,
			exp:   "M 0 0 C 30 0 70 50 100 50",
		},
		{
			name:  "bezier_backwards",
			from:  geo.NewPoint(100, 0),
			to:    geo.NewPoint(0, 0),
			style: glyphpath.Bezier,
			exp:   "M 100 0 C 70 0 30 0 0 0",
		},
		{
			name:  "unknown_style_is_bezier",
			from:  geo.NewPoint(0, 0),
			to:    geo.NewPoint(10, 0),
			style: "squiggle",
			exp:   "M 0 0 C 3 0 7 0 10 0",
		},
		{
			name:      "waypoints_override_style",
			from:      geo.NewPoint(0, 0),
			to:        geo.NewPoint(100, 100),
			style:     glyphpath.Bezier,
			waypoints: []*geo.Point{geo.NewPoint(50, 0), geo.NewPoint(50, 100)},
			exp:       "M 0 0 L 50 0 L 50 100 L 100 100",
		},
		{
			name:  "degenerate",
			from:  geo.NewPoint(5, 5),
			to:    geo.NewPoint(5, 5),
			style: glyphpath.Manhattan,
			exp:   "M 5 5 L 5 5 L 5 5 L 5 5",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := glyphpath.Build(tc.from, tc.to, tc.style, tc.waypoints)
			assert.String(t, tc.exp, p.String())
			assert.True(t, p.Start().Equals(tc.from))
			assert.True(t, p.End().Equals(tc.to))
		})
	}
}

func TestEndpointFidelity(t *testing.T) {
	t.Parallel()

	pairs := [][2]*geo.Point{
		{geo.NewPoint(0, 0), geo.NewPoint(0, 0)},
		{geo.NewPoint(1.5, -3), geo.NewPoint(-7.25, 9)},
		{geo.NewPoint(100, 30), geo.NewPoint(200, 30)},
		{geo.NewPoint(-50, 400), geo.NewPoint(-50, -400)},
	}
	for _, pair := range pairs {
		for _, st := range glyphpath.Styles {
			for _, wps := range [][]*geo.Point{nil, {geo.NewPoint(3, 3)}} {
				p := glyphpath.Build(pair[0], pair[1], st, wps)
				assert.Equal(t, glyphpath.OpMove, p[0].Op)
				assert.True(t, p.Start().Equals(pair[0]))
				assert.True(t, p.End().Equals(pair[1]))

				r := p.Route(8)
				assert.True(t, r[0].Equals(pair[0]))
				assert.True(t, r[len(r)-1].Equals(pair[1]))
			}
		}
	}
}

func TestBuildDoesNotAlias(t *testing.T) {
	t.Parallel()

	from := geo.NewPoint(0, 0)
	to := geo.NewPoint(10, 0)
	p := glyphpath.Build(from, to, glyphpath.Line, nil)
	p[0].Points[0].X = 99
	assert.Equal(t, 0., from.X)
}

func TestRoute(t *testing.T) {
	t.Parallel()

	p := glyphpath.Build(geo.NewPoint(0, 0), geo.NewPoint(100, 10), glyphpath.Manhattan, nil)
	r := p.Route(0)
	assert.Equal(t, 4, len(r))
	assert.Equal(t, 110., r.Length())

	p = glyphpath.Build(geo.NewPoint(0, 0), geo.NewPoint(100, 100), glyphpath.Bezier, nil)
	r = p.Route(10)
	assert.Equal(t, 11, len(r))

	assert.Equal(t, 0, len(glyphpath.Path(nil).Route(4)))
	assert.String(t, "", glyphpath.Path(nil).String())
	assert.True(t, glyphpath.Path(nil).Start() == nil)
}

func TestStyleOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, glyphpath.Manhattan, glyphpath.StyleOr("manhattan", glyphpath.Bezier))
	assert.Equal(t, glyphpath.Line, glyphpath.StyleOr("", glyphpath.Line))
	assert.Equal(t, glyphpath.DefaultStyle, glyphpath.StyleOr("zigzag", glyphpath.DefaultStyle))

	_, ok := glyphpath.ParseStyle("Bezier")
	assert.True(t, !ok)
}

func TestMidpoint(t *testing.T) {
	t.Parallel()

	p := glyphpath.Build(geo.NewPoint(100, 30), geo.NewPoint(200, 30), glyphpath.Bezier, nil)
	assert.True(t, p.Midpoint().Equals(geo.NewPoint(150, 30)))
}
