package figsvg_test

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figcontext/figcontextcatalog"
	"oss.terrastruct.com/mathfig/figlib"
	"oss.terrastruct.com/mathfig/figrenderers/figsvg"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/diff"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/label"
	"oss.terrastruct.com/mathfig/lib/log"
	"oss.terrastruct.com/mathfig/lib/shape"
)

func square() *figtarget.Scene {
	return &figtarget.Scene{
		Kind:     shape.SQUARE_TYPE,
		Vertices: []geo.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
		Polygon:  []int{0, 1, 2, 3},
		Labels: []figtarget.LabelAnchor{
			{Position: geo.Point{X: 1, Y: -0.6}, Text: "a<b", Side: shape.SideBase, Anchor: label.AnchorMiddle},
		},
		Arcs: []figtarget.AngleArc{{
			VertexIndex: 0,
			Start:       geo.Point{X: 0.5, Y: 0},
			End:         geo.Point{X: 0, Y: 0.5},
			SweepFlag:   1,
			Radius:      0.5,
		}},
		Frame: figtarget.BoundingBox{XMin: -1, YMax: 3, XMax: 3, YMin: -1},
	}
}

func opts() *figsvg.RenderOpts {
	return &figsvg.RenderOpts{
		PixelsPerUnit: 10,
		LabelSize:     12,
		Colors: figcontext.Palette{
			Fill:   "#E3E9FD",
			Stroke: "#0D32B2",
			Label:  "#000000",
			Accent: "#FF0000",
		},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := figsvg.Render(square(), opts())
	require.NoError(t, err)
	svg := string(out)

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" id="fig-`))
	assert.Contains(t, svg, `viewBox="0 0 40 40" width="40" height="40"`)
	assert.Contains(t, svg, `d="M 10 30 L 30 30 L 30 10 L 10 10 Z"`)
	assert.True(t, strings.HasSuffix(svg, `</svg>`))
}

func TestRenderArcSweepFlipped(t *testing.T) {
	t.Parallel()

	out, err := figsvg.Render(square(), opts())
	require.NoError(t, err)

	// counter-clockwise with y up is clockwise on screen
	assert.Contains(t, string(out), `<path data-fig-id="arc.0" d="M 15 30 A 5 5 0 0 0 10 25"`)
}

func TestRenderMarker(t *testing.T) {
	t.Parallel()

	s := square()
	s.Arcs[0].Marker = true
	out, err := figsvg.Render(s, opts())
	require.NoError(t, err)

	assert.Contains(t, string(out), `<path data-fig-id="arc.0.marker" d="M 15 30 L 15 25 L 10 25"`)
}

func TestRenderLabel(t *testing.T) {
	t.Parallel()

	out, err := figsvg.Render(square(), opts())
	require.NoError(t, err)

	assert.Contains(t, string(out),
		`<text data-fig-id="label.base.0" x="20" y="36" fill="#000000" text-anchor="middle" dominant-baseline="middle" font-size="12">a&lt;b</text>`)
}

func TestRenderSegments(t *testing.T) {
	t.Parallel()

	s := square()
	s.ExtraSegments = []figtarget.Segment{
		{Kind: figtarget.SegmentHashMark, Start: geo.Point{X: 1, Y: -0.1}, End: geo.Point{X: 1, Y: 0.1}},
		{Kind: figtarget.SegmentHashMark, Start: geo.Point{X: 1.9, Y: 1}, End: geo.Point{X: 2.1, Y: 1}},
	}
	out, err := figsvg.Render(s, opts())
	require.NoError(t, err)
	svg := string(out)

	assert.Contains(t, svg, `data-fig-id="segment.hashMark.0" d="M 20 31 L 20 29"`)
	assert.Contains(t, svg, `data-fig-id="segment.hashMark.1" d="M 29 20 L 31 20"`)
	assert.NotContains(t, svg, "stroke-dasharray")
}

func TestRenderStrokeFromFill(t *testing.T) {
	t.Parallel()

	o := opts()
	o.Colors.Stroke = ""
	out, err := figsvg.Render(square(), o)
	require.NoError(t, err)

	assert.Contains(t, string(out), `data-fig-id="polygon" d="M 10 30 L 30 30 L 30 10 L 10 10 Z" fill="#E3E9FD" stroke="#`)
	assert.NotContains(t, string(out), `stroke="#0D32B2"`)
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	_, err := figsvg.Render(&figtarget.Scene{}, nil)
	assert.Error(t, err)

	o := opts()
	o.Colors.Fill = "not a color"
	_, err = figsvg.Render(square(), o)
	assert.Error(t, err)
}

func TestRenderSections(t *testing.T) {
	t.Parallel()

	spec := figtarget.ShapeSpec{
		Kind:        shape.ISOSCELES_TRIANGLE_TYPE,
		Orientation: geo.Rotate180,
		Labels: []figtarget.LabelText{
			{Side: shape.SideBase, Text: "8"},
			{Side: shape.SideLeftLeg, Text: "5"},
		},
		ShowHeight:         true,
		ShowEqualSideMarks: true,
		AngleFlags:         []bool{true, false, false},
		AngleLabels:        []string{"α"},
	}

	for _, c := range figcontextcatalog.Catalog {
		c := c
		t.Run(c.Section, func(t *testing.T) {
			t.Parallel()

			ctx := log.WithTB(context.Background(), t, nil)
			scene, fc, err := figlib.CompileSection(ctx, spec, c.Section, nil)
			require.NoError(t, err)

			out, err := figsvg.Render(scene, figsvg.OptsFromContext(fc))
			require.NoError(t, err)
			svg := string(out)
			assert.Contains(t, svg, `stroke-dasharray`)
			for _, el := range scene.Elements() {
				if el.Kind == figtarget.ElementVertex || el.Kind == figtarget.ElementFrame {
					continue
				}
				assert.Contains(t, svg, fmt.Sprintf(`data-fig-id="%s"`, el.ID))
			}

			again, err := figsvg.Render(scene, figsvg.OptsFromContext(fc))
			require.NoError(t, err)
			assert.Equal(t, svg, string(again))
		})
	}
}

func TestRenderGolden(t *testing.T) {
	t.Parallel()

	s := square()
	s.ExtraSegments = []figtarget.Segment{
		{Kind: figtarget.SegmentHashMark, Start: geo.Point{X: 1, Y: -0.1}, End: geo.Point{X: 1, Y: 0.1}},
		{Kind: figtarget.SegmentHeight, Start: geo.Point{X: 1, Y: 0}, End: geo.Point{X: 1, Y: 2}},
	}
	s.Arcs[0].Angle = math.Pi / 2
	s.Arcs[0].MidAngle = math.Pi / 4
	s.Arcs[0].LabelPosition = geo.Point{X: 0.5, Y: 0.5}
	s.Arcs[0].LabelText = "θ"
	s.Arcs = append(s.Arcs, figtarget.AngleArc{
		VertexIndex:   2,
		Start:         geo.Point{X: 2, Y: 1.6},
		End:           geo.Point{X: 1.6, Y: 2},
		SweepFlag:     1,
		Angle:         math.Pi / 2,
		MidAngle:      -3 * math.Pi / 4,
		Radius:        0.4,
		LabelPosition: geo.Point{X: 1.8, Y: 1.8},
		Marker:        true,
	})

	out, err := figsvg.Render(s, opts())
	require.NoError(t, err)

	err = diff.TestdataGeneric(filepath.Join("testdata", t.Name()), ".svg", out)
	require.NoError(t, err)
}

func TestRenderArcLabel(t *testing.T) {
	t.Parallel()

	s := square()
	s.Arcs[0].LabelText = "θ"
	s.Arcs[0].LabelPosition = geo.Point{X: 0.5, Y: 0.5}

	out, err := figsvg.Render(s, opts())
	require.NoError(t, err)
	assert.Contains(t, string(out), `<text data-fig-id="arc.0.label" x="15" y="25" fill="#0A0F25"`)

	o := opts()
	o.Colors.Fill = "#0D32B2"
	out, err = figsvg.Render(s, o)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<text data-fig-id="arc.0.label" x="15" y="25" fill="#FFFFFF"`)
}
