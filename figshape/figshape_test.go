package figshape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/mathfig/figshape"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/shape"
)

func rightTriangle(o geo.Orientation) figtarget.ShapeSpec {
	return figtarget.ShapeSpec{
		Kind:        shape.RIGHT_TRIANGLE_TYPE,
		FixedWidth:  6,
		FixedHeight: 5,
		Orientation: o,
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		spec figtarget.ShapeSpec
		exp  string
	}{
		{
			name: "right_triangle_default",
			spec: rightTriangle(geo.Default),
			exp:  "(0, 0), (6, 0), (0, 5)",
		},
		{
			name: "right_triangle_rotate90",
			spec: rightTriangle(geo.Rotate90),
			exp:  "(5.5, -0.5), (5.5, 5.5), (0.5, -0.5)",
		},
		{
			name: "right_triangle_flip",
			spec: rightTriangle(geo.Flip),
			exp:  "(6, 0), (0, 0), (6, 5)",
		},
		{
			name: "isosceles_default",
			spec: figtarget.ShapeSpec{Kind: shape.ISOSCELES_TRIANGLE_TYPE, FixedWidth: 6, FixedHeight: 4},
			exp:  "(3, 4), (0, 0), (6, 0)",
		},
		{
			name: "isosceles_flip_vertical",
			spec: figtarget.ShapeSpec{Kind: shape.ISOSCELES_TRIANGLE_TYPE, FixedWidth: 6, FixedHeight: 4, Orientation: geo.FlipVertical},
			exp:  "(3, 0), (0, 4), (6, 4)",
		},
		{
			name: "square",
			spec: figtarget.ShapeSpec{Kind: shape.SQUARE_TYPE, FixedWidth: 4, FixedHeight: 4},
			exp:  "(0, 0), (4, 0), (4, 4), (0, 4)",
		},
		{
			name: "square_centered_height_ignored",
			spec: figtarget.ShapeSpec{Kind: shape.SQUARE_TYPE, FixedWidth: 4, FixedHeight: 9, Centered: true},
			exp:  "(-2, -2), (2, -2), (2, 2), (-2, 2)",
		},
		{
			name: "offset",
			spec: figtarget.ShapeSpec{
				Kind:           shape.RIGHT_TRIANGLE_TYPE,
				FixedWidth:     6,
				FixedHeight:    5,
				PositionOffset: geo.Point{X: 1, Y: -2},
			},
			exp: "(1, -2), (7, -2), (1, 3)",
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := figshape.Build(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, g.Vertices.ToString())
			assert.False(t, g.OrientationFallback)
		})
	}
}

func TestBuildRotate90MatchesRotation(t *testing.T) {
	t.Parallel()

	base, err := figshape.Build(rightTriangle(geo.Default))
	require.NoError(t, err)
	rotated, err := figshape.Build(rightTriangle(geo.Rotate90))
	require.NoError(t, err)

	center := geo.NewPoint(3, 2.5)
	for i, p := range base.Vertices {
		exp := geo.Rotate(p, center, math.Pi/2)
		assert.True(t, exp.ApproxEquals(rotated.Vertices[i], 1e-9), "%s != %s", exp.ToString(), rotated.Vertices[i].ToString())
	}
}

func TestBuildArity(t *testing.T) {
	t.Parallel()

	for _, k := range shape.Kinds {
		for _, o := range geo.Orientations {
			g, err := figshape.Build(figtarget.ShapeSpec{Kind: k, FixedWidth: 3, FixedHeight: 2, Orientation: o})
			require.NoError(t, err)

			exp := 3
			if k == shape.SQUARE_TYPE {
				exp = 4
			}
			assert.Len(t, g.Vertices, exp, "%s %s", k, o)
			assert.Len(t, g.Polygon, exp, "%s %s", k, o)
		}
	}
}

func TestBuildFallback(t *testing.T) {
	t.Parallel()

	g, err := figshape.Build(figtarget.ShapeSpec{Kind: shape.SQUARE_TYPE, FixedWidth: 2, Orientation: geo.Rotate90})
	require.NoError(t, err)
	assert.True(t, g.OrientationFallback)
	assert.Equal(t, geo.Default, g.Orientation)

	g, err = figshape.Build(figtarget.ShapeSpec{Kind: shape.ISOSCELES_TRIANGLE_TYPE, FixedWidth: 6, FixedHeight: 4, Orientation: geo.Flip})
	require.NoError(t, err)
	assert.True(t, g.OrientationFallback)
	assert.Equal(t, "(3, 4), (0, 0), (6, 0)", g.Vertices.ToString())
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		spec figtarget.ShapeSpec
		exp  error
	}{
		{
			name: "zero_width",
			spec: figtarget.ShapeSpec{Kind: shape.RIGHT_TRIANGLE_TYPE, FixedWidth: 0, FixedHeight: 5},
			exp:  figshape.ErrInvalidDimension,
		},
		{
			name: "negative_height",
			spec: figtarget.ShapeSpec{Kind: shape.ISOSCELES_TRIANGLE_TYPE, FixedWidth: 3, FixedHeight: -1},
			exp:  figshape.ErrInvalidDimension,
		},
		{
			name: "nan_width",
			spec: figtarget.ShapeSpec{Kind: shape.RIGHT_TRIANGLE_TYPE, FixedWidth: math.NaN(), FixedHeight: 5},
			exp:  figshape.ErrInvalidDimension,
		},
		{
			name: "inf_height",
			spec: figtarget.ShapeSpec{Kind: shape.RIGHT_TRIANGLE_TYPE, FixedWidth: 1, FixedHeight: math.Inf(1)},
			exp:  figshape.ErrInvalidDimension,
		},
		{
			name: "negative_square_height",
			spec: figtarget.ShapeSpec{Kind: shape.SQUARE_TYPE, FixedWidth: 1, FixedHeight: -1},
			exp:  figshape.ErrInvalidDimension,
		},
		{
			name: "unknown_kind",
			spec: figtarget.ShapeSpec{Kind: "Pentagon", FixedWidth: 1, FixedHeight: 1},
			exp:  figshape.ErrUnsupportedShape,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := figshape.Build(tc.spec)
			assert.ErrorIs(t, err, tc.exp)
			assert.Nil(t, g)
		})
	}
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()

	spec := figtarget.ShapeSpec{
		Kind:               shape.ISOSCELES_TRIANGLE_TYPE,
		FixedWidth:         5.3,
		FixedHeight:        4.1,
		Orientation:        geo.Rotate270,
		PositionOffset:     geo.Point{X: 0.3, Y: 0.7},
		ShowHeight:         true,
		ShowEqualSideMarks: true,
	}
	g1, err := figshape.Build(spec)
	require.NoError(t, err)
	g2, err := figshape.Build(spec)
	require.NoError(t, err)
	assert.Equal(t, g1, g2)
}

func TestExtraSegments(t *testing.T) {
	t.Parallel()

	g, err := figshape.Build(figtarget.ShapeSpec{
		Kind:               shape.ISOSCELES_TRIANGLE_TYPE,
		FixedWidth:         6,
		FixedHeight:        4,
		ShowHeight:         true,
		ShowEqualSideMarks: true,
	})
	require.NoError(t, err)
	require.Len(t, g.ExtraSegments, 3)

	height := g.ExtraSegments[0]
	assert.Equal(t, figtarget.SegmentHeight, height.Kind)
	assert.Equal(t, geo.Point{X: 3, Y: 4}, height.Start)
	assert.Equal(t, geo.Point{X: 3, Y: 0}, height.End)

	legs := [][2]int{{0, 1}, {0, 2}}
	for i, mark := range g.ExtraSegments[1:] {
		assert.Equal(t, figtarget.SegmentHashMark, mark.Kind)

		leg := geo.NewSegment(g.Vertices[legs[i][0]], g.Vertices[legs[i][1]])
		markSeg := geo.NewSegment(&mark.Start, &mark.End)
		assert.InDelta(t, 0.4, markSeg.Length(), 1e-9)
		assert.True(t, markSeg.Midpoint().ApproxEquals(leg.Midpoint(), 1e-9))
		assert.InDelta(t, 0, markSeg.ToVector().Dot(leg.ToVector()), 1e-9)
	}
}

func TestSquareHashMarks(t *testing.T) {
	t.Parallel()

	g, err := figshape.Build(figtarget.ShapeSpec{
		Kind:               shape.SQUARE_TYPE,
		FixedWidth:         4,
		ShowHeight:         true,
		ShowEqualSideMarks: true,
	})
	require.NoError(t, err)
	// squares have no height line
	assert.Len(t, g.ExtraSegments, 4)
	for _, s := range g.ExtraSegments {
		assert.Equal(t, figtarget.SegmentHashMark, s.Kind)
	}
}
