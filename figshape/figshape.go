// Package figshape turns a shape spec into positioned vertices and decoration segments.
package figshape

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/shape"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrUnsupportedShape = errors.New("unsupported shape")
)

// Geometry is the positioned outline of a shape before any annotation.
type Geometry struct {
	Kind shape.Kind
	// orientation actually applied
	Orientation geo.Orientation
	// set when the requested orientation is not drawn for Kind and Default was used instead
	OrientationFallback bool

	Vertices      geo.Points
	Polygon       []int
	ExtraSegments []figtarget.Segment

	Shape shape.Shape
}

// Centroid is the mean of the vertices.
func (g *Geometry) Centroid() *geo.Point {
	return g.Vertices.Centroid()
}

// Adjacent returns the vertices before and after vertex i along the polygon.
func (g *Geometry) Adjacent(i int) (prev, next *geo.Point) {
	n := len(g.Vertices)
	return g.Vertices[(i+n-1)%n], g.Vertices[(i+1)%n]
}

// Build validates spec and lays out its vertices: canonical pose, orientation, then offset.
// No partial geometry is returned with an error.
func Build(spec figtarget.ShapeSpec) (*Geometry, error) {
	err := validateDimension("fixedWidth", spec.FixedWidth)
	if err != nil {
		return nil, err
	}
	if spec.Kind != shape.SQUARE_TYPE || spec.FixedHeight != 0 {
		err = validateDimension("fixedHeight", spec.FixedHeight)
		if err != nil {
			return nil, err
		}
	}

	s, err := NewShape(spec)
	if err != nil {
		return nil, err
	}

	o, ok := shape.ResolveOrientation(s, spec.Orientation)

	vertices := geo.Orient(s.CanonicalVertices(), o)
	vertices = vertices.Translate(spec.PositionOffset.X, spec.PositionOffset.Y)

	g := &Geometry{
		Kind:                s.GetType(),
		Orientation:         o,
		OrientationFallback: !ok,
		Vertices:            vertices,
		Polygon:             polygon(s.Arity()),
		Shape:               s,
	}
	g.ExtraSegments = extraSegments(s, spec, vertices)
	return g, nil
}

// NewShape resolves the spec's kind to its shape family.
func NewShape(spec figtarget.ShapeSpec) (shape.Shape, error) {
	switch spec.Kind {
	case shape.SQUARE_TYPE:
		return shape.NewSquare(spec.FixedWidth, spec.Centered), nil
	case shape.RIGHT_TRIANGLE_TYPE, shape.ISOSCELES_TRIANGLE_TYPE:
		return shape.NewShape(spec.Kind, spec.FixedWidth, spec.FixedHeight)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedShape, spec.Kind)
	}
}

func validateDimension(name string, v float64) error {
	if !geo.IsFinite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidDimension, name, v)
	}
	return nil
}

func polygon(arity int) []int {
	out := make([]int, 0, arity)
	for i := 0; i < arity; i++ {
		out = append(out, i)
	}
	return out
}

func extraSegments(s shape.Shape, spec figtarget.ShapeSpec, vertices geo.Points) []figtarget.Segment {
	var segs []figtarget.Segment
	if spec.ShowHeight {
		if foot, ok := s.HeightFoot(vertices); ok {
			segs = append(segs, newSegment(figtarget.SegmentHeight, foot))
		}
	}
	if spec.ShowEqualSideMarks {
		length := s.HashMarkLength()
		for _, pair := range s.EqualSides() {
			side := geo.NewSegment(vertices[pair[0]], vertices[pair[1]])
			if mark := side.Crossing(length); mark != nil {
				segs = append(segs, newSegment(figtarget.SegmentHashMark, mark))
			}
		}
	}
	return segs
}

func newSegment(kind figtarget.SegmentKind, s *geo.Segment) figtarget.Segment {
	return figtarget.Segment{
		Kind:  kind,
		Start: *s.Start.Copy(),
		End:   *s.End.Copy(),
	}
}
