// Package figlabel places side labels outside a shape.
package figlabel

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/mathfig/figshape"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/label"
	"oss.terrastruct.com/mathfig/lib/shape"
)

var ErrUnsupportedSide = errors.New("unsupported side")

// Base label offsets per shape kind, in scene units.
const (
	RIGHT_TRIANGLE_OFFSET     = 0.5
	ISOSCELES_TRIANGLE_OFFSET = 0.5
	SQUARE_OFFSET             = 0.6
)

func DefaultOffsets(kind shape.Kind) label.Offsets {
	switch kind {
	case shape.SQUARE_TYPE:
		return label.NewOffsets(SQUARE_OFFSET)
	case shape.ISOSCELES_TRIANGLE_TYPE:
		return label.NewOffsets(ISOSCELES_TRIANGLE_OFFSET)
	default:
		return label.NewOffsets(RIGHT_TRIANGLE_OFFSET)
	}
}

type Options struct {
	// nil uses DefaultOffsets for the kind
	Offsets *label.Offsets
}

func (opts *Options) offsets(kind shape.Kind) label.Offsets {
	if opts == nil || opts.Offsets == nil {
		return DefaultOffsets(kind)
	}
	return *opts.Offsets
}

// Place computes the anchor of a label naming side on the shape drawn by vertices.
// o must be the orientation the vertices were actually laid out in.
func Place(vertices geo.Points, kind shape.Kind, o geo.Orientation, side shape.Side, text string, opts *Options) (figtarget.LabelAnchor, error) {
	s, err := shape.NewShape(kind, 1, 1)
	if err != nil {
		return figtarget.LabelAnchor{}, fmt.Errorf("%w: %v", figshape.ErrUnsupportedShape, err)
	}
	i, j, ok := s.SideIndices(side, o)
	if !ok {
		return figtarget.LabelAnchor{}, fmt.Errorf("%w: %s has no %s", ErrUnsupportedSide, kind, side)
	}
	if i >= len(vertices) || j >= len(vertices) {
		return figtarget.LabelAnchor{}, fmt.Errorf("%s needs %d vertices, got %d", kind, s.Arity(), len(vertices))
	}

	a, b := vertices[i], vertices[j]
	centroid := vertices.Centroid()
	offset := opts.offsets(kind).For(text)

	return figtarget.LabelAnchor{
		Position: *label.OutsidePoint(a, b, centroid, offset),
		Text:     text,
		Side:     side,
		Anchor:   label.AnchorFor(label.OutwardNormal(a, b, centroid)),
	}, nil
}

// PlaceAll places every label in order. Labels sharing a side are not merged.
func PlaceAll(g *figshape.Geometry, labels []figtarget.LabelText, opts *Options) ([]figtarget.LabelAnchor, error) {
	out := make([]figtarget.LabelAnchor, 0, len(labels))
	for _, lt := range labels {
		a, err := Place(g.Vertices, g.Kind, g.Orientation, lt.Side, lt.Text, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
