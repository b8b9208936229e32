// Package figarc annotates shape vertices with angle arcs and right-angle markers.
package figarc

import (
	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figshape"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/arc"
	"oss.terrastruct.com/mathfig/lib/shape"
)

// Annotate returns the arcs to draw on g, ordered by vertex.
// A right triangle always gets an unlabeled marker at its right angle, which no flag can replace.
func Annotate(g *figshape.Geometry, spec figtarget.ShapeSpec, ctx figcontext.Context) []figtarget.AngleArc {
	var arcs []figtarget.AngleArc
	rightAngle := -1
	if g.Kind == shape.RIGHT_TRIANGLE_TYPE {
		rightAngle = 0
		arcs = append(arcs, At(g, rightAngle, ctx.MarkerRadius, 0, "", true))
	}

	for i, on := range spec.AngleFlags {
		if !on || i >= len(g.Vertices) || i == rightAngle {
			continue
		}
		text := ""
		if i < len(spec.AngleLabels) {
			text = spec.AngleLabels[i]
		}
		arcs = append(arcs, At(g, i, ctx.ArcRadius, ctx.LabelGap, text, false))
	}
	return arcs
}

// At computes the interior arc at vertex i of g.
func At(g *figshape.Geometry, i int, radius, labelGap float64, text string, marker bool) figtarget.AngleArc {
	prev, next := g.Adjacent(i)
	a := arc.At(g.Vertices[i], prev, next, radius, labelGap)
	out := figtarget.AngleArc{
		VertexIndex:   i,
		Start:         *a.Start,
		End:           *a.End,
		SweepFlag:     a.SweepFlag,
		Angle:         a.Angle,
		MidAngle:      a.MidAngle,
		Radius:        a.Radius,
		LabelPosition: *a.LabelPosition,
		LabelText:     text,
		Marker:        marker,
	}
	if marker {
		out.LabelPosition = *a.Corner()
	}
	return out
}
