// Package arc computes interior angle arcs at polygon vertices.
package arc

import (
	"oss.terrastruct.com/mathfig/lib/geo"
)

// Arc is the arc drawn inside the angle formed at a vertex by two adjacent vertices.
// Angles are in radians, counter-clockwise with y up.
type Arc struct {
	Vertex *geo.Point `json:"vertex"`
	Start  *geo.Point `json:"start"`
	End    *geo.Point `json:"end"`
	// 1 when the arc goes counter-clockwise from Start to End
	SweepFlag int `json:"sweepFlag"`
	// signed sweep from Start to End, in (-π, π]
	Angle         float64    `json:"angle"`
	MidAngle      float64    `json:"midAngle"`
	Radius        float64    `json:"radius"`
	LabelPosition *geo.Point `json:"labelPosition"`
}

// At returns the arc of the given radius at vertex, swept from adjacent1 to adjacent2
// the short way around. The label sits labelGap beyond the arc on its bisector.
func At(vertex, adjacent1, adjacent2 *geo.Point, radius, labelGap float64) Arc {
	angle1 := vertex.VectorTo(adjacent1).Angle()
	angle2 := vertex.VectorTo(adjacent2).Angle()

	diff := geo.NormalizeAngle(angle2 - angle1)
	sweepFlag := 0
	if diff > 0 {
		sweepFlag = 1
	}
	midAngle := angle1 + diff/2

	return Arc{
		Vertex:        vertex.Copy(),
		Start:         vertex.AddVector(geo.NewVectorFromAngle(radius, angle1)),
		End:           vertex.AddVector(geo.NewVectorFromAngle(radius, angle2)),
		SweepFlag:     sweepFlag,
		Angle:         diff,
		MidAngle:      midAngle,
		Radius:        radius,
		LabelPosition: vertex.AddVector(geo.NewVectorFromAngle(radius+labelGap, midAngle)),
	}
}

// Corner is the far corner of the square marker spanned by Start and End.
// Only meaningful for right angles.
func (a Arc) Corner() *geo.Point {
	return geo.NewPoint(
		a.Start.X+a.End.X-a.Vertex.X,
		a.Start.Y+a.End.Y-a.Vertex.Y,
	)
}
