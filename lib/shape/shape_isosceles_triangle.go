package shape

import (
	"oss.terrastruct.com/mathfig/lib/geo"
)

// vertex order: apex, left base, right base
type shapeIsoscelesTriangle struct {
	*baseShape
}

// leftLeg is the leg whose midpoint sits further left, or lower when both share x
var isoscelesTriangleSides = func() sideTable {
	canonicalLegs := map[Side][2]int{
		SideBase:     {1, 2},
		SideLeftLeg:  {0, 1},
		SideRightLeg: {0, 2},
	}
	swappedLegs := map[Side][2]int{
		SideBase:     {1, 2},
		SideLeftLeg:  {0, 2},
		SideRightLeg: {0, 1},
	}
	return sideTable{
		geo.Default:      canonicalLegs,
		geo.Rotate90:     canonicalLegs,
		geo.Rotate180:    swappedLegs,
		geo.Rotate270:    swappedLegs,
		geo.FlipVertical: canonicalLegs,
	}
}()

func NewIsoscelesTriangle(width, height float64) Shape {
	return shapeIsoscelesTriangle{
		baseShape: &baseShape{
			Type:   ISOSCELES_TRIANGLE_TYPE,
			Width:  width,
			Height: height,
		},
	}
}

func (s shapeIsoscelesTriangle) Arity() int {
	return 3
}

func (s shapeIsoscelesTriangle) CanonicalVertices() geo.Points {
	return geo.Points{
		geo.NewPoint(s.Width/2, s.Height),
		geo.NewPoint(0, 0),
		geo.NewPoint(s.Width, 0),
	}
}

func (s shapeIsoscelesTriangle) Supports(o geo.Orientation) bool {
	_, ok := isoscelesTriangleSides[o]
	return ok
}

func (s shapeIsoscelesTriangle) SideIndices(side Side, o geo.Orientation) (int, int, bool) {
	return isoscelesTriangleSides.lookup(side, o)
}

func (s shapeIsoscelesTriangle) Sides() []Side {
	return []Side{SideBase, SideLeftLeg, SideRightLeg}
}

func (s shapeIsoscelesTriangle) EqualSides() [][2]int {
	return [][2]int{{0, 1}, {0, 2}}
}

func (s shapeIsoscelesTriangle) HeightFoot(vertices geo.Points) (*geo.Segment, bool) {
	if len(vertices) != 3 {
		return nil, false
	}
	return geo.NewSegment(vertices[0].Copy(), geo.Midpoint(vertices[1], vertices[2])), true
}
