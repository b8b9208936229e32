package shape

import (
	"oss.terrastruct.com/mathfig/lib/geo"
)

// vertex order: bottom left, bottom right, top right, top left
type shapeSquare struct {
	*baseShape
	centered bool
}

var squareSides = sideTable{
	geo.Default: {
		SideBase:     {0, 1},
		SideHeight:   {1, 2},
		SideRightLeg: {1, 2},
		SideLeftLeg:  {3, 0},
	},
}

// NewSquare ignores any height: all sides are width long.
// A centered square has its center on the origin instead of its bottom left corner.
func NewSquare(width float64, centered bool) Shape {
	return shapeSquare{
		baseShape: &baseShape{
			Type:   SQUARE_TYPE,
			Width:  width,
			Height: width,
		},
		centered: centered,
	}
}

func (s shapeSquare) Arity() int {
	return 4
}

func (s shapeSquare) CanonicalVertices() geo.Points {
	ps := geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(s.Width, 0),
		geo.NewPoint(s.Width, s.Width),
		geo.NewPoint(0, s.Width),
	}
	if s.centered {
		return ps.Translate(-s.Width/2, -s.Width/2)
	}
	return ps
}

func (s shapeSquare) SideIndices(side Side, o geo.Orientation) (int, int, bool) {
	return squareSides.lookup(side, o)
}

func (s shapeSquare) Sides() []Side {
	return []Side{SideBase, SideHeight, SideLeftLeg, SideRightLeg}
}

func (s shapeSquare) EqualSides() [][2]int {
	return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
}
