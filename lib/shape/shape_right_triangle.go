package shape

import (
	"oss.terrastruct.com/mathfig/lib/geo"
)

// vertex order: right angle, end of base, end of height
type shapeRightTriangle struct {
	*baseShape
}

var rightTriangleSides = func() sideTable {
	upright := map[Side][2]int{
		SideBase:       {0, 1},
		SideHeight:     {0, 2},
		SideHypotenuse: {1, 2},
	}
	// quarter turns swap which leg reads as the base
	lying := map[Side][2]int{
		SideBase:       {0, 2},
		SideHeight:     {0, 1},
		SideHypotenuse: {1, 2},
	}
	return sideTable{
		geo.Default:      upright,
		geo.Rotate90:     lying,
		geo.Rotate180:    upright,
		geo.Rotate270:    lying,
		geo.Flip:         upright,
		geo.FlipVertical: upright,
		geo.FlipBoth:     upright,
	}
}()

func NewRightTriangle(width, height float64) Shape {
	return shapeRightTriangle{
		baseShape: &baseShape{
			Type:   RIGHT_TRIANGLE_TYPE,
			Width:  width,
			Height: height,
		},
	}
}

func (s shapeRightTriangle) Arity() int {
	return 3
}

func (s shapeRightTriangle) CanonicalVertices() geo.Points {
	return geo.Points{
		geo.NewPoint(0, 0),
		geo.NewPoint(s.Width, 0),
		geo.NewPoint(0, s.Height),
	}
}

func (s shapeRightTriangle) Supports(o geo.Orientation) bool {
	_, ok := rightTriangleSides[o]
	return ok
}

func (s shapeRightTriangle) SideIndices(side Side, o geo.Orientation) (int, int, bool) {
	return rightTriangleSides.lookup(side, o)
}

func (s shapeRightTriangle) Sides() []Side {
	return []Side{SideBase, SideHeight, SideHypotenuse}
}
