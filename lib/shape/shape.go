package shape

import (
	"fmt"

	"oss.terrastruct.com/mathfig/lib/geo"
)

// Kind is the family a shape belongs to.
type Kind string

const (
	RIGHT_TRIANGLE_TYPE     Kind = "RightTriangle"
	ISOSCELES_TRIANGLE_TYPE Kind = "IsoscelesTriangle"
	SQUARE_TYPE             Kind = "Square"

	// fraction of the shorter fixed dimension used for equal-side tick marks
	HASH_MARK_RATIO = 0.1
)

var Kinds = []Kind{
	RIGHT_TRIANGLE_TYPE,
	ISOSCELES_TRIANGLE_TYPE,
	SQUARE_TYPE,
}

func IsKind(k Kind) bool {
	for _, k2 := range Kinds {
		if k == k2 {
			return true
		}
	}
	return false
}

// Side identifies which geometric side of a shape a label is about.
// The vertex pair behind a Side depends on the kind and the orientation.
type Side string

const (
	SideBase       Side = "base"
	SideHeight     Side = "height"
	SideHypotenuse Side = "hypotenuse"
	SideLeftLeg    Side = "leftLeg"
	SideRightLeg   Side = "rightLeg"
)

// SideFromString accepts "leg" as an alias of "height".
func SideFromString(s string) (Side, error) {
	switch s {
	case "base":
		return SideBase, nil
	case "height", "leg":
		return SideHeight, nil
	case "hypotenuse":
		return SideHypotenuse, nil
	case "leftLeg", "left_leg", "leftleg":
		return SideLeftLeg, nil
	case "rightLeg", "right_leg", "rightleg":
		return SideRightLeg, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

func (s *Side) UnmarshalText(b []byte) error {
	parsed, err := SideFromString(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Shape interface {
	Is(kind Kind) bool
	GetType() Kind

	// number of vertices
	Arity() int

	// vertices before any orientation or offset is applied
	CanonicalVertices() geo.Points

	Supports(o geo.Orientation) bool

	// SideIndices resolves a side to a pair of indices into the vertex list for the given orientation
	SideIndices(side Side, o geo.Orientation) (i, j int, ok bool)
	Sides() []Side

	// pairs of vertex indices whose sides are equal in length
	EqualSides() [][2]int

	// HeightFoot returns the segment dropped from the apex onto the base, if the shape has one
	HeightFoot(vertices geo.Points) (*geo.Segment, bool)

	// length of the equal-side tick marks
	HashMarkLength() float64
}

type baseShape struct {
	Type   Kind
	Width  float64
	Height float64
}

func (s baseShape) Is(kind Kind) bool {
	return s.Type == kind
}

func (s baseShape) GetType() Kind {
	return s.Type
}

func (s baseShape) Supports(o geo.Orientation) bool {
	return o == geo.Default
}

func (s baseShape) EqualSides() [][2]int {
	return nil
}

func (s baseShape) HeightFoot(geo.Points) (*geo.Segment, bool) {
	return nil, false
}

func (s baseShape) HashMarkLength() float64 {
	if s.Width < s.Height {
		return s.Width * HASH_MARK_RATIO
	}
	return s.Height * HASH_MARK_RATIO
}

// sideTable is keyed by orientation; a missing orientation means the default entry.
type sideTable map[geo.Orientation]map[Side][2]int

func (t sideTable) lookup(side Side, o geo.Orientation) (int, int, bool) {
	sides, ok := t[o]
	if !ok {
		sides = t[geo.Default]
	}
	pair, ok := sides[side]
	if !ok {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}

func NewShape(kind Kind, width, height float64) (Shape, error) {
	switch kind {
	case RIGHT_TRIANGLE_TYPE:
		return NewRightTriangle(width, height), nil
	case ISOSCELES_TRIANGLE_TYPE:
		return NewIsoscelesTriangle(width, height), nil
	case SQUARE_TYPE:
		return NewSquare(width, false), nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", kind)
	}
}

// ResolveOrientation returns o if the shape supports it and Default otherwise.
func ResolveOrientation(s Shape, o geo.Orientation) (geo.Orientation, bool) {
	if s.Supports(o) {
		return o, true
	}
	return geo.Default, false
}
