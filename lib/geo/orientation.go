package geo

import (
	"fmt"
	"strings"
)

// Orientation is one of the fixed poses a shape can be drawn in.
// Rotations are counter-clockwise with y up.
type Orientation int

const (
	Default Orientation = iota
	Rotate90
	Rotate180
	Rotate270
	Flip
	FlipVertical
	FlipBoth
)

var Orientations = []Orientation{
	Default,
	Rotate90,
	Rotate180,
	Rotate270,
	Flip,
	FlipVertical,
	FlipBoth,
}

func (o Orientation) String() string {
	switch o {
	case Default:
		return "default"
	case Rotate90:
		return "rotate90"
	case Rotate180:
		return "rotate180"
	case Rotate270:
		return "rotate270"
	case Flip:
		return "flip"
	case FlipVertical:
		return "flipVertical"
	case FlipBoth:
		return "flipBoth"
	default:
		return ""
	}
}

// OrientationFromString is lenient about case, dashes and underscores.
// The empty string is Default.
func OrientationFromString(s string) (Orientation, error) {
	norm := strings.ToLower(s)
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, "_", "")
	switch norm {
	case "", "default", "none":
		return Default, nil
	case "rotate90":
		return Rotate90, nil
	case "rotate180":
		return Rotate180, nil
	case "rotate270":
		return Rotate270, nil
	case "flip", "fliphorizontal":
		return Flip, nil
	case "flipvertical":
		return FlipVertical, nil
	case "flipboth":
		return FlipBoth, nil
	}
	return Default, fmt.Errorf("unknown orientation %q", s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	s := o.String()
	if s == "" {
		return nil, fmt.Errorf("unknown orientation %d", int(o))
	}
	return []byte(s), nil
}

func (o *Orientation) UnmarshalText(b []byte) error {
	parsed, err := OrientationFromString(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Matrix returns the 2x2 transform applied about the bounding box center.
func (o Orientation) Matrix() [2][2]float64 {
	switch o {
	case Rotate90:
		return [2][2]float64{{0, -1}, {1, 0}}
	case Rotate180:
		return [2][2]float64{{-1, 0}, {0, -1}}
	case Rotate270:
		return [2][2]float64{{0, 1}, {-1, 0}}
	case Flip:
		return [2][2]float64{{-1, 0}, {0, 1}}
	case FlipVertical:
		return [2][2]float64{{1, 0}, {0, -1}}
	case FlipBoth:
		return [2][2]float64{{-1, 0}, {0, -1}}
	default:
		return [2][2]float64{{1, 0}, {0, 1}}
	}
}

// Orient returns new points with o applied about the bounding box center of ps.
// Vertex order is preserved.
func Orient(ps Points, o Orientation) Points {
	if len(ps) == 0 {
		return Points{}
	}
	if o == Default {
		return ps.Copy()
	}
	c := ps.Center()
	m := o.Matrix()
	out := make(Points, 0, len(ps))
	for _, p := range ps {
		dx := p.X - c.X
		dy := p.Y - c.Y
		out = append(out, NewPoint(
			c.X+m[0][0]*dx+m[0][1]*dy,
			c.Y+m[1][0]*dx+m[1][1]*dy,
		))
	}
	return out
}
