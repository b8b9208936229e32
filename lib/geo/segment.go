package geo

import (
	"fmt"
)

type Segment struct {
	Start *Point
	End   *Point
}

func NewSegment(from, to *Point) *Segment {
	return &Segment{from, to}
}

func (s Segment) ToString() string {
	return fmt.Sprintf("%v -> %v", s.Start.ToString(), s.End.ToString())
}

func (segment Segment) Length() float64 {
	return EuclideanDistance(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
}

func (segment Segment) ToVector() Vector {
	return NewVector(segment.End.X-segment.Start.X, segment.End.Y-segment.Start.Y)
}

func (segment Segment) Midpoint() *Point {
	return Midpoint(segment.Start, segment.End)
}

// Normal is the unit normal of the segment, rotated counter-clockwise from its direction.
// Zero for a zero-length segment.
func (segment Segment) Normal() Vector {
	return segment.ToVector().Perpendicular()
}

// Crossing returns a segment of the given length centered on the midpoint
// and perpendicular to this one, e.g. an equal-length tick mark.
// Nil when this segment has no direction.
func (segment Segment) Crossing(length float64) *Segment {
	n := segment.Normal()
	if n.Length() == 0 {
		return nil
	}
	m := segment.Midpoint()
	half := n.Multiply(length / 2)
	return NewSegment(m.AddVector(half.Multiply(-1)), m.AddVector(half))
}
