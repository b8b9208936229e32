package geo

import (
	"fmt"
	"math"
	"strings"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// ApproxEquals compares within tolerance e on both axes
func (p1 *Point) ApproxEquals(p2 *Point, e float64) bool {
	if p1 == nil || p2 == nil {
		return p1 == p2
	}
	return PrecisionCompare(p1.X, p2.X, e) == 0 && PrecisionCompare(p1.Y, p2.Y, e) == 0
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

type Points []*Point

func (ps Points) Copy() Points {
	if ps == nil {
		return nil
	}
	out := make(Points, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Copy())
	}
	return out
}

// Equals compares point by point, in order
func (ps Points) Equals(other Points) bool {
	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if !ps[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

func (ps Points) ApproxEquals(other Points, e float64) bool {
	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if !ps[i].ApproxEquals(other[i], e) {
			return false
		}
	}
	return true
}

// Centroid is the mean of the points, (0, 0) for an empty set
func (ps Points) Centroid() *Point {
	if len(ps) == 0 {
		return NewPoint(0, 0)
	}
	c := NewPoint(0, 0)
	for _, p := range ps {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(ps))
	c.Y /= float64(len(ps))
	return c
}

// BoundingBox returns the min and max corners of the points
func (ps Points) BoundingBox() (min, max *Point) {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, p := range ps {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return NewPoint(minX, minY), NewPoint(maxX, maxY)
}

// Center is the center of the bounding box, not the centroid
func (ps Points) Center() *Point {
	if len(ps) == 0 {
		return NewPoint(0, 0)
	}
	min, max := ps.BoundingBox()
	return Midpoint(min, max)
}

func (ps Points) Translate(dx, dy float64) Points {
	out := make(Points, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewPoint(p.X+dx, p.Y+dy))
	}
	return out
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (points Points) ToString() string {
	strs := make([]string, 0, len(points))
	for _, p := range points {
		strs = append(strs, p.ToString())
	}
	return strings.Join(strs, ", ")
}

// Moves the given point by Vector
func (start *Point) AddVector(v Vector) *Point {
	return start.ToVector().Add(v).ToPoint()
}

// Creates a Vector of the size between start and endpoint, pointing to endpoint
func (start *Point) VectorTo(endpoint *Point) Vector {
	return endpoint.ToVector().Minus(start.ToVector())
}

// Creates a Vector pointing to point
func (endpoint *Point) ToVector() Vector {
	return []float64{endpoint.X, endpoint.Y}
}

func (p *Point) DistanceTo(other *Point) float64 {
	return EuclideanDistance(p.X, p.Y, other.X, other.Y)
}

// point t% of the way between a and b
func (a *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

func Midpoint(a, b *Point) *Point {
	return a.Interpolate(b, 0.5)
}

// Subtract returns the Vector a - b
func Subtract(a, b *Point) Vector {
	return b.VectorTo(a)
}

func Distance(a, b *Point) float64 {
	return a.DistanceTo(b)
}

// Rotate rotates p about center by radians, counter-clockwise with y up
func Rotate(p, center *Point, radians float64) *Point {
	sin, cos := math.Sincos(radians)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return NewPoint(
		center.X+dx*cos-dy*sin,
		center.Y+dx*sin+dy*cos,
	)
}
