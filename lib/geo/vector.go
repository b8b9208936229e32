package geo

import (
	"math"
)

// A N-Dimensional Vector with components (x, y, z, ...) based on the origin
type Vector []float64

// New Vector from components
func NewVector(components ...float64) Vector {
	return components
}

// New Vector of length pointing at angleInRadians, measured counter-clockwise from +x
func NewVectorFromAngle(length float64, angleInRadians float64) Vector {
	return NewVector(
		length*math.Cos(angleInRadians),
		length*math.Sin(angleInRadians),
	)
}

func (a Vector) Add(b Vector) Vector {
	c := []float64{}
	for i := 0; i < len(a); i++ {
		c = append(c, a[i]+b[i])
	}
	return c
}

func (a Vector) Minus(b Vector) Vector {
	c := []float64{}
	for i := 0; i < len(a); i++ {
		c = append(c, a[i]-b[i])
	}
	return c
}

func (a Vector) Multiply(v float64) Vector {
	c := []float64{}
	for i := 0; i < len(a); i++ {
		c = append(c, a[i]*v)
	}
	return c
}

func (a Vector) Dot(b Vector) float64 {
	sum := 0.0
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func (a Vector) Length() float64 {
	sum := 0.0
	for _, comp := range a {
		sum += comp * comp
	}
	return math.Sqrt(sum)
}

// Creates an unit Vector pointing in the same direction of this Vector.
// A zero-length Vector stays a zero Vector.
func (a Vector) Unit() Vector {
	l := a.Length()
	if l < PRECISION {
		return make(Vector, len(a))
	}
	return a.Multiply(1 / l)
}

// Perpendicular returns the unit Vector rotated 90° counter-clockwise, (-y, x) normalized.
func (a Vector) Perpendicular() Vector {
	return NewVector(-a[1], a[0]).Unit()
}

// Angle returns atan2(y, x)
func (a Vector) Angle() float64 {
	return math.Atan2(a[1], a[0])
}

func (a Vector) ToPoint() *Point {
	return &Point{a[0], a[1]}
}

// return the line (x1,y1) -> (x2,y2) rotated 90% counter-clockwise (left)
func getNormalVector(x1, y1, x2, y2 float64) (float64, float64) {
	return y1 - y2, x2 - x1
}

func GetUnitNormalVector(x1, y1, x2, y2 float64) (float64, float64) {
	normalX, normalY := getNormalVector(x1, y1, x2, y2)
	length := EuclideanDistance(x1, y1, x2, y2)
	if length < PRECISION {
		return 0, 0
	}
	return normalX / length, normalY / length
}
