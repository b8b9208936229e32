package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendDiagonalLineSegment(t *testing.T) {
	p1 := &Point{0, 0}
	p2 := &Point{3, 1}

	v := p1.VectorTo(p2)
	v = v.Multiply(2)
	p2New := p1.AddVector(v)
	expected := Point{6, 2}
	assert.Equal(t, expected, *p2New)

	v = p2.VectorTo(p1)
	v = v.Multiply(2)
	p1New := p2.AddVector(v)
	expected = Point{-3, -1}
	assert.Equal(t, expected, *p1New)
}

func TestVectorAdd(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, 4)

	c := a.Add(b)

	assert.Truef(t, c.equals(NewVector(4, 6)), "Expected Vector %v to be (4, 6)", c)
}

func TestVectorMinus(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, 4)

	c := a.Minus(b)

	assert.Truef(t, c.equals(NewVector(-2, -2)), "Expected Vector %v to be (-2, -2)", c)
}

func TestVectorLength(t *testing.T) {
	a := NewVector(3, 4)

	assert.Equal(t, 5.0, a.Length())
}

func TestNewVectorFromAngle(t *testing.T) {
	a := NewVectorFromAngle(2, 0)
	assert.Truef(t, a.equals(NewVector(2, 0)), "got %v", a)

	b := NewVectorFromAngle(2, math.Pi/2)
	assert.Truef(t, b.equals(NewVector(0, 2)), "got %v", b)

	c := NewVectorFromAngle(3, math.Pi/3)
	assert.Truef(t, c.equals(NewVector(1.5, 2.59807621135)), "got %v", c)
}

func TestVectorUnit(t *testing.T) {
	a := NewVector(3, 4).Unit()
	expected := NewVector(3.0/5, 4.0/5)
	assert.Truef(t, a.equals(expected), "Expected (%f, %f) Vector, got %v", 3/5.0, 4/5.0, a)
}

func TestVectorUnitOfZero(t *testing.T) {
	a := NewVector(0, 0).Unit()
	assert.Equal(t, 0.0, a[0])
	assert.Equal(t, 0.0, a[1])
	assert.False(t, math.IsNaN(a[0]) || math.IsNaN(a[1]))
}

func TestVectorPerpendicular(t *testing.T) {
	p := NewVector(4, 0).Perpendicular()
	assert.Truef(t, p.equals(NewVector(0, 1)), "got %v", p)

	p = NewVector(0, -2).Perpendicular()
	assert.Truef(t, p.equals(NewVector(1, 0)), "got %v", p)

	p = NewVector(0, 0).Perpendicular()
	assert.Truef(t, p.equals(NewVector(0, 0)), "got %v", p)
}

func TestVectorDot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 11., NewVector(1, 2).Dot(NewVector(3, 4)))
	assert.Equal(t, 0., NewVector(1, 0).Dot(NewVector(0, 5)))
	assert.Equal(t, -1., NewVector(1, 0).Dot(NewVector(-1, 0)))
}

func TestGetUnitNormalVector(t *testing.T) {
	x, y := GetUnitNormalVector(0, 0, 2, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)

	x, y = GetUnitNormalVector(1, 1, 1, 1)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestVectorEquals(t *testing.T) {
	a := NewVector(1, 2)
	assert.True(t, a.equals(a), "Expected Vector to be equal to itself")
	assert.True(t, a.equals(NewVector(1.0, 2.0)), "Expected Vector to be equal to different Vector with same components")
	assert.False(t, a.equals(NewVector(1, 2, 3)), "Expected Vector to be different if different component count")
	assert.False(t, a.equals(NewVector(2, 2)), "Expected Vector to be different if components are different")
}

func (a Vector) equals(other Vector) bool {
	if len(a) != len(other) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if PrecisionCompare(a[i], other[i], 1e-4) != 0 {
			return false
		}
	}
	return true
}
