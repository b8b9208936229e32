package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistanceTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5., NewPoint(0, 0).DistanceTo(NewPoint(3, 4)))
	assert.Equal(t, 0., NewPoint(1, 1).DistanceTo(NewPoint(1, 1)))
}

func TestAddVector(t *testing.T) {
	start := &Point{1.5, 5.3}
	c := NewVector(-3.5, -2.3)
	p2 := start.AddVector(c)

	if !p2.ApproxEquals(NewPoint(-2, 3), 1e-12) {
		t.Fatalf("Expected resulting point to be (-2, 3), got %+v", p2)
	}
}

func TestVectorTo(t *testing.T) {
	p1 := &Point{1.5, 5.3}
	p2 := &Point{-2, 3}
	c := p1.VectorTo(p2)
	if !c.equals(NewVector(-3.5, -2.3)) {
		t.Fatalf("Expected Vector to be (-3.5, -2.3), got %v", c)
	}

	c = Subtract(p1, p2)
	if !c.equals(NewVector(3.5, 2.3)) {
		t.Fatalf("Expected Vector to be (3.5, 2.3), got %v", c)
	}
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(NewPoint(0, 0), NewPoint(6, 0))
	assert.Equal(t, Point{3, 0}, *m)

	m = Midpoint(NewPoint(-1, 4), NewPoint(3, -2))
	assert.Equal(t, Point{1, 1}, *m)
}

func TestRotate(t *testing.T) {
	p := Rotate(NewPoint(1, 0), NewPoint(0, 0), math.Pi/2)
	assert.True(t, p.ApproxEquals(NewPoint(0, 1), 1e-12), "got %v", p.ToString())

	p = Rotate(NewPoint(6, 0), NewPoint(3, 2.5), math.Pi/2)
	assert.True(t, p.ApproxEquals(NewPoint(5.5, 5.5), 1e-12), "got %v", p.ToString())

	p = Rotate(NewPoint(2, 2), NewPoint(2, 2), 1.234)
	assert.True(t, p.ApproxEquals(NewPoint(2, 2), 1e-12), "rotating the center must not move it")
}

func TestPointsCentroid(t *testing.T) {
	ps := Points{NewPoint(0, 0), NewPoint(6, 0), NewPoint(3, 5)}
	c := ps.Centroid()
	assert.True(t, c.ApproxEquals(NewPoint(3, 5.0/3), 1e-12), "got %v", c.ToString())

	assert.Equal(t, Point{0, 0}, *Points{}.Centroid())
}

func TestPointsBoundingBox(t *testing.T) {
	ps := Points{NewPoint(0, 0), NewPoint(6, 0), NewPoint(0, 5)}
	min, max := ps.BoundingBox()
	assert.Equal(t, Point{0, 0}, *min)
	assert.Equal(t, Point{6, 5}, *max)
	assert.Equal(t, Point{3, 2.5}, *ps.Center())
}

func TestPointsCopyIsDeep(t *testing.T) {
	ps := Points{NewPoint(1, 2)}
	cp := ps.Copy()
	cp[0].X = 10
	assert.Equal(t, 1.0, ps[0].X)
	assert.True(t, Points(nil).Copy() == nil)
}

func TestPointsEquals(t *testing.T) {
	a := Points{NewPoint(1, 2), NewPoint(3, 4)}
	b := Points{NewPoint(1, 2), NewPoint(3, 4)}
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(Points{NewPoint(3, 4), NewPoint(1, 2)}), "order matters")
	assert.False(t, a.Equals(b[:1]))
	assert.True(t, a.ApproxEquals(Points{NewPoint(1+1e-12, 2), NewPoint(3, 4-1e-12)}, 1e-9))
}
