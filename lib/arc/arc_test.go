package arc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/mathfig/lib/geo"
)

func TestAtQuarter(t *testing.T) {
	t.Parallel()

	a := At(geo.NewPoint(0, 0), geo.NewPoint(1, 0), geo.NewPoint(0, 1), 1, 0.5)
	assert.InDelta(t, 1, a.Start.X, 1e-9)
	assert.InDelta(t, 0, a.Start.Y, 1e-9)
	assert.InDelta(t, 0, a.End.X, 1e-9)
	assert.InDelta(t, 1, a.End.Y, 1e-9)
	assert.Equal(t, 1, a.SweepFlag)
	assert.InDelta(t, math.Pi/4, a.MidAngle, 1e-12)
	assert.InDelta(t, 1.5*math.Cos(math.Pi/4), a.LabelPosition.X, 1e-9)
	assert.InDelta(t, 1.5*math.Sin(math.Pi/4), a.LabelPosition.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, a.Angle, 1e-12)

	corner := a.Corner()
	assert.InDelta(t, 1, corner.X, 1e-9)
	assert.InDelta(t, 1, corner.Y, 1e-9)
}

func TestAtReversed(t *testing.T) {
	t.Parallel()

	a := At(geo.NewPoint(0, 0), geo.NewPoint(0, 1), geo.NewPoint(1, 0), 1, 0)
	assert.Equal(t, 0, a.SweepFlag)
	assert.InDelta(t, -math.Pi/2, a.Angle, 1e-12)
	assert.InDelta(t, math.Pi/4, a.MidAngle, 1e-12)
}

func TestAtAcrossBranchCut(t *testing.T) {
	t.Parallel()

	v := geo.NewPoint(0, 0)
	a1 := geo.NewVectorFromAngle(2, 3).ToPoint()
	a2 := geo.NewVectorFromAngle(2, -3).ToPoint()

	a := At(v, a1, a2, 1, 0)
	assert.Equal(t, 1, a.SweepFlag)
	assert.InDelta(t, 2*math.Pi-6, a.Angle, 1e-9)
	// bisector points along -x, inside the narrow angle
	assert.Less(t, a.LabelPosition.X, 0.)
}

func TestInteriorAngles(t *testing.T) {
	t.Parallel()

	polys := []geo.Points{
		{geo.NewPoint(0, 0), geo.NewPoint(6, 0), geo.NewPoint(0, 5)},
		{geo.NewPoint(3, 4), geo.NewPoint(0, 0), geo.NewPoint(6, 0)},
		{geo.NewPoint(5.5, -0.5), geo.NewPoint(5.5, 5.5), geo.NewPoint(0.5, -0.5)},
		{geo.NewPoint(0, 0), geo.NewPoint(4, 0), geo.NewPoint(4, 4), geo.NewPoint(0, 4)},
		{geo.NewPoint(-1, -1), geo.NewPoint(100, 0.5), geo.NewPoint(-1, 0)},
	}
	for _, ps := range polys {
		sum := 0.
		for i := range ps {
			prev := ps[(i+len(ps)-1)%len(ps)]
			next := ps[(i+1)%len(ps)]
			a := At(ps[i], prev, next, 0.8, 0.4)
			assert.Less(t, math.Abs(a.Angle), math.Pi)
			assert.InDelta(t, 0.8, a.Start.DistanceTo(ps[i]), 1e-9)
			assert.InDelta(t, 0.8, a.End.DistanceTo(ps[i]), 1e-9)
			sum += math.Abs(a.Angle)
		}
		// interior angles of a simple polygon sum to (n-2)π
		assert.InDelta(t, float64(len(ps)-2)*math.Pi, sum, 1e-9)
	}
}
