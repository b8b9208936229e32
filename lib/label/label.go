package label

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"oss.terrastruct.com/mathfig/lib/geo"
)

// Label lengths, in runes, from which labels are pushed further out
const MEDIUM_LABEL_LENGTH = 3
const LONG_LABEL_LENGTH = 5

// Offsets is the step function mapping label length to distance from the side.
type Offsets struct {
	Base   float64 `json:"base"`
	Medium float64 `json:"medium"`
	Long   float64 `json:"long"`

	MediumLength int `json:"mediumLength"`
	LongLength   int `json:"longLength"`
}

func NewOffsets(base float64) Offsets {
	return Offsets{
		Base:         base,
		Medium:       0.2,
		Long:         0.4,
		MediumLength: MEDIUM_LABEL_LENGTH,
		LongLength:   LONG_LABEL_LENGTH,
	}
}

// For returns the offset for text. It never decreases as text gets longer.
// Length is counted in runes after NFC normalization, so "é" counts once however it was typed.
func (o Offsets) For(text string) float64 {
	n := utf8.RuneCountInString(norm.NFC.String(text))
	switch {
	case o.LongLength > 0 && n >= o.LongLength:
		return o.Base + o.Long
	case o.MediumLength > 0 && n >= o.MediumLength:
		return o.Base + o.Medium
	default:
		return o.Base
	}
}

// OutwardNormal is the unit normal of a -> b pointing away from centroid.
// Zero when a and b coincide.
func OutwardNormal(a, b, centroid *geo.Point) geo.Vector {
	normalX, normalY := geo.GetUnitNormalVector(a.X, a.Y, b.X, b.Y)
	if normalX == 0 && normalY == 0 {
		return geo.NewVector(0, 0)
	}
	n := geo.NewVector(normalX, normalY)
	// negative when n points from the midpoint towards the centroid
	if n.Dot(centroid.VectorTo(geo.Midpoint(a, b))) < 0 {
		return n.Multiply(-1)
	}
	return n
}

// OutsidePoint returns the point offset from the midpoint of a -> b, on the side away from centroid.
//
//	          label
//	            │ offset
//	a ──────────m────────── b
//	            │
//	        centroid
//
// A zero-length side gives back its midpoint.
func OutsidePoint(a, b, centroid *geo.Point, offset float64) *geo.Point {
	m := geo.Midpoint(a, b)
	n := OutwardNormal(a, b, centroid)
	return geo.NewPoint(
		chopPrecision(m.X+n[0]*offset),
		chopPrecision(m.Y+n[1]*offset),
	)
}

// Anchor is the horizontal text alignment keeping a label clear of the side it names.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// AnchorFor picks the alignment from the direction the label was pushed in.
// Mostly vertical pushes are centered.
func AnchorFor(direction geo.Vector) Anchor {
	if len(direction) < 2 {
		return AnchorMiddle
	}
	if math.Abs(direction[0]) < 0.5 {
		return AnchorMiddle
	}
	if direction[0] > 0 {
		return AnchorStart
	}
	return AnchorEnd
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}
