// Package figtarget is the renderer agnostic output of the figure engine.
// Everything in it is plain data and serializes to JSON.
package figtarget

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"

	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/label"
	"oss.terrastruct.com/mathfig/lib/shape"
)

// ShapeSpec describes one figure to draw.
// FixedWidth and FixedHeight are the only values that shape vertex geometry;
// the mathematical values a lesson shows only ever appear inside label text.
type ShapeSpec struct {
	Kind           shape.Kind      `json:"kind"`
	FixedWidth     float64         `json:"fixedWidth"`
	FixedHeight    float64         `json:"fixedHeight"`
	Orientation    geo.Orientation `json:"orientation"`
	PositionOffset geo.Point       `json:"positionOffset"`
	// Square only: centre on the origin instead of anchoring the bottom left corner
	Centered bool `json:"centered,omitempty"`

	Labels []LabelText `json:"labels,omitempty"`

	ShowHeight         bool `json:"showHeight,omitempty"`
	ShowEqualSideMarks bool `json:"showEqualSideMarks,omitempty"`

	// indexed by vertex
	AngleFlags  []bool   `json:"angleFlags,omitempty"`
	AngleLabels []string `json:"angleLabels,omitempty"`
}

type LabelText struct {
	Side shape.Side `json:"side"`
	Text string     `json:"text"`
}

type LabelAnchor struct {
	Position geo.Point    `json:"position"`
	Text     string       `json:"text"`
	Side     shape.Side   `json:"side"`
	Anchor   label.Anchor `json:"anchor"`
}

// AngleArc is an interior angle arc. Marker arcs are right-angle squares and carry no label.
type AngleArc struct {
	VertexIndex   int       `json:"vertexIndex"`
	Start         geo.Point `json:"start"`
	End           geo.Point `json:"end"`
	SweepFlag     int       `json:"sweepFlag"`
	Angle         float64   `json:"angle"`
	MidAngle      float64   `json:"midAngle"`
	Radius        float64   `json:"radius"`
	LabelPosition geo.Point `json:"labelPosition"`
	LabelText     string    `json:"labelText,omitempty"`
	Marker        bool      `json:"marker,omitempty"`
}

// Corner is the fourth point of a right-angle marker square.
func (a AngleArc) Corner(vertex geo.Point) geo.Point {
	return geo.Point{
		X: a.Start.X + a.End.X - vertex.X,
		Y: a.Start.Y + a.End.Y - vertex.Y,
	}
}

type SegmentKind string

const (
	SegmentHeight   SegmentKind = "height"
	SegmentHashMark SegmentKind = "hashMark"
)

type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Start geo.Point   `json:"start"`
	End   geo.Point   `json:"end"`
}

// BoundingBox is a frame in y-up coordinates.
type BoundingBox struct {
	XMin float64 `json:"xMin"`
	YMax float64 `json:"yMax"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
}

func NewBoundingBox(ps geo.Points) BoundingBox {
	if len(ps) == 0 {
		return BoundingBox{}
	}
	min, max := ps.BoundingBox()
	return BoundingBox{XMin: min.X, YMax: max.Y, XMax: max.X, YMin: min.Y}
}

func (b BoundingBox) Width() float64 {
	return b.XMax - b.XMin
}

func (b BoundingBox) Height() float64 {
	return b.YMax - b.YMin
}

func (b BoundingBox) Center() geo.Point {
	return geo.Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

func (b BoundingBox) Contains(p geo.Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Array is the box in board order: [xMin, yMax, xMax, yMin].
func (b BoundingBox) Array() [4]float64 {
	return [4]float64{b.XMin, b.YMax, b.XMax, b.YMin}
}

// Expand grows the box by pad on every side.
func (b BoundingBox) Expand(pad float64) BoundingBox {
	return BoundingBox{
		XMin: b.XMin - pad,
		YMax: b.YMax + pad,
		XMax: b.XMax + pad,
		YMin: b.YMin - pad,
	}
}

// Include grows the box just enough to contain the rectangle centred on p with the given size.
func (b BoundingBox) Include(p geo.Point, width, height float64) BoundingBox {
	return BoundingBox{
		XMin: math.Min(b.XMin, p.X-width/2),
		YMax: math.Max(b.YMax, p.Y+height/2),
		XMax: math.Max(b.XMax, p.X+width/2),
		YMin: math.Min(b.YMin, p.Y-height/2),
	}
}

type Scene struct {
	Kind          shape.Kind      `json:"kind"`
	Orientation   geo.Orientation `json:"orientation"`
	Vertices      []geo.Point     `json:"vertices"`
	Polygon       []int           `json:"polygon"`
	ExtraSegments []Segment       `json:"extraSegments"`
	Labels        []LabelAnchor   `json:"labels"`
	Arcs          []AngleArc      `json:"arcs"`
	Frame         BoundingBox     `json:"frame"`
}

func (s Scene) Bytes() ([]byte, error) {
	return json.Marshal(s)
}

func (s Scene) HashID() (string, error) {
	bytes, err := s.Bytes()
	if err != nil {
		return "", err
	}
	h := fnv.New32a()
	h.Write(bytes)
	// CSS names can't start with numbers, so prepend a little something
	return fmt.Sprintf("fig-%d", h.Sum32()), nil
}

// Points returns the vertices as geo points.
func (s Scene) Points() geo.Points {
	ps := make(geo.Points, 0, len(s.Vertices))
	for i := range s.Vertices {
		ps = append(ps, s.Vertices[i].Copy())
	}
	return ps
}

// Vertex returns the vertex at i modulo the vertex count.
func (s Scene) Vertex(i int) geo.Point {
	n := len(s.Vertices)
	return s.Vertices[((i%n)+n)%n]
}
