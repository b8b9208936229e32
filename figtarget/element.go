package figtarget

import "fmt"

type ElementKind string

const (
	ElementVertex  ElementKind = "vertex"
	ElementPolygon ElementKind = "polygon"
	ElementSegment ElementKind = "segment"
	ElementLabel   ElementKind = "label"
	ElementArc     ElementKind = "arc"
	ElementFrame   ElementKind = "frame"
)

// Element is one drawable piece of a scene under an ID that stays the same
// between two scenes built from specs that differ only in values.
type Element struct {
	ID    string      `json:"id"`
	Kind  ElementKind `json:"kind"`
	Value interface{} `json:"value"`
}

func VertexID(i int) string {
	return fmt.Sprintf("vertex.%d", i)
}

func SegmentID(kind SegmentKind, i int) string {
	return fmt.Sprintf("segment.%s.%d", kind, i)
}

func LabelID(l LabelAnchor, i int) string {
	return fmt.Sprintf("label.%s.%d", l.Side, i)
}

func ArcID(a AngleArc) string {
	if a.Marker {
		return fmt.Sprintf("arc.%d.marker", a.VertexIndex)
	}
	return fmt.Sprintf("arc.%d", a.VertexIndex)
}

// Elements lists every element of the scene in drawing order.
// Segment indices count per kind.
func (s Scene) Elements() []Element {
	var els []Element
	for i, v := range s.Vertices {
		els = append(els, Element{ID: VertexID(i), Kind: ElementVertex, Value: v})
	}
	els = append(els, Element{ID: "polygon", Kind: ElementPolygon, Value: s.Polygon})

	counts := make(map[SegmentKind]int)
	for _, seg := range s.ExtraSegments {
		els = append(els, Element{ID: SegmentID(seg.Kind, counts[seg.Kind]), Kind: ElementSegment, Value: seg})
		counts[seg.Kind]++
	}
	for i, l := range s.Labels {
		els = append(els, Element{ID: LabelID(l, i), Kind: ElementLabel, Value: l})
	}
	for _, a := range s.Arcs {
		els = append(els, Element{ID: ArcID(a), Kind: ElementArc, Value: a})
	}
	els = append(els, Element{ID: "frame", Kind: ElementFrame, Value: s.Frame})
	return els
}
