// figsvg draws scenes as SVG. Scenes are y-up; SVG is y-down, so every point is
// flipped through the frame and arc sweeps are reversed by the path context.
package figsvg

import (
	"bytes"
	"fmt"
	"math"

	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/color"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/svg"
	"oss.terrastruct.com/mathfig/lib/svg/style"
)

const (
	DEFAULT_PIXELS_PER_UNIT = 40.
	DEFAULT_LABEL_SIZE      = 16.

	STROKE_WIDTH        = 2.
	ACCENT_STROKE_WIDTH = 1.5
	HEIGHT_DASH         = 4.
)

type RenderOpts struct {
	PixelsPerUnit float64
	LabelSize     float64
	Colors        figcontext.Palette
}

// OptsFromContext renders with a context's scale, label size and palette.
func OptsFromContext(c figcontext.Context) *RenderOpts {
	return &RenderOpts{
		PixelsPerUnit: c.PixelsPerUnit,
		LabelSize:     c.LabelSize,
		Colors:        c.Colors,
	}
}

func (opts *RenderOpts) withDefaults() (RenderOpts, error) {
	o := RenderOpts{}
	if opts != nil {
		o = *opts
	}
	if o.PixelsPerUnit <= 0 {
		o.PixelsPerUnit = DEFAULT_PIXELS_PER_UNIT
	}
	if o.LabelSize <= 0 {
		o.LabelSize = DEFAULT_LABEL_SIZE
	}
	err := o.Colors.Validate()
	if err != nil {
		return o, err
	}
	if o.Colors.Stroke == "" && o.Colors.Fill != "" && o.Colors.Fill != color.None {
		o.Colors.Stroke, err = color.Darken(o.Colors.Fill)
		if err != nil {
			return o, err
		}
	}
	if o.Colors.Stroke == "" {
		o.Colors.Stroke = "#0A0F25"
	}
	if o.Colors.Label == "" {
		o.Colors.Label = o.Colors.Stroke
	}
	if o.Colors.Accent == "" {
		o.Colors.Accent = o.Colors.Stroke
	}
	return o, nil
}

func Render(scene *figtarget.Scene, opts *RenderOpts) ([]byte, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if len(scene.Vertices) == 0 {
		return nil, fmt.Errorf("scene has no vertices")
	}
	hash, err := scene.HashID()
	if err != nil {
		return nil, err
	}

	ppu := o.PixelsPerUnit
	frame := scene.Frame
	width := chop(frame.Width() * ppu)
	height := chop(frame.Height() * ppu)
	tl := geo.NewPoint(-frame.XMin*ppu, frame.YMax*ppu)
	newPath := func() *svg.SvgPathContext {
		return svg.NewSVGPathContext(tl, ppu, -ppu)
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" viewBox="0 0 %v %v" width="%v" height="%v">`,
		hash, width, height, width, height)

	fmt.Fprint(buf, renderPolygon(newPath(), scene, o))
	for i, seg := range scene.ExtraSegments {
		fmt.Fprint(buf, renderSegment(newPath(), seg, segmentIndex(scene.ExtraSegments, i), o))
	}
	for _, a := range scene.Arcs {
		fmt.Fprint(buf, renderArc(newPath(), scene, a, o))
	}
	for i, l := range scene.Labels {
		fmt.Fprint(buf, renderText(newPath(), figtarget.LabelID(l, i), l.Position, string(l.Anchor), l.Text, o))
	}

	fmt.Fprint(buf, `</svg>`)
	return buf.Bytes(), nil
}

func renderPolygon(pc *svg.SvgPathContext, scene *figtarget.Scene, o RenderOpts) string {
	for i, vi := range scene.Polygon {
		v := scene.Vertices[vi]
		if i == 0 {
			pc.MoveTo(v.X, v.Y)
		} else {
			pc.L(false, v.X, v.Y)
		}
	}
	pc.Z()

	el := newElement("path")
	el.ID = "polygon"
	el.D = pc.PathData()
	s := style.Stroke{Fill: o.Colors.Fill, Stroke: o.Colors.Stroke, StrokeWidth: STROKE_WIDTH}
	el.Attributes = trimLeading(s.Attrs())
	return el.Render()
}

func renderSegment(pc *svg.SvgPathContext, seg figtarget.Segment, index int, o RenderOpts) string {
	pc.MoveTo(seg.Start.X, seg.Start.Y)
	pc.L(false, seg.End.X, seg.End.Y)

	s := style.Stroke{Stroke: o.Colors.Accent, StrokeWidth: ACCENT_STROKE_WIDTH}
	if seg.Kind == figtarget.SegmentHeight {
		s.StrokeDash = HEIGHT_DASH
	}
	el := newElement("path")
	el.ID = figtarget.SegmentID(seg.Kind, index)
	el.D = pc.PathData()
	el.Attributes = trimLeading(s.Attrs())
	return el.Render()
}

func renderArc(pc *svg.SvgPathContext, scene *figtarget.Scene, a figtarget.AngleArc, o RenderOpts) string {
	pc.MoveTo(a.Start.X, a.Start.Y)
	if a.Marker {
		corner := a.Corner(scene.Vertex(a.VertexIndex))
		pc.L(false, corner.X, corner.Y)
		pc.L(false, a.End.X, a.End.Y)
	} else {
		pc.A(false, a.Radius, false, a.SweepFlag, a.End.X, a.End.Y)
	}

	el := newElement("path")
	el.ID = figtarget.ArcID(a)
	el.D = pc.PathData()
	s := style.Stroke{Stroke: o.Colors.Accent, StrokeWidth: ACCENT_STROKE_WIDTH}
	el.Attributes = trimLeading(s.Attrs())
	out := el.Render()

	if !a.Marker && a.LabelText != "" {
		// angle labels sit inside the polygon
		lo := o
		if o.Colors.Fill != "" && o.Colors.Fill != color.None {
			c, err := color.Contrast(o.Colors.Fill)
			if err == nil {
				lo.Colors.Label = c
			}
		}
		out += renderText(pc, el.ID+".label", a.LabelPosition, "middle", a.LabelText, lo)
	}
	return out
}

func renderText(pc *svg.SvgPathContext, id string, p geo.Point, anchor, text string, o RenderOpts) string {
	if anchor == "" {
		anchor = "middle"
	}
	at := pc.Absolute(p.X, p.Y)
	el := newElement("text")
	el.ID = id
	el.X = at.X
	el.Y = at.Y
	el.Fill = o.Colors.Label
	el.Attributes = fmt.Sprintf(`text-anchor="%s" dominant-baseline="middle" font-size="%v"`, anchor, o.LabelSize)
	el.Content = svg.EscapeText(text)
	return el.Render()
}

// segmentIndex counts segments of the same kind before i, matching figtarget element IDs.
func segmentIndex(segs []figtarget.Segment, i int) int {
	n := 0
	for _, s := range segs[:i] {
		if s.Kind == segs[i].Kind {
			n++
		}
	}
	return n
}

func trimLeading(s string) string {
	if len(s) > 0 && s[0] == ' ' {
		return s[1:]
	}
	return s
}

func chop(f float64) float64 {
	return math.Round(f*100) / 100
}
