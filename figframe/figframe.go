// Package figframe computes the viewport a host renderer shows a scene in.
package figframe

import (
	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/label"
	"oss.terrastruct.com/mathfig/lib/textmeasure"
)

// Frame returns ctx.Frame unchanged when set. Otherwise it is the bounding box of
// vertices grown by ctx.Padding on every side.
// Only vertices are guaranteed to be inside; see FitAnnotations for labels and arcs.
func Frame(vertices geo.Points, ctx figcontext.Context) figtarget.BoundingBox {
	if ctx.Frame != nil {
		return *ctx.Frame
	}
	return figtarget.NewBoundingBox(vertices).Expand(ctx.Padding)
}

// FitAnnotations grows a computed frame until every label box and arc of the scene fits.
// Label boxes are measured at ctx.LabelSize pixels and converted with ctx.PixelsPerUnit.
// With a nil ruler only label anchor points are fitted. Explicit frames are returned as is.
func FitAnnotations(frame figtarget.BoundingBox, scene *figtarget.Scene, ctx figcontext.Context, ruler *textmeasure.Ruler) figtarget.BoundingBox {
	if ctx.Frame != nil {
		return *ctx.Frame
	}

	for _, l := range scene.Labels {
		w, h := labelSize(l.Text, ctx, ruler)
		frame = frame.Include(labelCenter(l.Position, l.Anchor, w), w, h)
	}
	for _, a := range scene.Arcs {
		frame = frame.Include(a.Start, 0, 0)
		frame = frame.Include(a.End, 0, 0)
		if a.Marker {
			frame = frame.Include(a.LabelPosition, 0, 0)
			continue
		}
		w, h := labelSize(a.LabelText, ctx, ruler)
		frame = frame.Include(a.LabelPosition, w, h)
	}
	return frame
}

func labelSize(text string, ctx figcontext.Context, ruler *textmeasure.Ruler) (float64, float64) {
	if ruler == nil || text == "" || ctx.PixelsPerUnit <= 0 {
		return 0, 0
	}
	w, h := ruler.MeasurePrecise(ctx.LabelSize, text)
	return w / ctx.PixelsPerUnit, h / ctx.PixelsPerUnit
}

// labelCenter is the middle of a label box of width w drawn at p with the given alignment.
func labelCenter(p geo.Point, anchor label.Anchor, w float64) geo.Point {
	switch anchor {
	case label.AnchorStart:
		p.X += w / 2
	case label.AnchorEnd:
		p.X -= w / 2
	}
	return p
}
