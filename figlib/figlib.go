// Package figlib compiles shape specs into scenes.
package figlib

import (
	"context"
	"errors"
	"fmt"

	"cdr.dev/slog"

	"oss.terrastruct.com/mathfig/figarc"
	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figcontext/figcontextcatalog"
	"oss.terrastruct.com/mathfig/figframe"
	"oss.terrastruct.com/mathfig/figlabel"
	"oss.terrastruct.com/mathfig/figshape"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/log"
	"oss.terrastruct.com/mathfig/lib/textmeasure"
)

var ErrUnknownSection = errors.New("unknown section")

type CompileOptions struct {
	// nil uses figcontextcatalog.Default()
	Context *figcontext.Context
	// only needed when the context fits frames to annotations
	Ruler *textmeasure.Ruler
	Label *figlabel.Options
}

// Compile builds the full scene for spec. Every call is independent and the result
// depends only on the arguments.
func Compile(ctx context.Context, spec figtarget.ShapeSpec, opts *CompileOptions) (*figtarget.Scene, error) {
	if opts == nil {
		opts = &CompileOptions{}
	}
	fc := figcontextcatalog.Default()
	if opts.Context != nil {
		fc = *opts.Context
	}
	err := fc.Validate()
	if err != nil {
		return nil, err
	}

	g, err := figshape.Build(spec)
	if err != nil {
		return nil, err
	}
	if g.OrientationFallback {
		log.Warn(ctx, "orientation not drawn for this shape, using default",
			slog.F("kind", g.Kind),
			slog.F("orientation", spec.Orientation.String()),
		)
	}
	log.Debug(ctx, "built geometry", slog.F("kind", g.Kind), slog.F("vertices", g.Vertices.ToString()))

	labels, err := figlabel.PlaceAll(g, spec.Labels, opts.Label)
	if err != nil {
		return nil, err
	}
	arcs := figarc.Annotate(g, spec, fc)
	log.Debug(ctx, "annotated", slog.F("labels", len(labels)), slog.F("arcs", len(arcs)))

	scene := &figtarget.Scene{
		Kind:          g.Kind,
		Orientation:   g.Orientation,
		Vertices:      points(g.Vertices),
		Polygon:       g.Polygon,
		ExtraSegments: g.ExtraSegments,
		Labels:        labels,
		Arcs:          arcs,
	}
	if scene.ExtraSegments == nil {
		scene.ExtraSegments = []figtarget.Segment{}
	}
	if scene.Arcs == nil {
		scene.Arcs = []figtarget.AngleArc{}
	}

	scene.Frame = figframe.Frame(g.Vertices, fc)
	if fc.FitAnnotations {
		scene.Frame = figframe.FitAnnotations(scene.Frame, scene, fc, opts.Ruler)
	}
	log.Debug(ctx, "framed", slog.F("frame", scene.Frame.Array()))
	return scene, nil
}

// CompileSection compiles spec in the named section's context, filling the spec's
// unset fixed dimensions and offset from it.
func CompileSection(ctx context.Context, spec figtarget.ShapeSpec, section string, opts *CompileOptions) (*figtarget.Scene, figcontext.Context, error) {
	fc, ok := figcontextcatalog.Find(section)
	if !ok {
		return nil, figcontext.Context{}, fmt.Errorf("%w %q, expected one of %v", ErrUnknownSection, section, figcontextcatalog.Sections())
	}
	o := CompileOptions{}
	if opts != nil {
		o = *opts
	}
	o.Context = &fc

	scene, err := Compile(ctx, fc.Apply(spec), &o)
	if err != nil {
		return nil, figcontext.Context{}, err
	}
	return scene, fc, nil
}

func points(ps geo.Points) []geo.Point {
	out := make([]geo.Point, 0, len(ps))
	for _, p := range ps {
		out = append(out, *p)
	}
	return out
}
