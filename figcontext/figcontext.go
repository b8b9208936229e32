// figcontext defines presentation contexts: the fixed visual sizes and styling
// a lesson section draws its figures with.
package figcontext

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/color"
	"oss.terrastruct.com/mathfig/lib/geo"
)

type Context struct {
	Section string `json:"section"`
	Name    string `json:"name"`

	// scene units
	FixedWidth     float64   `json:"fixedWidth"`
	FixedHeight    float64   `json:"fixedHeight"`
	Padding        float64   `json:"padding"`
	PositionOffset geo.Point `json:"positionOffset"`
	// when set, used as the frame as is
	Frame *figtarget.BoundingBox `json:"frame,omitempty"`

	ArcRadius    float64 `json:"arcRadius"`
	MarkerRadius float64 `json:"markerRadius"`
	LabelGap     float64 `json:"labelGap"`

	// pixels
	LabelSize     float64 `json:"labelSize"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`

	// grow computed frames around labels and arcs, not just vertices
	FitAnnotations bool `json:"fitAnnotations"`

	Colors Palette `json:"colors"`
}

type Palette struct {
	Fill   string `json:"fill"`
	Stroke string `json:"stroke"`
	Label  string `json:"label"`
	// arcs, height lines and hash marks
	Accent string `json:"accent"`
}

func (p Palette) Validate() error {
	for _, c := range []string{p.Fill, p.Stroke, p.Label, p.Accent} {
		if err := color.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

func (c Context) Validate() error {
	var errs []string
	positive := func(name string, v float64) {
		if !geo.IsFinite(v) || v <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive, got %v", name, v))
		}
	}
	positive("fixedWidth", c.FixedWidth)
	positive("fixedHeight", c.FixedHeight)
	positive("arcRadius", c.ArcRadius)
	positive("markerRadius", c.MarkerRadius)
	positive("labelSize", c.LabelSize)
	positive("pixelsPerUnit", c.PixelsPerUnit)
	if !geo.IsFinite(c.Padding) || c.Padding < 0 {
		errs = append(errs, fmt.Sprintf("padding must not be negative, got %v", c.Padding))
	}
	if !geo.IsFinite(c.LabelGap) || c.LabelGap < 0 {
		errs = append(errs, fmt.Sprintf("labelGap must not be negative, got %v", c.LabelGap))
	}
	if c.Frame != nil && (c.Frame.Width() <= 0 || c.Frame.Height() <= 0) {
		errs = append(errs, "frame must have a positive width and height")
	}
	if err := c.Colors.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid context %q: %s", c.Section, strings.Join(errs, "; "))
	}
	return nil
}

// Apply fills the spec's unset fixed dimensions and offset from the context.
func (c Context) Apply(spec figtarget.ShapeSpec) figtarget.ShapeSpec {
	if spec.FixedWidth == 0 {
		spec.FixedWidth = c.FixedWidth
	}
	if spec.FixedHeight == 0 {
		spec.FixedHeight = c.FixedHeight
	}
	if spec.PositionOffset == (geo.Point{}) {
		spec.PositionOffset = c.PositionOffset
	}
	return spec
}
