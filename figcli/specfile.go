package figcli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figshape"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/geo"
	"oss.terrastruct.com/mathfig/lib/go2"
	"oss.terrastruct.com/mathfig/lib/shape"
)

// specFile is the on disk form of a figure. JSON files decode too.
//
//	section: examples
//	kind: rightTriangle
//	width: 6
//	height: 4
//	orientation: flip
//	labels:
//	  - side: base
//	    text: 12 cm
//	angles:
//	  - vertex: 1
//	    label: θ
type specFile struct {
	Section     string     `yaml:"section"`
	Kind        string     `yaml:"kind"`
	Width       *float64   `yaml:"width"`
	Height      *float64   `yaml:"height"`
	Orientation string     `yaml:"orientation"`
	Offset      *geo.Point `yaml:"offset"`
	Centered    bool       `yaml:"centered"`

	Labels []struct {
		Side string `yaml:"side"`
		Text string `yaml:"text"`
	} `yaml:"labels"`

	ShowHeight         bool `yaml:"showHeight"`
	ShowEqualSideMarks bool `yaml:"showEqualSideMarks"`

	Angles []struct {
		Vertex int    `yaml:"vertex"`
		Label  string `yaml:"label"`
	} `yaml:"angles"`
}

// figure is a parsed spec file.
type figure struct {
	spec    figtarget.ShapeSpec
	section string

	// set when the file gives them, even as zero
	hasWidth  bool
	hasHeight bool
	hasOffset bool
}

// specIn takes the dimensions and offset the file left out from c.
// Values the file gives are kept as is, so an explicit zero still fails validation.
func (f figure) specIn(c figcontext.Context) figtarget.ShapeSpec {
	spec := f.spec
	if !f.hasWidth {
		spec.FixedWidth = c.FixedWidth
	}
	if !f.hasHeight {
		spec.FixedHeight = c.FixedHeight
	}
	if !f.hasOffset {
		spec.PositionOffset = c.PositionOffset
	}
	return spec
}

// parseSpec decodes a spec file and returns the figure with the section it asks for, if any.
func parseSpec(b []byte) (figure, error) {
	var f specFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(&f)
	if errors.Is(err, io.EOF) {
		return figure{}, errors.New("spec file is empty")
	}
	if err != nil {
		return figure{}, err
	}

	kind, err := kindFromString(f.Kind)
	if err != nil {
		return figure{}, err
	}
	o, err := geo.OrientationFromString(f.Orientation)
	if err != nil {
		return figure{}, err
	}

	fig := figure{
		spec: figtarget.ShapeSpec{
			Kind:               kind,
			Orientation:        o,
			Centered:           f.Centered,
			ShowHeight:         f.ShowHeight,
			ShowEqualSideMarks: f.ShowEqualSideMarks,
		},
		section:   f.Section,
		hasWidth:  f.Width != nil,
		hasHeight: f.Height != nil,
		hasOffset: f.Offset != nil,
	}
	spec := &fig.spec
	if f.Width != nil {
		spec.FixedWidth = *f.Width
	}
	if f.Height != nil {
		spec.FixedHeight = *f.Height
	}
	if f.Offset != nil {
		spec.PositionOffset = *f.Offset
	}

	for _, l := range f.Labels {
		side, err := shape.SideFromString(l.Side)
		if err != nil {
			return figure{}, err
		}
		spec.Labels = append(spec.Labels, figtarget.LabelText{Side: side, Text: l.Text})
	}

	s, err := shape.NewShape(kind, 1, 1)
	if err != nil {
		return figure{}, err
	}
	arity := s.Arity()
	for _, a := range f.Angles {
		if a.Vertex < 0 || a.Vertex >= arity {
			return figure{}, fmt.Errorf("angle vertex of a %s must be in [0, %d), got %d", kind, arity, a.Vertex)
		}
		spec.AngleFlags = go2.Grow(spec.AngleFlags, a.Vertex+1)
		spec.AngleLabels = go2.Grow(spec.AngleLabels, a.Vertex+1)
		spec.AngleFlags[a.Vertex] = true
		spec.AngleLabels[a.Vertex] = a.Label
	}

	return fig, nil
}

// kindFromString ignores case, dashes, underscores and spaces.
func kindFromString(s string) (shape.Kind, error) {
	norm := strings.ToLower(s)
	for _, r := range []string{"-", "_", " "} {
		norm = strings.ReplaceAll(norm, r, "")
	}
	for _, k := range shape.Kinds {
		if strings.ToLower(string(k)) == norm {
			return k, nil
		}
	}
	switch norm {
	case "right":
		return shape.RIGHT_TRIANGLE_TYPE, nil
	case "isosceles":
		return shape.ISOSCELES_TRIANGLE_TYPE, nil
	}
	return "", fmt.Errorf("%w: %q", figshape.ErrUnsupportedShape, s)
}
