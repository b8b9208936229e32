package style

import (
	"fmt"

	"oss.terrastruct.com/mathfig/lib/svg"
)

// Stroke is the drawing style of one scene element.
type Stroke struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	StrokeDash  float64
	Opacity     float64
}

func (s Stroke) Style() string {
	out := ""

	if s.Opacity != 0 {
		out += fmt.Sprintf(`opacity:%f;`, s.Opacity)
	}
	out += fmt.Sprintf(`stroke-width:%v;`, s.StrokeWidth)
	if s.StrokeDash != 0 {
		dashSize, gapSize := svg.GetStrokeDashAttributes(s.StrokeWidth, s.StrokeDash)
		out += fmt.Sprintf(`stroke-dasharray:%f,%f;`, dashSize, gapSize)
	}

	return out
}

// Attrs renders the fill, stroke and style attributes, leading space included.
func (s Stroke) Attrs() string {
	fill := s.Fill
	if fill == "" {
		fill = "none"
	}
	out := fmt.Sprintf(` fill="%s"`, fill)
	if s.Stroke != "" {
		out += fmt.Sprintf(` stroke="%s"`, s.Stroke)
	}
	out += fmt.Sprintf(` style="%s"`, s.Style())
	return out
}
