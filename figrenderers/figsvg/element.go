package figsvg

import (
	"fmt"
	"math"
)

// element is a helper for writing SVG elements.
// Unset numeric attributes are left out.
type element struct {
	tag string

	ID         string
	X          float64
	Y          float64
	D          string
	Fill       string
	Stroke     string
	ClassName  string
	Style      string
	Attributes string

	Content string
}

func newElement(tag string) *element {
	return &element{
		tag: tag,
		X:   math.MaxFloat64,
		Y:   math.MaxFloat64,
	}
}

func (el *element) Render() string {
	out := "<" + el.tag

	if len(el.ID) > 0 {
		out += fmt.Sprintf(` data-fig-id="%s"`, el.ID)
	}
	if el.X != math.MaxFloat64 {
		out += fmt.Sprintf(` x="%v"`, el.X)
	}
	if el.Y != math.MaxFloat64 {
		out += fmt.Sprintf(` y="%v"`, el.Y)
	}
	if len(el.D) > 0 {
		out += fmt.Sprintf(` d="%s"`, el.D)
	}
	if len(el.Stroke) > 0 {
		out += fmt.Sprintf(` stroke="%s"`, el.Stroke)
	}
	if len(el.Fill) > 0 {
		out += fmt.Sprintf(` fill="%s"`, el.Fill)
	}
	if len(el.ClassName) > 0 {
		out += fmt.Sprintf(` class="%s"`, el.ClassName)
	}
	if len(el.Style) > 0 {
		out += fmt.Sprintf(` style="%s"`, el.Style)
	}
	if len(el.Attributes) > 0 {
		out += fmt.Sprintf(` %s`, el.Attributes)
	}

	if len(el.Content) > 0 {
		return fmt.Sprintf("%s>%s</%s>", out, el.Content, el.tag)
	}
	return out + " />"
}
