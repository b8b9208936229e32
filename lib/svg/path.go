package svg

import (
	"fmt"
	"math"
	"strings"

	"oss.terrastruct.com/mathfig/lib/geo"
)

// SvgPathContext builds path data while mapping scene coordinates to SVG user space.
// A negative ScaleY flips a y-up scene into SVG's y-down space.
type SvgPathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
	TopLeft  *geo.Point
	ScaleX   float64
	ScaleY   float64
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func NewSVGPathContext(tl *geo.Point, sx, sy float64) *SvgPathContext {
	return &SvgPathContext{TopLeft: tl.Copy(), ScaleX: sx, ScaleY: sy}
}

func (c *SvgPathContext) Relative(base *geo.Point, dx, dy float64) *geo.Point {
	return geo.NewPoint(chopPrecision(base.X+c.ScaleX*dx), chopPrecision(base.Y+c.ScaleY*dy))
}
func (c *SvgPathContext) Absolute(x, y float64) *geo.Point {
	return c.Relative(c.TopLeft, x, y)
}

// Mirrored reports whether the mapping reverses orientation, which reverses arc sweeps too.
func (c *SvgPathContext) Mirrored() bool {
	return (c.ScaleX < 0) != (c.ScaleY < 0)
}

func (c *SvgPathContext) StartAt(p *geo.Point) {
	c.Start = p
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", p.X, p.Y))
	c.Current = p.Copy()
}

// MoveTo starts a subpath at the scene point (x, y).
func (c *SvgPathContext) MoveTo(x, y float64) {
	c.StartAt(c.Absolute(x, y))
}

func (c *SvgPathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

func (c *SvgPathContext) L(isLowerCase bool, x, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, y)
	} else {
		endPoint = c.Absolute(x, y)
	}
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

// A draws a circular arc of radius r to (x, y).
// sweep is given in scene space and is inverted when the mapping is mirrored.
func (c *SvgPathContext) A(isLowerCase bool, r float64, largeArc bool, sweep int, x, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, y)
	} else {
		endPoint = c.Absolute(x, y)
	}
	if c.Mirrored() {
		sweep = 1 - sweep
	}
	large := 0
	if largeArc {
		large = 1
	}
	radius := chopPrecision(math.Abs(c.ScaleX) * r)
	c.Commands = append(c.Commands, fmt.Sprintf("A %v %v 0 %d %d %v %v", radius, radius, large, sweep, endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

func (c *SvgPathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}
