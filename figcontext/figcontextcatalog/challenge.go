package figcontextcatalog

import (
	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/lib/geo"
)

// Challenge figures are small and sit off-centre next to the question text,
// so their frames are fitted to labels too.
var Challenge = figcontext.Context{
	Section: "challenge",
	Name:    "Challenge",

	FixedWidth:     4,
	FixedHeight:    3,
	Padding:        0.8,
	PositionOffset: geo.Point{X: 0.5, Y: 0.5},

	ArcRadius:    0.6,
	MarkerRadius: 0.3,
	LabelGap:     0.3,

	LabelSize:      14,
	PixelsPerUnit:  48,
	FitAnnotations: true,

	Colors: WarmPalette,
}
