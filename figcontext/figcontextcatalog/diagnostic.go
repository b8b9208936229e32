package figcontextcatalog

import (
	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figtarget"
)

// Diagnostic questions share one board, so every figure gets the same frame.
var Diagnostic = figcontext.Context{
	Section: "diagnostic",
	Name:    "Diagnostic",

	FixedWidth:  5,
	FixedHeight: 4,
	Padding:     1.2,
	Frame: &figtarget.BoundingBox{
		XMin: -1.5,
		YMax: 6.5,
		XMax: 7.5,
		YMin: -1.5,
	},

	ArcRadius:    0.7,
	MarkerRadius: 0.35,
	LabelGap:     0.35,

	LabelSize:     14,
	PixelsPerUnit: 36,

	Colors: CoolPalette,
}
