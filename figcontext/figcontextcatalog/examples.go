package figcontextcatalog

import "oss.terrastruct.com/mathfig/figcontext"

var Examples = figcontext.Context{
	Section: "examples",
	Name:    "Worked examples",

	FixedWidth:  6,
	FixedHeight: 5,
	Padding:     1,

	ArcRadius:    0.8,
	MarkerRadius: 0.4,
	LabelGap:     0.4,

	LabelSize:     16,
	PixelsPerUnit: 40,

	Colors: CoolPalette,
}
