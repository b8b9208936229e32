package figcontextcatalog

import "oss.terrastruct.com/mathfig/figcontext"

var Starter = figcontext.Context{
	Section: "starter",
	Name:    "Starter",

	FixedWidth:  6,
	FixedHeight: 4,
	Padding:     1,

	ArcRadius:    0.8,
	MarkerRadius: 0.4,
	LabelGap:     0.4,

	LabelSize:     18,
	PixelsPerUnit: 40,

	Colors: SoftPalette,
}
