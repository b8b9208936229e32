package figcontextcatalog

import "oss.terrastruct.com/mathfig/figcontext"

var CoolPalette = figcontext.Palette{
	Fill:   "#E3E9FD",
	Stroke: "#0D32B2",
	Label:  "#0A0F25",
	Accent: "#4A6FF3",
}

var WarmPalette = figcontext.Palette{
	Fill:   "#FDF5E3",
	Stroke: "#B2590D",
	Label:  "#170206",
	Accent: "#E07A1F",
}

// stroke is derived from the fill at render time
var SoftPalette = figcontext.Palette{
	Fill:   "#E5F5E0",
	Label:  "#0A0F25",
	Accent: "#2E7D32",
}
