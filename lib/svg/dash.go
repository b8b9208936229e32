package svg

import "math"

// GetStrokeDashAttributes returns the dash and gap lengths for a dashed stroke.
// Thicker strokes get proportionally smaller gaps.
func GetStrokeDashAttributes(strokeWidth, dashGapSize float64) (float64, float64) {
	scale := math.Log10(-0.6*strokeWidth+10.6)*0.5 + 0.5
	scaledDashSize := strokeWidth * dashGapSize
	scaledGapSize := scale * scaledDashSize
	return scaledDashSize, scaledGapSize
}
