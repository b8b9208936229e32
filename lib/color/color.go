package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	Empty = ""
	None  = "none"
)

// Validate reports whether colorString is a CSS color the renderers can emit.
// Empty and "none" are accepted and mean "not painted".
func Validate(colorString string) error {
	if colorString == Empty || colorString == None {
		return nil
	}
	_, err := csscolorparser.Parse(colorString)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return nil
}

// Darken lowers the HSL lightness by 10%.
func Darken(colorString string) (string, error) {
	return shiftLightness(colorString, -.1)
}

func shiftLightness(colorString string, delta float64) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l+delta).Clamped().Hex(), nil
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// Contrast picks black or white text for a background.
func Contrast(background string) (string, error) {
	cat, err := LuminanceCategory(background)
	if err != nil {
		return "", err
	}
	if cat == "bright" || cat == "normal" {
		return "#0A0F25", nil
	}
	return "#FFFFFF", nil
}
