// Package textmeasure measures label text so frames can be grown around it.
package textmeasure

import (
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"oss.terrastruct.com/mathfig/lib/geo"
)

const TAB_SIZE = 4

// Ruler measures text set in Go Regular at arbitrary pixel sizes.
// It is safe for concurrent use.
type Ruler struct {
	// LineHeightFactor scales the font's line height between lines of a multi-line label.
	LineHeightFactor float64

	mu    sync.Mutex
	ttf   *truetype.Font
	faces map[float64]font.Face

	// isASCII indicates this ruler should use 1x1 measurements for every rune
	isASCII bool
}

func NewRuler() (*Ruler, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Ruler{
		LineHeightFactor: 1.,
		ttf:              ttf,
		faces:            make(map[float64]font.Face),
	}, nil
}

// NewASCIIRuler creates a fake ruler that measures each character as 1x1
func NewASCIIRuler() *Ruler {
	return &Ruler{
		LineHeightFactor: 1.,
		faces:            make(map[float64]font.Face),
		isASCII:          true,
	}
}

func (r *Ruler) IsASCII() bool {
	return r.isASCII
}

func (r *Ruler) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	r.faces[size] = f
	return f
}

func (r *Ruler) Measure(size float64, s string) (width, height int) {
	w, h := r.MeasurePrecise(size, s)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// MeasurePrecise returns the advance width of the widest line and the combined height of all lines.
func (r *Ruler) MeasurePrecise(size float64, s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	if r.isASCII {
		w, h := measureASCII(s)
		return float64(w), float64(h)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	face := r.face(size)
	lineHeight := fixedToFloat(face.Metrics().Height) * r.LineHeightFactor
	tab := strings.Repeat(" ", TAB_SIZE)

	b := newRect()
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = strings.ReplaceAll(line, "\t", tab)
		w := fixedToFloat(font.MeasureString(face, line))
		b = b.union(&rect{
			tl: geo.NewPoint(0, float64(i)*lineHeight),
			br: geo.NewPoint(w, float64(i+1)*lineHeight),
		})
	}
	return b.w(), b.h()
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// measureASCII returns 1x1 measurement for each character
func measureASCII(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		lineWidth := 0
		for _, ch := range line {
			if ch == '\t' {
				lineWidth += TAB_SIZE
			} else {
				lineWidth++
			}
		}
		if lineWidth > maxWidth {
			maxWidth = lineWidth
		}
	}

	return maxWidth, len(lines)
}
