package ui

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rjmorel/statgrid/model"
)

// PercentColor maps a utilization percentage onto the semantic palette.
// Monotone: higher percentages never map to a "cooler" bin.
func PercentColor(pct float64) model.RGB {
	switch {
	case pct >= 90:
		return model.ColorRed
	case pct >= 75:
		return model.ColorOrange
	case pct >= 50:
		return model.ColorYellow
	case pct >= 25:
		return model.ColorGreen
	default:
		return model.ColorGray
	}
}

// toColorful converts a palette color for blending.
func toColorful(c model.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// fromColorful converts a blended color back, clamping out-of-gamut
// channels.
func fromColorful(c colorful.Color) model.RGB {
	cl := c.Clamped()
	return model.RGB{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
	}
}

// BlendRGB interpolates between two palette colors in Lab space, which
// avoids the muddy midpoints naive RGB lerp produces.
func BlendRGB(a, b model.RGB, t float64) model.RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
}

// EntropyColor maps normalized entropy to green → yellow → orange → red
// at the 0.25 / 0.5 / 0.8 transitions.
func EntropyColor(e float64) model.RGB {
	switch {
	case e >= 0.8:
		return model.ColorRed
	case e >= 0.5:
		return model.ColorOrange
	case e >= 0.25:
		return model.ColorYellow
	default:
		return model.ColorGreen
	}
}

// EntropyHeatmap renders a fixed-width entropy gauge plus a duplicate
// percentage readout, returning the display string and its color.
func EntropyHeatmap(e, dupPct float64) (string, model.RGB) {
	if e < 0 {
		e = 0
	}
	if e > 1 {
		e = 1
	}
	const width = 8
	filled := int(e*width + 0.5)
	if filled > width {
		filled = width
	}
	gauge := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %2.0f%%", gauge, dupPct), EntropyColor(e)
}
