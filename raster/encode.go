package raster

import (
	"fmt"
	"math"
	"strings"
)

// EncodeMode selects the framebuffer-to-text mapping.
type EncodeMode int

const (
	// ModeASCII maps luminance onto a 10-step character ramp. No
	// escape sequences are emitted.
	ModeASCII EncodeMode = iota
	// ModeHalfBlock packs two vertical pixels per character using ▀
	// with 24-bit foreground/background escapes.
	ModeHalfBlock
	// ModeTrueColor emits one space per pixel with a 24-bit
	// background escape.
	ModeTrueColor
)

// asciiRamp is ordered dark to bright; index = round(luma·9).
const asciiRamp = " .:-=+*#%@"

// Encoder converts a framebuffer to terminal text with an
// aspect-preserving nearest-neighbor resample.
type Encoder struct {
	Mode   EncodeMode
	Width  int  // target width in characters; 0 = derive
	Height int  // target height in pixels; 0 = derive
	Invert bool // complement RGB before mapping
}

// charAspect is the per-mode character aspect factor: a terminal cell
// is about twice as tall as wide, except in half-block mode where each
// cell already holds two pixels.
func (e Encoder) charAspect() float64 {
	if e.Mode == ModeHalfBlock {
		return 1
	}
	return 2
}

// targetSize resolves the output dimensions in pixels.
func (e Encoder) targetSize(fb *Framebuffer) (int, int) {
	fw, fh := float64(fb.Width()), float64(fb.Height())
	aspect := e.charAspect()

	w, h := e.Width, e.Height
	if w <= 0 && h <= 0 {
		w = fb.Width()
		if w > 80 {
			w = 80
		}
	}
	if w > 0 && h <= 0 {
		h = int(math.Round(float64(w) * fh / fw / aspect))
	}
	if h > 0 && w <= 0 {
		w = int(math.Round(float64(h) * fw / fh * aspect))
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if e.Mode == ModeHalfBlock && h%2 == 1 {
		h++
	}
	return w, h
}

// sample reads the nearest source pixel for a destination coordinate.
func (e Encoder) sample(fb *Framebuffer, dx, dy, dw, dh int) RGBA {
	sx := dx * fb.Width() / dw
	sy := dy * fb.Height() / dh
	if sx > fb.Width()-1 {
		sx = fb.Width() - 1
	}
	if sy > fb.Height()-1 {
		sy = fb.Height() - 1
	}
	p := fb.Pixel(sx, sy)
	if e.Invert {
		p = p.Invert()
	}
	return p
}

// Encode renders the framebuffer as text. Every row ends with '\n';
// colored modes emit a reset before the newline.
func (e Encoder) Encode(fb *Framebuffer) string {
	if fb.Width() == 0 || fb.Height() == 0 {
		return ""
	}
	w, h := e.targetSize(fb)

	var sb strings.Builder
	switch e.Mode {
	case ModeHalfBlock:
		for y := 0; y < h; y += 2 {
			for x := 0; x < w; x++ {
				top := e.sample(fb, x, y, w, h)
				bot := e.sample(fb, x, y+1, w, h)
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
			sb.WriteString("\x1b[0m\n")
		}

	case ModeTrueColor:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := e.sample(fb, x, y, w, h)
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm ", p.R, p.G, p.B)
			}
			sb.WriteString("\x1b[0m\n")
		}

	default: // ModeASCII
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := e.sample(fb, x, y, w, h)
				idx := int(math.Round(p.Luma() * 9))
				if idx > len(asciiRamp)-1 {
					idx = len(asciiRamp) - 1
				}
				sb.WriteByte(asciiRamp[idx])
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
