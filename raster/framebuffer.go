// Package raster is the off-screen render path: a dense RGBA
// framebuffer, box-and-whisker / violin plots drawn onto it, and an
// encoder that turns the framebuffer into terminal text.
package raster

// RGBA is one framebuffer pixel.
type RGBA struct {
	R, G, B, A uint8
}

// Luma returns the Rec.709 luminance of the pixel, in [0,1].
func (p RGBA) Luma() float64 {
	return (0.2126*float64(p.R) + 0.7152*float64(p.G) + 0.0722*float64(p.B)) / 255
}

// Invert returns the pixel with the RGB channels complemented.
func (p RGBA) Invert() RGBA {
	return RGBA{R: ^p.R, G: ^p.G, B: ^p.B, A: p.A}
}

// Framebuffer is a W×H dense pixel buffer. SetPixel outside bounds is a
// no-op; Clear fills every pixel.
type Framebuffer struct {
	pix  []RGBA
	w, h int
}

// NewFramebuffer allocates a zeroed (transparent black) buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{pix: make([]RGBA, w*h), w: w, h: h}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int { return f.w }

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int { return f.h }

// InBounds reports whether (x,y) is a valid pixel.
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

// SetPixel writes one pixel, clipped at the edges.
func (f *Framebuffer) SetPixel(x, y int, c RGBA) {
	if !f.InBounds(x, y) {
		return
	}
	f.pix[y*f.w+x] = c
}

// Pixel reads one pixel; out of bounds reads return zero.
func (f *Framebuffer) Pixel(x, y int) RGBA {
	if !f.InBounds(x, y) {
		return RGBA{}
	}
	return f.pix[y*f.w+x]
}

// Clear fills the whole buffer with c.
func (f *Framebuffer) Clear(c RGBA) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// DrawHLine draws a horizontal run, clipped.
func (f *Framebuffer) DrawHLine(x0, x1, y int, c RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		f.SetPixel(x, y, c)
	}
}

// DrawVLine draws a vertical run, clipped.
func (f *Framebuffer) DrawVLine(x, y0, y1 int, c RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		f.SetPixel(x, y, c)
	}
}

// DrawRect outlines a rectangle, clipped.
func (f *Framebuffer) DrawRect(x0, y0, x1, y1 int, c RGBA) {
	f.DrawHLine(x0, x1, y0, c)
	f.DrawHLine(x0, x1, y1, c)
	f.DrawVLine(x0, y0, y1, c)
	f.DrawVLine(x1, y0, y1, c)
}

// FillRect fills a rectangle, clipped.
func (f *Framebuffer) FillRect(x0, y0, x1, y1 int, c RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		f.DrawHLine(x0, x1, y, c)
	}
}

// DrawCross draws a small "+" marker, used for outliers.
func (f *Framebuffer) DrawCross(x, y, arm int, c RGBA) {
	f.DrawHLine(x-arm, x+arm, y, c)
	f.DrawVLine(x, y-arm, y+arm, c)
}
