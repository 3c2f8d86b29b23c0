// Package ui is the character-cell layer: the cell buffer every widget
// draws into, bounds-safe rectangle math, truncation/padding helpers,
// the semantic palette, and the statistical widgets (histogram, violin,
// confusion matrix, dataframe) plus the panel composition primitives.
package ui

import (
	"fmt"
	"strings"

	"github.com/rjmorel/statgrid/model"
)

// Cell is one character cell: a glyph plus foreground and optional
// background color.
type Cell struct {
	Rune rune
	Fg   model.RGB
	Bg   model.RGB
	// HasBg distinguishes "default background" from an explicit one.
	HasBg bool
	Bold  bool
}

// EmptyCell returns a blank cell with default colors.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Fg: model.ColorWhite}
}

// Buffer is a W×H grid of cells. Writes outside [0,W)×[0,H) are no-ops,
// so every widget is inherently clipped.
type Buffer struct {
	cells []Cell
	w, h  int
}

// NewBuffer creates a buffer filled with empty cells.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{cells: make([]Cell, w*h), w: w, h: h}
	b.Clear()
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.w }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.h }

// InBounds reports whether (x,y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// Cell returns a mutable reference to the cell at (x,y), or false when
// out of bounds.
func (b *Buffer) Cell(x, y int) (*Cell, bool) {
	if !b.InBounds(x, y) {
		return nil, false
	}
	return &b.cells[y*b.w+x], true
}

// Get returns a copy of the cell at (x,y), or an empty cell out of
// bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y*b.w+x]
}

// Set writes the cell at (x,y); clipped silently.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.w+x] = c
}

// SetRune writes just the glyph and foreground at (x,y).
func (b *Buffer) SetRune(x, y int, r rune, fg model.RGB) {
	if cell, ok := b.Cell(x, y); ok {
		cell.Rune = r
		cell.Fg = fg
	}
}

// Clear resets every cell to empty.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// Fill sets every cell inside area to c.
func (b *Buffer) Fill(area Rect, c Cell) {
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			b.Set(x, y, c)
		}
	}
}

// WriteString writes s left-to-right starting at (x,y), clipping at the
// buffer edge. Returns the number of cells written.
func (b *Buffer) WriteString(x, y int, s string, fg model.RGB) int {
	n := 0
	for _, r := range s {
		if x+n >= b.w {
			break
		}
		b.SetRune(x+n, y, r, fg)
		n++
	}
	return n
}

// String renders the buffer as UTF-8 with ANSI 24-bit color escapes.
// Each row ends with a reset and newline.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			c := b.cells[y*b.w+x]
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", c.Fg.R, c.Fg.G, c.Fg.B)
			if c.HasBg {
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", c.Bg.R, c.Bg.G, c.Bg.B)
			}
			if c.Bold {
				sb.WriteString("\x1b[1m")
			}
			sb.WriteRune(c.Rune)
			sb.WriteString("\x1b[0m")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Plain renders the buffer glyphs without escapes, for tests and logs.
func (b *Buffer) Plain() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			sb.WriteRune(b.cells[y*b.w+x].Rune)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
