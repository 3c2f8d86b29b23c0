package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to max runes with an ellipsis. For max ≤ 3 the
// prefix is returned verbatim, since "..." would eat the whole budget.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// PadRight pads s with spaces to width runes, truncating when longer.
func PadRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(r))
}

// PadLeft right-aligns s in width runes, truncating when longer.
func PadLeft(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		if width < 0 {
			width = 0
		}
		return string(r[:width])
	}
	return strings.Repeat(" ", width-len(r)) + s
}

// PadDisplay pads s to the given terminal display width, accounting for
// wide runes. Used by the dataframe layout, where glyphs like flags and
// icons occupy two columns.
func PadDisplay(s string, width int) string {
	vis := runewidth.StringWidth(s)
	if vis >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-vis)
}
