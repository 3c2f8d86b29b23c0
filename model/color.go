package model

// RGB is a 24-bit color shared by the cell and raster render paths.
type RGB struct {
	R, G, B uint8
}

// Semantic palette. Matches the terminal theme used by the UI styles.
var (
	ColorGreen    = RGB{0x50, 0xFA, 0x7B}
	ColorYellow   = RGB{0xF1, 0xFA, 0x8C}
	ColorOrange   = RGB{0xFF, 0xB8, 0x6C}
	ColorRed      = RGB{0xFF, 0x55, 0x55}
	ColorCyan     = RGB{0x8B, 0xE9, 0xFD}
	ColorMagenta  = RGB{0xFF, 0x79, 0xC6}
	ColorWhite    = RGB{0xF8, 0xF8, 0xF2}
	ColorGray     = RGB{0x62, 0x72, 0xA4}
	ColorDarkGray = RGB{0x44, 0x47, 0x5A}
	ColorBlue     = RGB{0x62, 0x8F, 0xE9}
)
