package core

import "image/color"

// Color represents a foreground color for a screen cell.
// The terminal renderer maps it to ANSI 256-color codes, the desktop
// renderer to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorLime
	ColorOrange
	ColorGray
)

var rgbaByColor = map[Color]color.RGBA{
	ColorDefault:      {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	ColorRed:          {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	ColorGreen:        {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	ColorYellow:       {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	ColorBlue:         {R: 0x33, G: 0x66, B: 0xff, A: 0xff},
	ColorMagenta:      {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	ColorCyan:         {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	ColorWhite:        {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightRed:    {R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	ColorBrightGreen:  {R: 0x88, G: 0xff, B: 0x88, A: 0xff},
	ColorBrightYellow: {R: 0xff, G: 0xff, B: 0x88, A: 0xff},
	ColorLime:         {R: 0x88, G: 0xff, B: 0x00, A: 0xff},
	ColorOrange:       {R: 0xff, G: 0x66, B: 0x00, A: 0xff},
	ColorGray:         {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

// ToRGBA returns the color as an opaque RGBA value.
func (c Color) ToRGBA() color.RGBA {
	if v, ok := rgbaByColor[c]; ok {
		return v
	}
	return rgbaByColor[ColorDefault]
}
