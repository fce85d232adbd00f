// Package draw provides the rendering sink used by the game and its terminal implementation.
package draw

import (
	"image/color"
	"strconv"
)

// Color is an index into the 16-color game palette. Color 0 is black and
// doubles as the transparent color for sprites.
type Color uint8

// Palette colors.
const (
	ColorBlack Color = iota
	ColorNavy
	ColorPurple
	ColorTeal
	ColorBrown
	ColorDarkBlue
	ColorLightBlue
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorLime
	ColorCyan
	ColorGray
	ColorPink
	ColorPeach
)

// PaletteSize is the number of colors in the palette.
const PaletteSize = 16

var palette = [PaletteSize]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x2b, 0x33, 0x5f, 0xff},
	{0x7e, 0x20, 0x72, 0xff},
	{0x19, 0x95, 0x9c, 0xff},
	{0x8b, 0x48, 0x52, 0xff},
	{0x39, 0x5c, 0x98, 0xff},
	{0xa9, 0xc1, 0xff, 0xff},
	{0xee, 0xee, 0xee, 0xff},
	{0xd4, 0x18, 0x6c, 0xff},
	{0xd3, 0x84, 0x41, 0xff},
	{0xe9, 0xc3, 0x5b, 0xff},
	{0x70, 0xc6, 0xa9, 0xff},
	{0x76, 0x96, 0xde, 0xff},
	{0xa3, 0xa3, 0xa3, 0xff},
	{0xff, 0x97, 0x98, 0xff},
	{0xed, 0xc7, 0xb0, 0xff},
}

// RGBA returns the palette entry for c. Out-of-range indices wrap.
func (c Color) RGBA() color.RGBA {
	return palette[int(c)%PaletteSize]
}

// Sink receives draw primitives addressed in arena pixel coordinates.
type Sink interface {
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r float64, c Color)
	Blit(x, y float64, s *Sprite)
	Text(x, y float64, s string, c Color)
}

// Sprite is a small palette bitmap. Pixels with ColorBlack are transparent.
type Sprite struct {
	Width  int
	Height int
	Pixels []Color // Row-major: [y * Width + x]
}

// ParseSprite builds a sprite from rows of hex digits, one digit per pixel.
// Invalid digits are treated as transparent.
func ParseSprite(rows ...string) *Sprite {
	s := &Sprite{Height: len(rows)}
	for _, row := range rows {
		if len(row) > s.Width {
			s.Width = len(row)
		}
	}
	s.Pixels = make([]Color, s.Width*s.Height)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			v, err := strconv.ParseUint(row[x:x+1], 16, 8)
			if err != nil {
				continue
			}
			s.Pixels[y*s.Width+x] = Color(v)
		}
	}
	return s
}

// At returns the color of the pixel at (x, y), or ColorBlack when out of range.
func (s *Sprite) At(x, y int) Color {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return ColorBlack
	}
	return s.Pixels[y*s.Width+x]
}
