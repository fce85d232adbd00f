package object

import "github.com/tomz197/shmup/internal/draw"

// GlyphWidth is the advance of one character of HUD text in logical pixels.
const GlyphWidth = 4

// Text is a simple drawable text label in arena coordinates.
type Text struct {
	X     float64
	Y     float64
	Value string
	Color draw.Color
}

// RightAligned returns a label whose last glyph ends margin pixels from the right edge.
func RightAligned(y, margin float64, value string, color draw.Color) Text {
	return Text{
		X:     ArenaWidth - float64(len(value)*GlyphWidth) - margin,
		Y:     y,
		Value: value,
		Color: color,
	}
}

// Draw writes the text at its position.
func (t Text) Draw(s draw.Sink) {
	if t.Value == "" {
		return
	}
	s.Text(t.X, t.Y, t.Value, t.Color)
}
