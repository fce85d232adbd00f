package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/object"
)

// Debug font cell size and the on-screen glyph size HUD text is scaled to.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
	glyphHeight      = 8
)

// maxCachedTexts bounds the text image cache; score strings change often.
const maxCachedTexts = 64

// imageSink draws primitives onto an ebiten image.
type imageSink struct {
	dst     *ebiten.Image
	sprites map[*draw.Sprite]*ebiten.Image
	texts   map[string]*ebiten.Image
}

// Ensure imageSink satisfies draw.Sink.
var _ draw.Sink = (*imageSink)(nil)

func newImageSink() *imageSink {
	return &imageSink{
		sprites: make(map[*draw.Sprite]*ebiten.Image),
		texts:   make(map[string]*ebiten.Image),
	}
}

// begin targets screen for the next frame and clears it.
func (s *imageSink) begin(screen *ebiten.Image) {
	s.dst = screen
	s.dst.Fill(draw.ColorBlack.RGBA())
}

func (s *imageSink) FillRect(x, y, w, h float64, c draw.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (s *imageSink) FillCircle(cx, cy, r float64, c draw.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.RGBA(), false)
}

func (s *imageSink) StrokeCircle(cx, cy, r float64, c draw.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), 1, c.RGBA(), false)
}

// Blit draws a sprite, uploading it once on first use.
func (s *imageSink) Blit(x, y float64, sp *draw.Sprite) {
	img, ok := s.sprites[sp]
	if !ok {
		img = spriteImage(sp)
		s.sprites[sp] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(img, op)
}

// Text draws str with the debug font, scaled down to the HUD glyph size and tinted.
func (s *imageSink) Text(x, y float64, str string, c draw.Color) {
	img, ok := s.texts[str]
	if !ok {
		if len(s.texts) >= maxCachedTexts {
			for k, old := range s.texts {
				old.Deallocate()
				delete(s.texts, k)
			}
		}
		img = ebiten.NewImage(len(str)*debugGlyphWidth, debugGlyphHeight)
		ebitenutil.DebugPrintAt(img, str, 0, 0)
		s.texts[str] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(object.GlyphWidth)/debugGlyphWidth, float64(glyphHeight)/debugGlyphHeight)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	s.dst.DrawImage(img, op)
}

// spriteImage converts a palette sprite to an image with transparent background.
func spriteImage(sp *draw.Sprite) *ebiten.Image {
	pix := make([]byte, sp.Width*sp.Height*4)
	for y := 0; y < sp.Height; y++ {
		for x := 0; x < sp.Width; x++ {
			c := sp.At(x, y)
			if c == draw.ColorBlack {
				continue
			}
			rgba := c.RGBA()
			i := (y*sp.Width + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = rgba.R, rgba.G, rgba.B, rgba.A
		}
	}

	img := ebiten.NewImage(sp.Width, sp.Height)
	img.WritePixels(pix)
	return img
}
