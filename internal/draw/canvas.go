package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical arena coordinates to actual terminal pixels.
// Text is kept in a separate cell layer drawn on top of the pixels.
type Canvas struct {
	termWidth      int     // Render area columns
	termHeight     int     // Render area rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], ColorBlack if unset
	text           []rune  // Text overlay per cell, 0 if none
	textColor      []Color // Text color per cell

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets (columns/rows to skip) for centering the render area.
	offsetCol int
	offsetRow int

	// Last rendered cells, used to only emit what changed.
	prev        []cell
	forceRedraw bool

	renderBuf strings.Builder
	numBuf    [20]byte
}

// cell is the composed content of one terminal cell.
type cell struct {
	ch rune
	fg Color
	bg Color
}

// Ensure Canvas satisfies Sink.
var _ Sink = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the render area dimensions in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new render dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.text = make([]rune, termWidth*termHeight)
		c.textColor = make([]Color, termWidth*termHeight)
		c.prev = make([]cell, termWidth*termHeight)
		c.forceRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.forceRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the render area column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// ForceRedraw makes the next Render emit every cell, e.g. after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// Clear resets all pixels and text in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
	clear(c.text)
}

// setPixel sets a pixel at render coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// PixelAt returns the pixel color at render coordinates.
func (c *Canvas) PixelAt(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorBlack
	}
	return c.pixels[y*c.termWidth+x]
}

// TextAt returns the text rune at a render cell, or 0.
func (c *Canvas) TextAt(col, row int) rune {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return 0
	}
	return c.text[row*c.termWidth+col]
}

// FillRect fills a logical rectangle. Always covers at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// FillCircle fills a logical circle using per-row spans in pixel space.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	c.setPixel(int(pcx), int(pcy), col)
	if rx <= 0 || ry <= 0 {
		return
	}

	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		dy := (float64(py) + 0.5 - pcy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for px := int(math.Round(pcx - half)); px <= int(math.Round(pcx+half)); px++ {
			c.setPixel(px, py, col)
		}
	}
}

// StrokeCircle draws a logical circle outline by sampling its perimeter.
func (c *Canvas) StrokeCircle(cx, cy, r float64, col Color) {
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	steps := int(2 * math.Pi * math.Max(rx, ry) * 2)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.setPixel(int(math.Round(pcx+math.Cos(a)*rx)), int(math.Round(pcy+math.Sin(a)*ry)), col)
	}
}

// Blit draws a sprite with its top-left corner at logical (x, y).
func (c *Canvas) Blit(x, y float64, s *Sprite) {
	if s == nil {
		return
	}
	for sy := 0; sy < s.Height; sy++ {
		for sx := 0; sx < s.Width; sx++ {
			if col := s.At(sx, sy); col != ColorBlack {
				c.FillRect(x+float64(sx), y+float64(sy), 1, 1, col)
			}
		}
	}
}

// Text places a string in the text layer, one rune per cell, starting at the
// cell containing logical (x, y). Runes past the right edge are clipped.
func (c *Canvas) Text(x, y float64, s string, col Color) {
	startCol := int(x * c.scaleX)
	row := int(y*c.scaleY) / 2
	if row < 0 || row >= c.termHeight {
		return
	}
	i := 0
	for _, r := range s {
		cc := startCol + i
		i++
		if cc < 0 {
			continue
		}
		if cc >= c.termWidth {
			break
		}
		c.text[row*c.termWidth+cc] = r
		c.textColor[row*c.termWidth+cc] = col
	}
}

// compose returns the cell for a render position from the pixel and text layers.
func (c *Canvas) compose(col, row int) cell {
	if r := c.text[row*c.termWidth+col]; r != 0 {
		return cell{ch: r, fg: c.textColor[row*c.termWidth+col], bg: ColorBlack}
	}

	top := c.pixels[row*2*c.termWidth+col]
	bottom := ColorBlack
	if row*2+1 < c.subPixelHeight {
		bottom = c.pixels[(row*2+1)*c.termWidth+col]
	}

	switch {
	case top == ColorBlack && bottom == ColorBlack:
		return cell{ch: ' '}
	case top == bottom:
		return cell{ch: BlockFull, fg: top}
	default:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	}
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Keeps writes under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the previous Render using
// 24-bit color escape sequences.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	var lastFG, lastBG Color
	colorsSet := false

	for row := 0; row < c.termHeight; row++ {
		cursorCol := -1
		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			cur := c.compose(col, row)
			if !c.forceRedraw && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			if cursorCol != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !colorsSet || cur.fg != lastFG {
				c.writeColor(38, cur.fg)
				lastFG = cur.fg
			}
			if !colorsSet || cur.bg != lastBG {
				c.writeColor(48, cur.bg)
				lastBG = cur.bg
			}
			colorsSet = true
			c.renderBuf.WriteRune(cur.ch)
			cursorCol = col + 1
		}
	}
	c.forceRedraw = false

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends an SGR truecolor sequence; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, col Color) {
	rgba := col.RGBA()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(rgba.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(rgba.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(rgba.B), 10))
	c.renderBuf.WriteByte('m')
}
