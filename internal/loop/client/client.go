// Package client drives a game state on a terminal: it reads key bytes,
// ticks the simulation at a fixed rate and renders with half-block cells.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/input"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/object"
)

// Render area limits: one terminal column per arena pixel and two arena
// pixels per row. Larger terminals get a centered area of this size.
const (
	MaxTermWidth  = object.ArenaWidth
	MaxTermHeight = object.ArenaHeight / 2
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client handles rendering and input for a single terminal.
type Client struct {
	state        *loop.State
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates a whole frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger

	lastInput   time.Time
	isInactive  bool // Inactivity warning is showing
	wasInactive bool // isInactive as of the previous frame
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
	Logger       *log.Logger       // Defaults to the charmbracelet default logger
}

// New creates a client for state, reading keys from r and rendering to w.
func New(state *loop.State, r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := fitArena(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, object.ArenaWidth, object.ArenaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		state:        state,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		lastInput:    time.Now(),
	}
}

// Run ticks the game at loop.TargetFPS until the player quits, the input
// closes, the client idles out or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)

	for c.state.Running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()

		if err := c.step(input.ReadInput(c.inputStream), frameStart); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < loop.TargetFrameTime {
			time.Sleep(loop.TargetFrameTime - elapsed)
		}
	}

	return nil
}

// step runs one frame: inactivity bookkeeping, resize, one simulation tick
// and drawing.
func (c *Client) step(in input.Input, now time.Time) error {
	c.trackActivity(in, now)
	if !c.state.Running {
		return nil
	}

	c.updateScreen()

	prev := c.state.GameState
	c.state.Update(in)
	if c.state.GameState != prev {
		// Keys held on the previous screen should not leak into the next one
		c.inputStream.Reset()
	}

	return c.drawFrame(now)
}

// trackActivity updates the inactivity state from this frame's input and
// stops the game once the user has been idle for too long.
func (c *Client) trackActivity(in input.Input, now time.Time) {
	idle := now.Sub(c.lastInput).Seconds()

	switch {
	case len(in.Pressed) > 0:
		c.lastInput = now
		c.isInactive = false
	case idle > InactivityDisconnectUser:
		c.logger.Info("disconnecting inactive client", "idle", time.Duration(idle*float64(time.Second)).Round(time.Second))
		c.state.Running = false
	case idle > InactivityWarnUser:
		c.isInactive = true
	}
}

// updateScreen handles terminal resize. On actual size changes the terminal is
// cleared to remove residual cells outside the new render area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitArena(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// fitArena computes the largest render area with the arena's aspect ratio that
// fits the terminal, capped at the max render resolution, and the offsets that
// center it.
func fitArena(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = renderWidth * object.ArenaHeight / (2 * object.ArenaWidth)
	if renderHeight > termHeight {
		renderHeight = min(termHeight, MaxTermHeight)
		renderWidth = renderHeight * 2 * object.ArenaWidth / object.ArenaHeight
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
