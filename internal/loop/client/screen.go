package client

import (
	"fmt"
	"time"
)

// drawFrame renders the current state and flushes it as one write.
func (c *Client) drawFrame(now time.Time) error {
	// Leaving the inactivity overlay needs a full repaint underneath it
	if c.isInactive != c.wasInactive {
		c.chunkWriter.Write([]byte("\033[H\033[2J"))
		c.canvas.ForceRedraw()
		c.wasInactive = c.isInactive
	}

	c.canvas.Clear()
	c.state.Draw(c.canvas)

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}

	if c.isInactive {
		c.drawInactivityScreen(now)
	}

	return c.chunkWriter.Flush()
}

// drawInactivityScreen draws the inactivity warning on top of the game.
func (c *Client) drawInactivityScreen(now time.Time) {
	centerX := c.canvas.TerminalWidth() / 2
	centerY := c.canvas.TerminalHeight() / 2
	cw := c.chunkWriter

	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"Disconnecting in %d seconds.",
		int(InactivityDisconnectUser-now.Sub(c.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}
