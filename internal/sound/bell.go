package sound

import "io"

// Bell signals hits with the terminal bell. Used where no audio device is
// available, e.g. remote terminal sessions.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell that writes to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell for hits; other effects are silent.
func (b *Bell) Play(e Effect) {
	if e == EffectHit {
		_, _ = io.WriteString(b.w, "\a")
	}
}

// Ensure implementations satisfy Sink.
var (
	_ Sink = Mute{}
	_ Sink = (*Bell)(nil)
)
