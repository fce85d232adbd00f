// Package input turns a terminal byte stream into per-frame input intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its last press.
// Terminals only report key repeats, so holds are inferred from recent bytes.
const keyHoldDuration = 60 * time.Millisecond

// maxEscapeLen bounds an unfinished escape sequence carried between frames.
const maxEscapeLen = 16

// Input is one frame's input intents.
// Movement fields are level-triggered (held); Fire, Confirm and Quit are
// edge-triggered and only true on the frame a new press arrived.
// Terminals send key autorepeat as fresh bytes, so holding space fires once
// per repeat rather than once per press.
type Input struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Fire    bool
	Confirm bool
	Quit    bool
	Pressed []byte // Raw bytes received this frame
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for holds.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Escape sequence split across frames
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream (e.g. EOF on the session) is reported as Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, time.Now())
	if closed {
		in.Quit = true
	}
	return in
}

// Reset forgets held movement keys, e.g. on a state change.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// apply parses bytes received at now and builds the frame's input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	data := buf
	if len(s.pending) > 0 {
		data = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b == '\x1b' {
			n, ok := s.escape(data[i:], now)
			if !ok {
				if len(data)-i <= maxEscapeLen {
					s.pending = append([]byte(nil), data[i:]...)
				}
				break
			}
			i += n - 1
			continue
		}

		switch b {
		case 'a', 'A', 'h', 'H':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case 'w', 'W', 'k', 'K':
			s.state.up = now
		case 's', 'S', 'j', 'J':
			s.state.down = now
		case ' ', 'z', 'Z':
			in.Fire = true
		case '\r', '\n':
			in.Confirm = true
		case 'q', 'Q', 0x03: // 0x03 is Ctrl-C in raw mode
			in.Quit = true
		}
	}

	in.Left = held(s.state.left, now)
	in.Right = held(s.state.right, now)
	in.Up = held(s.state.up, now)
	in.Down = held(s.state.down, now)
	return in
}

// escape parses the escape sequence at the start of seq and returns how many
// bytes it used. ok is false if the sequence is not finished yet.
// Arrow keys arrive as ESC [ A..D or ESC O A..D; other sequences are skipped.
func (s *Stream) escape(seq []byte, now time.Time) (n int, ok bool) {
	if len(seq) < 2 {
		return 0, false
	}
	if seq[1] != '[' && seq[1] != 'O' {
		return 1, true // lone ESC
	}

	for j := 2; j < len(seq); j++ {
		c := seq[j]
		switch {
		case c >= 0x40 && c <= 0x7e: // final byte
			switch c {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			return j + 1, true
		case c < 0x20 || c > 0x3f:
			return j, true // malformed, resume at c
		}
	}
	return 0, false
}

func held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < keyHoldDuration
}
