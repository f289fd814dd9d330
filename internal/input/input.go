// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"context"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last press.
// Terminals report no key releases, so holding is inferred from auto-repeat.
const keyHoldDuration = 60 * time.Millisecond

// Intent is the movement snapshot the simulation consumes each frame.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Brake bool
}

// Any reports whether any flag is set.
func (i Intent) Any() bool {
	return i.Up || i.Down || i.Left || i.Right || i.Brake
}

// Input is the key state of one frame.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Yes     bool
	No      bool
	Escape  bool
	Closed  bool   // the underlying reader hit EOF or an error
	Pressed []byte // raw bytes received this frame
}

// Intent extracts the movement flags. Space brakes.
func (in Input) Intent() Intent {
	return Intent{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
		Brake: in.Space,
	}
}

type key int

const (
	keyQuit key = iota
	keyLeft
	keyRight
	keyUp
	keyDown
	keySpace
	keyEnter
	keyYes
	keyNo
	keyEscape
	numKeys
)

// bindings maps single bytes to keys: WASD and vim directions, prompt
// answers and Ctrl-C.
var bindings = map[byte]key{
	'q': keyQuit, 'Q': keyQuit, 0x03: keyQuit,
	'a': keyLeft, 'A': keyLeft, 'h': keyLeft, 'H': keyLeft,
	'd': keyRight, 'D': keyRight, 'l': keyRight, 'L': keyRight,
	'w': keyUp, 'W': keyUp, 'k': keyUp, 'K': keyUp,
	's': keyDown, 'S': keyDown, 'j': keyDown, 'J': keyDown,
	' ': keySpace,
	'\r': keyEnter, '\n': keyEnter,
	'y': keyYes, 'Y': keyYes,
	'n': keyNo, 'N': keyNo,
	0x1b: keyEscape,
}

// arrows maps the final byte of an ESC [ sequence to a direction.
var arrows = map[byte]key{
	'A': keyUp,
	'B': keyDown,
	'C': keyRight,
	'D': keyLeft,
}

// Stream delivers input bytes through a channel and remembers when each key
// was last pressed.
type Stream struct {
	ch     chan byte
	last   [numKeys]time.Time
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and feeds the stream. The
// goroutine exits when r returns an error or ctx is done; either way the
// stream reports Closed once drained.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for ctx.Err() == nil {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// ReadInput drains the bytes received since the last call without blocking
// and reports which keys are held. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	buf := s.drain()

	for i := 0; i < len(buf); i++ {
		if buf[i] == 0x1b && i+1 < len(buf) && buf[i+1] == '[' {
			i = s.controlSequence(buf, i+2, now)
			continue
		}
		if k, ok := bindings[buf[i]]; ok {
			s.last[k] = now
		}
	}

	held := func(k key) bool {
		return now.Sub(s.last[k]) < keyHoldDuration
	}
	return Input{
		Quit:    held(keyQuit) || s.closed,
		Left:    held(keyLeft),
		Right:   held(keyRight),
		Up:      held(keyUp),
		Down:    held(keyDown),
		Space:   held(keySpace),
		Enter:   held(keyEnter),
		Yes:     held(keyYes),
		No:      held(keyNo),
		Escape:  held(keyEscape),
		Closed:  s.closed,
		Pressed: buf,
	}
}

// controlSequence consumes the sequence whose parameters start at
// buf[start] and returns the index of its final byte. Arrow keys, with or
// without modifiers, are recorded; anything else is dropped so it cannot
// register as Escape.
func (s *Stream) controlSequence(buf []byte, start int, now time.Time) int {
	for j := start; j < len(buf); j++ {
		b := buf[j]
		if b < 0x40 || b > 0x7e {
			continue
		}
		if k, ok := arrows[b]; ok {
			s.last[k] = now
		}
		return j
	}
	return len(buf) - 1
}

func (s *Stream) drain() []byte {
	if s.closed {
		return nil
	}
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}
