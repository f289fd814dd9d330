package input

import (
	"bufio"
	"context"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, keys string) {
	for i := 0; i < len(keys); i++ {
		s.ch <- keys[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want Intent
	}{
		{"wasd up", "w", Intent{Up: true}},
		{"vim down", "j", Intent{Down: true}},
		{"arrow left", "\x1b[D", Intent{Left: true}},
		{"arrow right", "\x1b[C", Intent{Right: true}},
		{"combination", "w\x1b[C", Intent{Up: true, Right: true}},
		{"brake", " ", Intent{Brake: true}},
		{"modified arrow", "\x1b[1;5A", Intent{Up: true}},
		{"unknown sequence", "\x1b[15~", Intent{}},
		{"unrelated", "x", Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.keys)

			in := s.read(time.Now())

			if got := in.Intent(); got != tt.want {
				t.Errorf("Intent() = %+v, expected %+v", got, tt.want)
			}
			if string(in.Pressed) != tt.keys {
				t.Errorf("Pressed = %q, expected %q", in.Pressed, tt.keys)
			}
		})
	}
}

func TestReadInputHold(t *testing.T) {
	s := newStream()
	now := time.Now()
	feed(s, "a")
	if !s.read(now).Left {
		t.Fatalf("Left = false, expected true on the press frame")
	}

	if !s.read(now.Add(keyHoldDuration / 2)).Left {
		t.Errorf("Left = false within hold duration, expected true")
	}
	if s.read(now.Add(keyHoldDuration)).Left {
		t.Errorf("Left = true after hold duration, expected false")
	}
}

func TestReadInputPrompts(t *testing.T) {
	s := newStream()
	feed(s, "yq\r")

	in := s.read(time.Now())

	if !in.Yes || !in.Quit || !in.Enter {
		t.Errorf("Yes/Quit/Enter = %v/%v/%v, expected all true", in.Yes, in.Quit, in.Enter)
	}
	if in.No {
		t.Errorf("No = true, expected false")
	}
}

func TestReadInputClosed(t *testing.T) {
	s := StartStream(context.Background(), bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := ReadInput(s); in.Closed {
			if !in.Quit {
				t.Errorf("Quit = false on closed stream, expected true")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("Closed never reported for an exhausted reader")
}

// endless never runs out of key presses.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestStartStreamStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := StartStream(ctx, bufio.NewReader(endless{}))

	// Let the reader fill the buffer and block on the next send.
	deadline := time.Now().Add(time.Second)
	for len(s.ch) < cap(s.ch) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	deadline = time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := ReadInput(s); in.Closed {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Errorf("Closed never reported after cancel, reader goroutine still running")
}

func TestIntentAny(t *testing.T) {
	if (Intent{}).Any() {
		t.Errorf("Any() = true for zero intent")
	}
	if !(Intent{Brake: true}).Any() {
		t.Errorf("Any() = false with brake held")
	}
}

func TestReadInputEscape(t *testing.T) {
	tests := []struct {
		name   string
		keys   string
		escape bool
	}{
		{"lone escape", "\x1b", true},
		{"arrow", "\x1b[A", false},
		{"function key", "\x1b[15~", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.keys)
			if got := s.read(time.Now()).Escape; got != tt.escape {
				t.Errorf("Escape = %v, expected %v", got, tt.escape)
			}
		})
	}
}
