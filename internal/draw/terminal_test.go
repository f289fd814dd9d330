package draw

import (
	"bytes"
	"strings"
	"testing"
)

type countingWriter struct {
	writes int
	buf    bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

func TestChunkWriter(t *testing.T) {
	var out countingWriter
	cw := NewChunkWriter(&out, 2, 1)

	cw.WriteAt(1, 1, "hi")
	if got, want := cw.Len(), len("\033[2;3Hhi"); got != want {
		t.Errorf("Len() = %d, expected %d", got, want)
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := out.buf.String(); got != "\033[2;3Hhi" {
		t.Errorf("output = %q, expected offset cursor move", got)
	}
	if cw.Len() != 0 {
		t.Errorf("Len() = %d after Flush, expected 0", cw.Len())
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out countingWriter
	cw := NewChunkWriter(&out, 0, 0)

	payload := strings.Repeat("x", 20000)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.buf.String() != payload {
		t.Errorf("output length = %d, expected %d", out.buf.Len(), len(payload))
	}
	if out.writes < 2 {
		t.Errorf("writes = %d, expected the payload to be split", out.writes)
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"fits", 100, 40, 100, 40, 0, 0},
		{"too wide", 300, 40, 240, 40, 30, 0},
		{"too tall", 100, 100, 100, 80, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := ClampTermSize(tt.w, tt.h, 240, 80)
			if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
				t.Errorf("ClampTermSize() = %d %d %d %d, expected %d %d %d %d",
					rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestChunkWriterClearScreen(t *testing.T) {
	var out countingWriter
	cw := NewChunkWriter(&out, 3, 3)
	cw.ClearScreen()
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := out.buf.String(); got != "\033[H\033[2J" {
		t.Errorf("output = %q, expected a clear sequence", got)
	}

	if err := cw.Flush(); err != nil || out.writes != 1 {
		t.Errorf("empty Flush() wrote %d times, err %v, expected no writes", out.writes-1, err)
	}
}
