package draw

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize caps a single write to the session so frames leave as
// packets below a typical MTU.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and hands it to the
// underlying writer in chunks of at most maxChunkSize bytes. Positions given
// to MoveCursor and WriteAt are 1-based within the render area; the offset
// that centres the area is added here.
type ChunkWriter struct {
	w      io.Writer
	buf    []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter for w with the given offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		w:      w,
		buf:    make([]byte, 0, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor queues a cursor move to (col, row) of the render area.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = appendCursor(cw.buf, col+cw.offCol, row+cw.offRow)
}

// Write queues raw bytes. Canvas output already carries absolute positions.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString queues s.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt queues s at (col, row) of the render area.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.WriteString(s)
}

// ClearScreen queues a full terminal clear.
func (cw *ChunkWriter) ClearScreen() {
	cw.WriteString(seqClear)
}

// Len returns the number of queued bytes.
func (cw *ChunkWriter) Len() int {
	return len(cw.buf)
}

// Flush writes the queued frame and empties the queue, even on error.
func (cw *ChunkWriter) Flush() error {
	err := writeChunked(cw.w, cw.buf)
	cw.buf = cw.buf[:0]
	return err
}

var _ io.Writer = (*ChunkWriter)(nil)

func writeChunked(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// appendCursor appends an absolute, 1-based cursor position sequence.
func appendCursor(dst []byte, col, row int) []byte {
	dst = append(dst, "\033["...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the tty behind os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClampTermSize fits a terminal into maxWidth x maxHeight and returns the
// render size plus the offset that centres it.
func ClampTermSize(termWidth, termHeight, maxWidth, maxHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, maxWidth)
	renderHeight = min(termHeight, maxHeight)
	return renderWidth, renderHeight, (termWidth - renderWidth) / 2, (termHeight - renderHeight) / 2
}
