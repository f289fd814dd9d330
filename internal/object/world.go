package object

import (
	"io"

	"github.com/charmbracelet/log"
)

// World is the registry of live entities for one level. It resolves weak
// handles and owns the exclusive player-attachment marker.
//
// World is not safe for concurrent use; the frame loop owns it.
type World struct {
	entities map[Handle]Entity
	attached Handle // obstacle currently carrying the player, zero if none
	logger   *log.Logger
}

// NewWorld creates an empty registry. A nil logger discards output.
func NewWorld(logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		entities: make(map[Handle]Entity),
		logger:   logger,
	}
}

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger {
	return w.logger
}

// Add registers an entity and returns its handle.
func (w *World) Add(e Entity) Handle {
	h := e.Handle()
	w.entities[h] = e
	return h
}

// Remove destroys the entity behind h. Handles held elsewhere become dangling.
// Removing the obstacle that holds the attachment marker releases it.
func (w *World) Remove(h Handle) {
	if _, ok := w.entities[h]; !ok {
		return
	}
	delete(w.entities, h)
	if w.attached == h {
		w.attached = 0
	}
}

// Resolve dereferences a weak handle. ok is false for dangling or zero handles.
func (w *World) Resolve(h Handle) (Entity, bool) {
	if !h.Valid() {
		return nil, false
	}
	e, ok := w.entities[h]
	return e, ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Attached returns the handle of the obstacle holding the player, if any.
func (w *World) Attached() (Handle, bool) {
	return w.attached, w.attached.Valid()
}

// attach hands the marker to obstacle h. It fails if another obstacle holds it.
func (w *World) attach(h Handle) bool {
	if w.attached.Valid() {
		return false
	}
	w.attached = h
	return true
}

// Lookup resolves h and asserts the concrete entity type.
func Lookup[T Entity](w *World, h Handle) (T, bool) {
	var zero T
	e, ok := w.Resolve(h)
	if !ok {
		return zero, false
	}
	t, ok := e.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
