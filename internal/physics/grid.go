package physics

import "math"

// DefaultCellSize is the side length of a spatial hash cell in world units.
const DefaultCellSize = 200.0

// Cell identifies a spatial hash bucket: floor(x/cellSize), floor(y/cellSize).
type Cell struct {
	X, Y int
}

// forwardNeighbors are the half of the 8-neighbourhood visited from each
// cell. The other half is covered when the neighbour itself is visited, so
// every pair of adjacent cells is enumerated exactly once.
var forwardNeighbors = [4]Cell{{1, -1}, {1, 0}, {1, 1}, {0, 1}}

// SpatialHash is an unbounded uniform grid for broad-phase collision
// detection in a world that scrolls without edges. Items are identified by
// index and the hash is rebuilt from scratch every frame.
//
// Any two items whose positions are less than one cell apart on each axis
// land in the same or adjacent cells and are reported as a candidate pair.
type SpatialHash struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cells       map[Cell]*hashCell
	order       []Cell // occupied cells in first-insert order, for determinism
}

// hashCell stores item indices; the slice is reused between frames.
type hashCell struct {
	items []int
}

// NewSpatialHash creates an empty hash. A non-positive cellSize falls back to
// DefaultCellSize.
func NewSpatialHash(cellSize float64) *SpatialHash {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &SpatialHash{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[Cell]*hashCell),
	}
}

// CellSize returns the configured cell side length.
func (h *SpatialHash) CellSize() float64 {
	return h.cellSize
}

// CellOf returns the bucket key for a world position.
func (h *SpatialHash) CellOf(p Vector2) Cell {
	return Cell{
		X: int(math.Floor(p.X * h.invCellSize)),
		Y: int(math.Floor(p.Y * h.invCellSize)),
	}
}

// Clear empties every cell. Cells that stayed empty for a whole frame are
// dropped so the map does not grow without bound as the world scrolls.
func (h *SpatialHash) Clear() {
	for key, c := range h.cells {
		if len(c.items) == 0 {
			delete(h.cells, key)
			continue
		}
		c.items = c.items[:0]
	}
	h.order = h.order[:0]
}

// Insert adds an item at the given world position.
func (h *SpatialHash) Insert(p Vector2, index int) {
	key := h.CellOf(p)
	c, ok := h.cells[key]
	if !ok {
		c = &hashCell{}
		h.cells[key] = c
	}
	if len(c.items) == 0 {
		h.order = append(h.order, key)
	}
	c.items = append(c.items, index)
}

// Len returns the number of occupied cells.
func (h *SpatialHash) Len() int {
	return len(h.order)
}

// ForEachPair calls fn once for every unordered pair of items that share a
// cell or sit in neighbouring cells. Argument order is not guaranteed.
func (h *SpatialHash) ForEachPair(fn func(a, b int)) {
	for _, key := range h.order {
		items := h.cells[key].items

		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				fn(items[i], items[j])
			}
		}

		for _, off := range forwardNeighbors {
			neighbor, ok := h.cells[Cell{X: key.X + off.X, Y: key.Y + off.Y}]
			if !ok || len(neighbor.items) == 0 {
				continue
			}
			for _, a := range items {
				for _, b := range neighbor.items {
					fn(a, b)
				}
			}
		}
	}
}
