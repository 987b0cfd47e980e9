package board

import (
	"fmt"

	"github.com/katalvlaran/hexgame/coords"
)

// noParent marks a cell that is its own union-find root.
const noParent = -1

// hexCell is one slot of the flat storage: a stone color (None when empty)
// and the union-find parent link.
type hexCell struct {
	color  Color
	parent int
}

// hexCells is the flat storage behind a Board.
//
// Layout: [size*size normal cells, row-major index = row*size+column;
// then the Left, Top, Right, Bottom edge slots]. Placing the edges at the
// top of the index space is load-bearing: unionfind.Merge prefers larger
// roots, so edges stay roots without rank bookkeeping, and once a player's
// two edges connect the later edge is the single canonical root.
//
// hexCells implements unionfind.Store[int].
type hexCells struct {
	size  int
	cells []hexCell
}

// newHexCells allocates storage for a size×size board and pre-colors the
// four edge slots with their owning player. size must already be validated.
func newHexCells(size int) *hexCells {
	h := &hexCells{
		size:  size,
		cells: make([]hexCell, size*size+4),
	}
	for i := range h.cells {
		h.cells[i].parent = noParent
	}
	for _, e := range []Edge{Left, Top, Right, Bottom} {
		h.cells[h.indexFromEdge(e)].color = e.Color()
	}

	return h
}

// indexFromCoords maps coordinates to the flat index row*size+column.
// The caller must have bounds-checked c; this is the package's hot path and
// performs no validation of its own.
func (h *hexCells) indexFromCoords(c coords.Coords) int {
	return c.Row*h.size + c.Column
}

// indexFromEdge maps an edge to its slot after the normal cells.
func (h *hexCells) indexFromEdge(e Edge) int {
	return h.size*h.size + int(e)
}

// indexFromPosition maps either address kind to its flat index.
func (h *hexCells) indexFromPosition(p Position) int {
	if e, ok := p.Edge(); ok {
		return h.indexFromEdge(e)
	}

	return h.indexFromCoords(p.cell)
}

// coordsFromIndex inverts indexFromCoords. Handing it an edge slot is a
// defect in this package, not bad input, so it panics.
func (h *hexCells) coordsFromIndex(index int) coords.Coords {
	if index >= h.size*h.size {
		panic(fmt.Sprintf("board: index %d is an edge slot, not a cell", index))
	}

	return coords.New(index/h.size, index%h.size)
}

// positionFromIndex decodes a flat index into the exported address type.
func (h *hexCells) positionFromIndex(index int) Position {
	if first := h.size * h.size; index >= first {
		return EdgePosition(Edge(index - first))
	}

	return CellPosition(h.coordsFromIndex(index))
}

// colorAt returns the color stored at a flat index (edges included).
func (h *hexCells) colorAt(index int) Color {
	return h.cells[index].color
}

// setColor stamps a color onto a slot. Stones are never removed or recolored.
func (h *hexCells) setColor(index int, c Color) {
	h.cells[index].color = c
}

// Parent implements unionfind.Store[int].
func (h *hexCells) Parent(item int) (int, bool) {
	p := h.cells[item].parent

	return p, p != noParent
}

// SetParent implements unionfind.Store[int].
func (h *hexCells) SetParent(item, parent int) {
	h.cells[item].parent = parent
}
