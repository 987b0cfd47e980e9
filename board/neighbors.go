package board

import "github.com/katalvlaran/hexgame/coords"

// maxNeighbors is the neighbor count of an interior cell. Boundary cells
// have fewer entries, never more.
const maxNeighbors = 6

// appendNeighbors appends the hex-neighbors of the cell at index to dst and
// returns the extended slice. The order is fixed and clockwise, starting at
// the left neighbor: left, top-left, top-right, right, bottom-right,
// bottom-left. Off-board neighbors are replaced by the matching edge slot;
// the top-right and bottom-left neighbors are the only two that can be
// entirely absent (top-right on the first row or last column, bottom-left on
// the last row or first column), so the acute corners yield 4 entries, the
// obtuse corners and other boundary cells 5, and interior cells 6.
//
// Complexity: O(1) — six branches, no allocation when dst has capacity.
func (h *hexCells) appendNeighbors(dst []int, index int) []int {
	size := h.size

	// Left, or the Left edge on the first column.
	if index%size == 0 {
		dst = append(dst, h.indexFromEdge(Left))
	} else {
		dst = append(dst, index-1)
	}

	// Top-left, or the Top edge on the first row.
	if index < size {
		dst = append(dst, h.indexFromEdge(Top))
	} else {
		dst = append(dst, index-size)
	}

	// Top-right: absent on the first row and on the last column.
	if index >= size && index%size < size-1 {
		dst = append(dst, index-size+1)
	}

	// Right, or the Right edge on the last column.
	if index%size == size-1 {
		dst = append(dst, h.indexFromEdge(Right))
	} else {
		dst = append(dst, index+1)
	}

	// Bottom-right, or the Bottom edge on the last row.
	if index >= size*(size-1) {
		dst = append(dst, h.indexFromEdge(Bottom))
	} else {
		dst = append(dst, index+size)
	}

	// Bottom-left: absent on the last row and on the first column.
	if index < size*(size-1) && index%size > 0 {
		dst = append(dst, index+size-1)
	}

	return dst
}

// Neighbors returns the hex-neighbors of the cell at c as Positions, in the
// fixed clockwise order described above. Off-board coordinates yield nil.
func (b *Board) Neighbors(c coords.Coords) []Position {
	if !c.OnBoard(b.cells.size) {
		return nil
	}

	var buf [maxNeighbors]int
	indexes := b.cells.appendNeighbors(buf[:0], b.cells.indexFromCoords(c))

	neighbors := make([]Position, len(indexes))
	for i, index := range indexes {
		neighbors[i] = b.cells.positionFromIndex(index)
	}

	return neighbors
}
