package board

import (
	"fmt"

	"github.com/katalvlaran/hexgame/coords"
	"github.com/katalvlaran/hexgame/unionfind"
)

// Board is the Hex playing surface. It exclusively owns its cell storage;
// copy a Board only through ToStoneMatrix/FromStoneMatrix. The zero value is
// unusable — construct with New or FromStoneMatrix.
type Board struct {
	cells *hexCells
}

// New returns an empty Board of the given size, with the four edge cells
// already colored. Returns ErrSizeOutOfBounds outside
// [MinBoardSize, MaxBoardSize].
func New(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d, want %d..%d", ErrSizeOutOfBounds, size, MinBoardSize, MaxBoardSize)
	}

	return &Board{cells: newHexCells(size)}, nil
}

// FromStoneMatrix bulk-loads a full position. The matrix dimension must be
// within [MinBoardSize, MaxBoardSize] and every row as long as the matrix is
// tall (ErrNotSquare names the offending row). Stones are replayed cell by
// cell through the same path as Play, row-major, so the resulting
// connectivity state is exactly what incremental play would have produced.
func FromStoneMatrix(matrix StoneMatrix) (*Board, error) {
	b, err := New(len(matrix))
	if err != nil {
		return nil, err
	}
	size := len(matrix)
	for row, cells := range matrix {
		if len(cells) != size {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNotSquare, row, len(cells), size)
		}
	}

	for row, cells := range matrix {
		for column, color := range cells {
			if color == None {
				continue
			}
			// One color per cell by construction, so Play cannot fail here.
			if err = b.Play(coords.New(row, column), color); err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.cells.size
}

// ColorAt returns the stone at c, or None when the cell is empty or c is off
// the board.
func (b *Board) ColorAt(c coords.Coords) Color {
	if !c.OnBoard(b.cells.size) {
		return None
	}

	return b.cells.colorAt(b.cells.indexFromCoords(c))
}

// Play puts a stone of the given color on c and merges it with every
// same-colored neighbor. Returns ErrOutOfBounds or ErrCellOccupied without
// touching the board; a successful move is never undone or recolored.
func (b *Board) Play(c coords.Coords, color Color) error {
	if !c.OnBoard(b.cells.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	index := b.cells.indexFromCoords(c)
	if b.cells.colorAt(index) != None {
		return fmt.Errorf("%w: %s", ErrCellOccupied, c)
	}

	b.cells.setColor(index, color)

	var buf [maxNeighbors]int
	neighbors := b.cells.appendNeighbors(buf[:0], index)
	for i := 0; i < len(neighbors); i++ {
		if b.cells.colorAt(neighbors[i]) == color {
			unionfind.Merge(b.cells, index, neighbors[i])
			// Hex geometry: the next neighbor in clockwise order touches
			// both this one and the played cell, so if it carries the same
			// color it is already transitively connected. Skip the probe.
			i++
		}
	}

	return nil
}

// InSameSet reports whether the two positions are connected through a chain
// of like-colored, hex-adjacent cells (edges included). Asking about a
// player's two home edges answers the win question.
//
// The query may rewrite internal parent links (path compression); observable
// connectivity never changes.
func (b *Board) InSameSet(p, q Position) bool {
	return unionfind.InSameSet(b.cells, b.cells.indexFromPosition(p), b.cells.indexFromPosition(q))
}

// EmptyCells returns the coordinates of every cell without a stone,
// row-major.
func (b *Board) EmptyCells() []coords.Coords {
	size := b.cells.size
	empty := make([]coords.Coords, 0, size*size)
	for row := 0; row < size; row++ {
		for column := 0; column < size; column++ {
			c := coords.New(row, column)
			if b.cells.colorAt(b.cells.indexFromCoords(c)) == None {
				empty = append(empty, c)
			}
		}
	}

	return empty
}

// ToStoneMatrix exports the position as a fresh row-major matrix. The result
// shares no storage with the Board.
func (b *Board) ToStoneMatrix() StoneMatrix {
	size := b.cells.size
	matrix := make(StoneMatrix, size)
	for row := 0; row < size; row++ {
		matrix[row] = make([]Color, size)
		for column := 0; column < size; column++ {
			matrix[row][column] = b.cells.colorAt(b.cells.indexFromCoords(coords.New(row, column)))
		}
	}

	return matrix
}
