// Package board defines core types, size bounds, and sentinel errors for the
// Hex playing surface.
package board

import (
	"errors"

	"github.com/katalvlaran/hexgame/coords"
)

// Board size bounds. They are process-wide constants, not tunable state.
const (
	// MinBoardSize is the smallest playable board: neighbor arithmetic
	// assumes at least a 2×2 grid.
	MinBoardSize = 2

	// MaxBoardSize caps boards at 19×19. This is a scalability ceiling, not
	// a structural limit of the data layout.
	MaxBoardSize = 19
)

// Sentinel errors for board construction and play.
var (
	// ErrSizeOutOfBounds indicates a requested size outside [MinBoardSize, MaxBoardSize].
	ErrSizeOutOfBounds = errors.New("board: size out of bounds")

	// ErrNotSquare indicates a bulk-loaded matrix row whose length differs from the matrix size.
	ErrNotSquare = errors.New("board: matrix is not square")

	// ErrOutOfBounds indicates played coordinates outside the board.
	ErrOutOfBounds = errors.New("board: coordinates out of bounds")

	// ErrCellOccupied indicates a move onto a cell that already holds a stone.
	ErrCellOccupied = errors.New("board: cell is already occupied")
)

// Color is the state of a cell: empty, or owned by one of the two players.
type Color uint8

const (
	// None marks an empty cell.
	None Color = iota
	// Black connects the Top and Bottom edges.
	Black
	// White connects the Left and Right edges.
	White
)

// Opponent returns the other player's color. It is total and involutive;
// calling it on None returns None.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

// String names the color for prompts and debug output.
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

// Edge is one of the four virtual boundary cells. The declared order mirrors
// the flat storage layout (see cells.go): edges occupy the four slots after
// the normal cells, so they compare greater than every cell index and the
// union-find merge bias keeps them as roots.
type Edge uint8

const (
	Left Edge = iota
	Top
	Right
	Bottom
)

// Color returns the player owning this edge: Top/Bottom belong to Black,
// Left/Right to White.
func (e Edge) Color() Color {
	if e == Top || e == Bottom {
		return Black
	}

	return White
}

// String names the edge for debug output.
func (e Edge) String() string {
	switch e {
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	default:
		return "Bottom"
	}
}

// EdgesOfColor returns the two home edges a player must connect.
func EdgesOfColor(c Color) [2]Edge {
	if c == Black {
		return [2]Edge{Top, Bottom}
	}

	return [2]Edge{Left, Right}
}

// Position addresses either a playable cell or one of the four edges.
// It is the only address type the board exposes; flat indices stay internal.
type Position struct {
	cell   coords.Coords
	edge   Edge
	isEdge bool
}

// CellPosition wraps cell coordinates as a Position.
func CellPosition(c coords.Coords) Position {
	return Position{cell: c}
}

// EdgePosition wraps an edge as a Position.
func EdgePosition(e Edge) Position {
	return Position{edge: e, isEdge: true}
}

// IsEdge reports whether p addresses an edge rather than a cell.
func (p Position) IsEdge() bool {
	return p.isEdge
}

// Cell returns the wrapped coordinates and true when p addresses a cell.
func (p Position) Cell() (coords.Coords, bool) {
	return p.cell, !p.isEdge
}

// Edge returns the wrapped edge and true when p addresses an edge.
func (p Position) Edge() (Edge, bool) {
	return p.edge, p.isEdge
}

// String renders either the edge name or the cell in letter-number notation.
func (p Position) String() string {
	if p.isEdge {
		return p.edge.String()
	}

	return p.cell.String()
}

// StoneMatrix is a full board position, row-major, one Color per cell.
// It is the exchange format between Board and external (de)serializers.
type StoneMatrix [][]Color
