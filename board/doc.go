// Package board implements the Hex playing surface: flat cell storage with
// four virtual edge cells, hex-neighbor enumeration, stone placement with
// incremental connectivity tracking, and detection of attacked bridges.
//
// What:
//
//   - Board owns a size×size grid stored as one flat array of size²+4 cells;
//     the last four slots are the Left, Top, Right and Bottom edges,
//     permanently colored (Top/Bottom Black, Left/Right White).
//   - Play validates, colors a cell, and merges it with every same-colored
//     hex-neighbor through the unionfind package, so InSameSet answers
//     "are these connected?" in near-constant time — including the win
//     question "are a player's two edges connected?".
//   - Neighbors enumerates the up-to-six hex-neighbors of a cell in clockwise
//     order starting at the left neighbor, substituting edges on the boundary.
//   - AttackedBridges reports the empty midpoints of opponent bridges put
//     under threat by the stone at the given cell.
//   - FromStoneMatrix / ToStoneMatrix bulk-load and export a full position.
//   - String renders the classic rhombic ASCII picture of the position.
//
// Why:
//
//   - Game rules: legality, connectivity, and win detection for Hex.
//   - Tactical hints: the bridge detector feeds UIs and engines the cells a
//     defender must answer.
//
// Complexity:
//
//   - Play:            O(1) amortized (six neighbor probes + union-find).
//   - InSameSet:       near-O(1) amortized via path compression.
//   - Neighbors:       O(1).
//   - AttackedBridges: O(1) — a bounded scan of at most eight entries.
//   - FromStoneMatrix: O(size²).
//
// Errors:
//
//   - ErrSizeOutOfBounds: requested size outside [MinBoardSize, MaxBoardSize].
//   - ErrNotSquare: a bulk-loaded matrix row differs from the matrix size.
//   - ErrOutOfBounds: played coordinates outside the board.
//   - ErrCellOccupied: played cell already holds a stone.
//
// All validation happens before any mutation; a failed call leaves the Board
// untouched. Boards are not safe for concurrent use: even read-style queries
// rewrite internal parent links (path compression).
package board
