// Package serialize persists a game of Hex as JSON.
//
// Wire format:
//
//	{"size":3,"currentPlayer":1,"cells":[[0,1,0],[0,0,2],[0,0,0]]}
//
// cells is the row-major stone matrix with one numeric color code per cell:
// 0 empty, 1 Black, 2 White. currentPlayer uses the same codes; 0 is
// rejected, a saved game always has a player to move.
//
// Save and Load round-trip losslessly: the board is rebuilt through the same
// bulk-load path the board package uses, so a loaded game carries identical
// connectivity state, and an already-decided position loads as finished.
//
// Errors:
//
//   - ErrInvalidColorCode: a cell or currentPlayer code outside 0..2.
//   - game.ErrNoCurrentPlayer: currentPlayer was 0.
//   - board construction errors and JSON syntax errors pass through.
package serialize
