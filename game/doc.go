// Package game sequences a match of Hex on top of the board package.
//
// What:
//
//   - Game tracks whose turn it is and whether the match has been decided.
//   - Play places the current player's stone, then asks the board whether
//     that player's two home edges are now connected; if so the game is
//     Finished and further moves are rejected, otherwise the turn passes.
//   - Load rebuilds a Game from an exported position and a current player,
//     recognizing already-decided positions.
//
// Why:
//
//   - Callers (CLIs, servers, engines) should not re-implement turn order or
//     the win check; both live here, built purely from Board operations.
//
// Hex admits no draws — a full board always contains exactly one
// edge-to-edge connection — so Finished always carries a winner.
//
// Errors:
//
//   - ErrGameOver: a move was attempted after the match was decided.
//   - ErrNoCurrentPlayer: Load was handed no player to move next.
//   - board errors (ErrOutOfBounds, ErrCellOccupied, ...) pass through Play
//     and Load unchanged.
package game
