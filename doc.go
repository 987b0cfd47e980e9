// Package hexgame is an in-memory rules-and-connectivity engine for the
// board game Hex: place stones, track edge-to-edge connections, and surface
// tactical bridge threats.
//
// What is hexgame?
//
//	A small, focused library that brings together:
//		• Coordinates: human notation ("c3") ↔ zero-based row/column values
//		• Union-find: order-biased disjoint sets with path compression
//		• Board: hex adjacency over flat storage, four virtual edge cells,
//		  near-constant-time win detection
//		• Bridges: detection of attacked two-stone virtual connections
//		• Game: turn sequencing on top of the board
//		• Serialization: lossless JSON save/load of a running game
//
// Why choose hexgame?
//
//   - Minimal API, clear naming – a Board, a Game, and plain value types
//   - Rock-solid guarantees – every invariant covered by tests
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	coords/    — the Coords value type, parsing and formatting
//	unionfind/ — generic disjoint-set structure over external parent storage
//	board/     — cells, edges, neighbors, moves, bridge detection, rendering
//	game/      — turn order, win detection, game status
//	serialize/ — JSON persistence of a game
//
// Quick ASCII example (3×3 board after two moves):
//
//	 a  b  c
//	1\●  .  .\1
//	 2\.  .  .\2
//	  3\.  ○  .\3
//	     a  b  c
//
// Black connects the top edge to the bottom edge; White connects left to
// right. Try cmd/hexgame for an interactive match in your terminal.
//
//	go get github.com/katalvlaran/hexgame
package hexgame
