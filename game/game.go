package game

import (
	"errors"

	"github.com/katalvlaran/hexgame/board"
	"github.com/katalvlaran/hexgame/coords"
)

// Sentinel errors for game sequencing.
var (
	// ErrGameOver indicates a move after the match was decided.
	ErrGameOver = errors.New("game: game has ended")

	// ErrNoCurrentPlayer indicates a Load without a player to move.
	ErrNoCurrentPlayer = errors.New("game: no current player")
)

// Status is the lifecycle state of a Game.
type Status uint8

const (
	// Ongoing: moves are accepted, no winner yet.
	Ongoing Status = iota
	// Finished: a player connected both home edges; the game is immutable.
	Finished
)

// String names the status for debug output.
func (s Status) String() string {
	if s == Finished {
		return "Finished"
	}

	return "Ongoing"
}

// Game is a match of Hex: a Board plus turn sequencing and win detection.
// The Game exclusively owns its Board; mutate only through Play.
type Game struct {
	board   *board.Board
	current board.Color
	status  Status
	winner  board.Color
}

// New starts an empty game of the given size with Black to move.
// Size validation is the board's (ErrSizeOutOfBounds).
func New(size int) (*Game, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}

	return &Game{board: b, current: board.Black, status: Ongoing}, nil
}

// Load rebuilds a game from an exported position and the player to move
// next. Board validation errors pass through; a None current player yields
// ErrNoCurrentPlayer. A position in which a player's edges are already
// connected loads as Finished with that player as winner.
func Load(matrix board.StoneMatrix, current board.Color) (*Game, error) {
	if current == board.None {
		return nil, ErrNoCurrentPlayer
	}
	b, err := board.FromStoneMatrix(matrix)
	if err != nil {
		return nil, err
	}

	g := &Game{board: b, current: current, status: Ongoing}
	for _, color := range []board.Color{board.Black, board.White} {
		if edgesConnected(b, color) {
			g.status = Finished
			g.winner = color

			break
		}
	}

	return g, nil
}

// Play puts the current player's stone on c. After a decided game every call
// returns ErrGameOver; board rejections (out of bounds, occupied) leave the
// turn with the same player. A winning move flips the game to Finished,
// any other valid move passes the turn.
func (g *Game) Play(c coords.Coords) error {
	if g.status == Finished {
		return ErrGameOver
	}
	if err := g.board.Play(c, g.current); err != nil {
		return err
	}

	if edgesConnected(g.board, g.current) {
		g.status = Finished
		g.winner = g.current
	} else {
		g.current = g.current.Opponent()
	}

	return nil
}

// Board exposes the underlying board for queries (colors, bridges,
// rendering). Callers must not play on it directly.
func (g *Game) Board() *board.Board {
	return g.board
}

// CurrentPlayer returns the color to move. Once the game is Finished the
// value freezes on the winner.
func (g *Game) CurrentPlayer() board.Color {
	return g.current
}

// Status reports whether the match is still accepting moves.
func (g *Game) Status() Status {
	return g.status
}

// Winner returns the winning color, or None while the game is Ongoing.
func (g *Game) Winner() board.Color {
	return g.winner
}

// edgesConnected asks the board the win question for one player.
func edgesConnected(b *board.Board, color board.Color) bool {
	edges := board.EdgesOfColor(color)

	return b.InSameSet(board.EdgePosition(edges[0]), board.EdgePosition(edges[1]))
}
