package board_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hexgame/board"
	"github.com/katalvlaran/hexgame/coords"
)

// fullGameMoves shuffles every cell of a size×size board once.
func fullGameMoves(size int, seed int64) []coords.Coords {
	moves := make([]coords.Coords, 0, size*size)
	for row := 0; row < size; row++ {
		for column := 0; column < size; column++ {
			moves = append(moves, coords.New(row, column))
		}
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	return moves
}

// BenchmarkPlay_FullBoard fills a 19×19 board with alternating stones.
func BenchmarkPlay_FullBoard(b *testing.B) {
	moves := fullGameMoves(board.MaxBoardSize, 7)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		brd, _ := board.New(board.MaxBoardSize)
		color := board.Black
		for _, c := range moves {
			_ = brd.Play(c, color)
			color = color.Opponent()
		}
	}
}

// BenchmarkInSameSet measures the win query on a fully played-out board.
func BenchmarkInSameSet(b *testing.B) {
	brd, _ := board.New(board.MaxBoardSize)
	color := board.Black
	for _, c := range fullGameMoves(board.MaxBoardSize, 7) {
		_ = brd.Play(c, color)
		color = color.Opponent()
	}
	top := board.EdgePosition(board.Top)
	bottom := board.EdgePosition(board.Bottom)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = brd.InSameSet(top, bottom)
	}
}

// BenchmarkAttackedBridges measures the bounded pattern scan.
func BenchmarkAttackedBridges(b *testing.B) {
	brd, _ := board.New(5)
	_ = brd.Play(coords.New(2, 1), board.Black)
	_ = brd.Play(coords.New(1, 3), board.Black)
	_ = brd.Play(coords.New(3, 2), board.Black)
	center := coords.New(2, 2)
	_ = brd.Play(center, board.White)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = brd.AttackedBridges(center)
	}
}
