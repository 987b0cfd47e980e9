package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexgame/board"
	"github.com/katalvlaran/hexgame/coords"
)

var center = coords.New(2, 2)

// boardWithStones builds a 5×5 board with the given stones already placed.
func boardWithStones(t *testing.T, stones map[coords.Coords]board.Color) *board.Board {
	t.Helper()
	b, err := board.New(5)
	require.NoError(t, err)
	for c, color := range stones {
		require.NoError(t, b.Play(c, color))
	}

	return b
}

// TestAttackedBridges_EmptyCell: no stone at the queried cell, nothing to report.
func TestAttackedBridges_EmptyCell(t *testing.T) {
	b := boardWithStones(t, nil)
	assert.Empty(t, b.AttackedBridges(center))
}

// TestAttackedBridges_OffBoard: off-board coordinates report nothing.
func TestAttackedBridges_OffBoard(t *testing.T) {
	b := boardWithStones(t, nil)
	assert.Empty(t, b.AttackedBridges(coords.New(5, 5)))
}

// TestAttackedBridges_NoNeighboringStones: a lone attacker threatens nothing.
func TestAttackedBridges_NoNeighboringStones(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{center: board.White})
	assert.Empty(t, b.AttackedBridges(center))
}

// TestAttackedBridges_SimpleBridge:
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  .  ●  .\2
//	  3\.  .  ○  .  .\3
//	   4\.  .  ●  .  .\4
func TestAttackedBridges_SimpleBridge(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(1, 3): board.Black,
		coords.New(3, 2): board.Black,
		center:           board.White,
	})

	assert.Equal(t, []coords.Coords{coords.New(2, 3)}, b.AttackedBridges(center))
}

// TestAttackedBridges_PrecedingStone: an extra defender stone directly before
// the bridge keeps the scan in the "first stone seen" state.
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  ●  .  .\2
//	  3\.  ●  ○  ●  .\3
func TestAttackedBridges_PrecedingStone(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(2, 1): board.Black,
		coords.New(1, 2): board.Black,
		coords.New(2, 3): board.Black,
		center:           board.White,
	})

	assert.Equal(t, []coords.Coords{coords.New(1, 3)}, b.AttackedBridges(center))
}

// TestAttackedBridges_PrecedingStoneWrongColor: an attacker-colored stone in
// the same spot resets the pattern instead.
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  ○  .  .\2
//	  3\.  ●  ○  ●  .\3
func TestAttackedBridges_PrecedingStoneWrongColor(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(2, 1): board.Black,
		coords.New(1, 2): board.White,
		coords.New(2, 3): board.Black,
		center:           board.White,
	})

	assert.Empty(t, b.AttackedBridges(center))
}

// TestAttackedBridges_ThreeOverlapping: one attacking stone can threaten
// three bridges at once; the closing stone of one match opens the next.
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  .  ●  .\2
//	  3\.  ●  ○  .  .\3
//	   4\.  .  ●  .  .\4
func TestAttackedBridges_ThreeOverlapping(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(2, 1): board.Black,
		coords.New(1, 3): board.Black,
		coords.New(3, 2): board.Black,
		center:           board.White,
	})

	assert.Equal(t, []coords.Coords{
		coords.New(1, 2),
		coords.New(2, 3),
		coords.New(3, 1),
	}, b.AttackedBridges(center))
}

// TestAttackedBridges_Wraparound: the bridge spans the end of the neighbor
// ring (last neighbor → first neighbor → second neighbor).
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  ●  .  .\2
//	  3\.  .  ○  .  .\3
//	   4\.  ●  .  .  .\4
func TestAttackedBridges_Wraparound(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(3, 1): board.Black,
		coords.New(1, 2): board.Black,
		center:           board.White,
	})

	assert.Equal(t, []coords.Coords{coords.New(2, 1)}, b.AttackedBridges(center))
}

// TestAttackedBridges_ObtuseCorner: bridge through the obtuse corner cell.
//
//	 a  b  c  d  e
//	1\.  ○  .  .  .\1
//	 2\●  .  .  .  .\2
func TestAttackedBridges_ObtuseCorner(t *testing.T) {
	attacker := coords.New(0, 1)
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(1, 0): board.Black,
		attacker:         board.White,
	})

	assert.Equal(t, []coords.Coords{coords.New(0, 0)}, b.AttackedBridges(attacker))
}

// TestAttackedBridges_NextToObtuseCorner: the attacker sits in the corner
// itself; the midpoint wraps to b1.
//
//	 a  b  c  d  e
//	1\○  .  .  .  .\1
//	 2\●  .  .  .  .\2
func TestAttackedBridges_NextToObtuseCorner(t *testing.T) {
	attacker := coords.New(0, 0)
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(1, 0): board.Black,
		attacker:         board.White,
	})

	assert.Equal(t, []coords.Coords{coords.New(0, 1)}, b.AttackedBridges(attacker))
}

// TestAttackedBridges_ToOwnEdge: the defender's edge counts as a defender
// stone, so stone-to-edge bridges are attacked like any other.
//
//	 a  b  c  d  e
//	1\.  .  ○  .  .\1
//	 2\.  .  ●  .  .\2
func TestAttackedBridges_ToOwnEdge(t *testing.T) {
	attacker := coords.New(0, 2)
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(1, 2): board.Black,
		attacker:         board.White,
	})

	assert.Equal(t, []coords.Coords{coords.New(0, 3)}, b.AttackedBridges(attacker))
}

// TestAttackedBridges_NotToOpponentsEdge: the attacker's own edge never
// completes the pattern.
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  .  .  .\2
//	  3\○  ●  .  .  .\3
func TestAttackedBridges_NotToOpponentsEdge(t *testing.T) {
	attacker := coords.New(2, 0)
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(2, 1): board.Black,
		attacker:         board.White,
	})

	assert.Empty(t, b.AttackedBridges(attacker))
}

// TestAttackedBridges_BlackAttacker: detection is color-symmetric.
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  .  .  ○  .\2
//	  3\.  .  ●  .  .\3
//	   4\.  .  ○  .  .\4
func TestAttackedBridges_BlackAttacker(t *testing.T) {
	b := boardWithStones(t, map[coords.Coords]board.Color{
		coords.New(1, 3): board.White,
		coords.New(3, 2): board.White,
		center:           board.Black,
	})

	assert.Equal(t, []coords.Coords{coords.New(2, 3)}, b.AttackedBridges(center))
}
