package board

import "github.com/katalvlaran/hexgame/coords"

// bridgeScanState tracks how much of the pattern
// [defender stone, empty cell, defender stone] the scan has matched so far.
type bridgeScanState uint8

const (
	found0 bridgeScanState = iota // nothing matched yet
	found1                        // first defender stone matched
	found2                        // stone + empty midpoint matched
)

// AttackedBridges reports every empty cell that is the midpoint of a bridge
// belonging to the opponent of the stone at c — the classic Hex two-stone
// virtual connection now under threat, which the defender answers by taking
// the reported cell.
//
// The scan walks the clockwise neighbor ring of c, looking for the color
// pattern [defender, empty, defender]. The ring is logically circular, so
// the first two neighbors are appended once more at the end; a match whose
// middle falls on the wraparound boundary is then found without special
// cases, and the scan is capped at count+2 steps so the duplicated tail
// cannot report twice. A stone closing one bridge may simultaneously open
// the next, so a full match falls back to the "one stone seen" state rather
// than restarting — overlapping bridges around one attacker are all
// reported, in discovery order.
//
// Edges take part with their owning color, so a bridge between a defender
// stone and the defender's own edge is detected like any other; the
// attacker's edges can never complete the pattern.
//
// An empty or off-board c reports nothing.
func (b *Board) AttackedBridges(c coords.Coords) []coords.Coords {
	h := b.cells
	if !c.OnBoard(h.size) {
		return nil
	}
	center := h.indexFromCoords(c)
	mover := h.colorAt(center)
	if mover == None {
		return nil
	}
	searchColor := mover.Opponent()

	var buf [maxNeighbors + 2]int
	ring := h.appendNeighbors(buf[:0], center)
	count := len(ring)
	ring = append(ring, ring[0], ring[1])

	var attacked []coords.Coords
	state := found0
	for i := 0; i < count+2; i++ {
		switch color := h.colorAt(ring[i]); state {
		case found0:
			if color == searchColor {
				state = found1
			}
		case found1:
			if color == None {
				state = found2
			} else if color != searchColor {
				state = found0
			}
			// A second defender stone restarts the pattern here: stay in found1.
		case found2:
			if color == searchColor {
				// The midpoint is always a cell: edges are never empty.
				attacked = append(attacked, h.coordsFromIndex(ring[i-1]))
				state = found1
			} else {
				state = found0
			}
		}
	}

	return attacked
}
