package serialize

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/hexgame/board"
	"github.com/katalvlaran/hexgame/game"
)

// ErrInvalidColorCode indicates a numeric color outside the 0..2 wire range.
var ErrInvalidColorCode = errors.New("serialize: invalid color code")

// Numeric color codes on the wire.
const (
	codeEmpty = 0
	codeBlack = 1
	codeWhite = 2
)

// storedGame is the JSON shape of a saved game. The cell rows are []int, not
// []uint8: encoding/json encodes a []uint8 ([]byte) as a base64 string, and
// the wire format needs plain number arrays.
type storedGame struct {
	Size          int     `json:"size"`
	CurrentPlayer int     `json:"currentPlayer"`
	Cells         [][]int `json:"cells"`
}

// Save encodes g as JSON.
func Save(g *game.Game) ([]byte, error) {
	return json.Marshal(storedGame{
		Size:          g.Board().Size(),
		CurrentPlayer: codeForColor(g.CurrentPlayer()),
		Cells:         storeCells(g.Board().ToStoneMatrix()),
	})
}

// Load decodes a game saved by Save. The position is replayed through the
// board's bulk-load path, so connectivity and finished-game detection come
// back intact.
func Load(data []byte) (*game.Game, error) {
	var stored storedGame
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	matrix, err := loadCells(stored.Cells)
	if err != nil {
		return nil, err
	}
	current, err := colorForCode(stored.CurrentPlayer)
	if err != nil {
		return nil, err
	}

	// A None current player surfaces game.ErrNoCurrentPlayer here.
	return game.Load(matrix, current)
}

func storeCells(matrix board.StoneMatrix) [][]int {
	cells := make([][]int, len(matrix))
	for row, colors := range matrix {
		cells[row] = make([]int, len(colors))
		for column, color := range colors {
			cells[row][column] = codeForColor(color)
		}
	}

	return cells
}

func loadCells(cells [][]int) (board.StoneMatrix, error) {
	matrix := make(board.StoneMatrix, len(cells))
	for row, codes := range cells {
		matrix[row] = make([]board.Color, len(codes))
		for column, code := range codes {
			color, err := colorForCode(code)
			if err != nil {
				return nil, err
			}
			matrix[row][column] = color
		}
	}

	return matrix, nil
}

func codeForColor(c board.Color) int {
	switch c {
	case board.Black:
		return codeBlack
	case board.White:
		return codeWhite
	default:
		return codeEmpty
	}
}

func colorForCode(code int) (board.Color, error) {
	switch code {
	case codeEmpty:
		return board.None, nil
	case codeBlack:
		return board.Black, nil
	case codeWhite:
		return board.White, nil
	default:
		return board.None, fmt.Errorf("%w: %d", ErrInvalidColorCode, code)
	}
}
