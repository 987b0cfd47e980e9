package coords

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCoords indicates a string that is not valid letter-number notation.
var ErrInvalidCoords = errors.New("coords: invalid coordinates")

// Coords identifies a cell by zero-based row and column.
// The zero value is the top-left cell "a1".
type Coords struct {
	Row    int
	Column int
}

// New returns the Coords for the given zero-based row and column.
func New(row, column int) Coords {
	return Coords{Row: row, Column: column}
}

// OnBoard reports whether c lies within a size×size board.
// Complexity: O(1).
func (c Coords) OnBoard(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Column >= 0 && c.Column < size
}

// String renders c in letter-number notation: the column as a lowercase
// letter and the row 1-based, e.g. Coords{Row: 2, Column: 0} → "a3".
func (c Coords) String() string {
	return fmt.Sprintf("%c%d", ColumnChar(c.Column), c.Row+1)
}

// ColumnChar returns the lowercase letter naming a zero-based column.
// Columns beyond 'z' do not occur: boards are capped far below 26.
func ColumnChar(column int) byte {
	return byte('a' + column)
}

// Parse converts letter-number notation back into Coords.
// It accepts exactly the strings String produces: a lowercase ASCII column
// letter followed by a 1-based row number. Anything else (uppercase, row 0,
// a multi-byte first rune, trailing garbage) yields ErrInvalidCoords.
func Parse(s string) (Coords, error) {
	if len(s) < 2 {
		return Coords{}, fmt.Errorf("%w: %q", ErrInvalidCoords, s)
	}
	column := s[0]
	if column < 'a' || column > 'z' {
		return Coords{}, fmt.Errorf("%w: %q", ErrInvalidCoords, s)
	}
	// Atoi alone would admit a leading zero or sign; String never emits those.
	if s[1] < '1' || s[1] > '9' {
		return Coords{}, fmt.Errorf("%w: %q", ErrInvalidCoords, s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %q", ErrInvalidCoords, s)
	}

	return Coords{Row: row - 1, Column: int(column - 'a')}, nil
}
