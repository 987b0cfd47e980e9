package board

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexgame/coords"
)

// String renders the position as the classic rhombic ASCII picture, with
// column letters above and below, 1-based row labels on both sides, and each
// row shifted one column right of the previous one.
//
// Example:
//
//	 a  b  c  d  e
//	1\.  .  .  .  .\1
//	 2\.  ●  .  ○  .\2
//	  3\.  .  ●  .  .\3
//	   4\.  .  .  ○  .\4
//	    5\.  .  .  .  .\5
//	       a  b  c  d  e
func (b *Board) String() string {
	var sb strings.Builder
	size := b.Size()

	writeColumnLabels(&sb, size, 0)
	for row := 0; row < size; row++ {
		b.writeRow(&sb, row)
	}
	writeColumnLabels(&sb, size, size+1)

	return sb.String()
}

func writeColumnLabels(sb *strings.Builder, size, indent int) {
	sb.WriteString(strings.Repeat(" ", indent))
	for column := 0; column < size; column++ {
		fmt.Fprintf(sb, " %c ", coords.ColumnChar(column))
	}
	sb.WriteByte('\n')
}

func (b *Board) writeRow(sb *strings.Builder, row int) {
	sb.WriteString(strings.Repeat(" ", row))
	fmt.Fprintf(sb, "%d\\", row+1)

	for column := 0; column < b.Size(); column++ {
		if column > 0 {
			sb.WriteString("  ")
		}
		sb.WriteRune(runeForColor(b.ColorAt(coords.New(row, column))))
	}

	fmt.Fprintf(sb, "\\%d\n", row+1)
}

// runeForColor picks the stone glyph. The Unicode hexagon characters ⬢ and
// ⬡ render at 1.5 cell width in common terminals, hence the discs.
func runeForColor(c Color) rune {
	switch c {
	case Black:
		return '●'
	case White:
		return '○'
	default:
		return '.'
	}
}
