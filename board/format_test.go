package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexgame/board"
	"github.com/katalvlaran/hexgame/coords"
)

// TestString pins the rhombic rendering, indentation included.
func TestString(t *testing.T) {
	b, err := board.New(3)
	require.NoError(t, err)
	require.NoError(t, b.Play(coords.New(0, 0), board.Black))
	require.NoError(t, b.Play(coords.New(2, 1), board.White))

	assert.Equal(t, ""+
		" a  b  c \n"+
		"1\\●  .  .\\1\n"+
		" 2\\.  .  .\\2\n"+
		"  3\\.  ○  .\\3\n"+
		"     a  b  c \n",
		b.String())
}
