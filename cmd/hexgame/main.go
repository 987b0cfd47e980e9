// Command hexgame runs an interactive match of Hex in the terminal.
//
// Black (●) connects the top edge to the bottom edge, White (○) connects
// left to right. Moves use letter-number notation, e.g. "c2". After each
// move the board is re-rendered and any freshly attacked bridges are listed
// as a hint to the defender.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hexgame/coords"
	"github.com/katalvlaran/hexgame/game"
)

func main() {
	size := flag.Int("size", 5, "board size (2..19)")
	flag.Parse()

	g, err := game.New(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err = run(g, bufio.NewReader(os.Stdin)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run drives the prompt loop until the match is decided or input ends.
func run(g *game.Game, in *bufio.Reader) error {
	fmt.Print(g.Board())

	for g.Status() == game.Ongoing {
		fmt.Printf("%s: enter the coordinates for your next move (e.g. c2): ", g.CurrentPlayer())
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}

		c, err := coords.Parse(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		if err = g.Play(c); err != nil {
			fmt.Println("Error:", err)
			continue
		}

		fmt.Print(g.Board())
		if attacked := g.Board().AttackedBridges(c); len(attacked) > 0 {
			fmt.Printf("Attacked bridges: %v\n", attacked)
		}
	}

	fmt.Printf("%s wins!\n", g.Winner())

	return nil
}
