// Command scramble generates solvable puzzle boards by walking the hole
// randomly away from the solved board. Because every scramble is produced
// by legal moves, the result is always solvable, and the walk length gives
// a rough upper bound on solution length.
//
// Boards are printed as digit strings usable with the solve command, and
// can optionally be written as puzzle definition JSON for the library.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/service"
)

var (
	side  = flag.Int("side", 3, "Board side length")
	walk  = flag.Int("walk", 30, "Number of random moves to walk away from the solved board")
	count = flag.Int("count", 1, "Number of scrambles to generate")
	seed  = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	out   = flag.String("out", "", "Write the first scramble as a puzzle definition JSON file")
	name  = flag.String("name", "scramble", "Puzzle name used with -out")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	goal, err := board.Solved(*side)
	if err != nil {
		fmt.Printf("Error building goal board: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		scrambled := scramble(goal, *walk, rng)

		fmt.Printf("Scramble %d: %s (heuristic lower bound: %d)\n",
			i+1, digitString(scrambled), scrambled.EstimateCost(goal))
		fmt.Print(scrambled.String())
		fmt.Println()

		if i == 0 && *out != "" {
			if err := writePuzzleFile(*out, *name, scrambled); err != nil {
				fmt.Printf("Error writing puzzle file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote puzzle definition to %s\n", *out)
		}
	}
}

// scramble walks the hole n random legal moves away from the goal board.
func scramble(goal board.Board, n int, rng *rand.Rand) board.Board {
	current := goal
	for i := 0; i < n; i++ {
		moves := board.AllMoves()
		rng.Shuffle(len(moves), func(a, b int) {
			moves[a], moves[b] = moves[b], moves[a]
		})
		for _, m := range moves {
			if next, ok := current.Update(m); ok {
				current = next
				break
			}
		}
	}
	return current
}

// digitString renders a board as a compact cell list. Boards with tiles
// above 9 fall back to comma separation since single digits no longer
// suffice.
func digitString(b board.Board) string {
	cells := b.Cells()

	if len(cells) <= 10 {
		var sb strings.Builder
		for _, c := range cells {
			sb.WriteByte('0' + c)
		}
		return sb.String()
	}

	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, ",")
}

func writePuzzleFile(path, name string, b board.Board) error {
	cells := b.Cells()
	start := make([]int, len(cells))
	for i, c := range cells {
		start[i] = int(c)
	}

	p := service.Puzzle{
		Name:        name,
		Description: fmt.Sprintf("Random %dx%d scramble", b.Side(), b.Side()),
		Side:        b.Side(),
		Start:       start,
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
