package board

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCells bounds the board size so every tile value fits in a byte.
const MaxCells = 256

var (
	ErrNotSquare      = errors.New("cell count is not a perfect square")
	ErrTooLarge       = errors.New("board exceeds the maximum supported size")
	ErrNotPermutation = errors.New("cells are not a permutation of 0..n-1")
)

// Board is an immutable puzzle configuration: a row-major sequence of
// distinct tile values with the hole stored as 0. The cells live in a
// string so Board is comparable and can key the solver's visited map.
type Board struct {
	cells string
	side  int
}

// New validates cells and constructs a Board. The sequence must have a
// perfect-square length of at most MaxCells and contain every value from
// 0 to len(cells)-1 exactly once.
func New(cells []uint8) (Board, error) {
	n := len(cells)
	if n > MaxCells {
		return Board{}, ErrTooLarge
	}

	side := 0
	for side*side < n {
		side++
	}
	if side*side != n || n == 0 {
		return Board{}, ErrNotSquare
	}

	seen := make([]bool, n)
	for _, cell := range cells {
		if int(cell) >= n || seen[cell] {
			return Board{}, ErrNotPermutation
		}
		seen[cell] = true
	}

	return Board{cells: string(cells), side: side}, nil
}

// Solved returns the canonical goal for the given side: tiles 1..side²-1
// in order with the hole in the last cell.
func Solved(side int) (Board, error) {
	if side < 1 || side*side > MaxCells {
		return Board{}, ErrTooLarge
	}
	cells := make([]uint8, side*side)
	for i := 0; i < side*side-1; i++ {
		cells[i] = uint8(i + 1)
	}
	return New(cells)
}

// Side returns the edge length of the grid.
func (b Board) Side() int {
	return b.side
}

// Cells returns a copy of the cell sequence in row-major order.
func (b Board) Cells() []uint8 {
	return []uint8(b.cells)
}

// String renders the board as a grid, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for i, cell := range []byte(b.cells) {
		if i%b.side != 0 {
			sb.WriteByte(' ')
		} else if i != 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d", cell)
	}
	return sb.String()
}

// holePosition finds the hole's grid coordinates with (0,0) at the top
// left. Construction guarantees exactly one hole, so a miss here means an
// invariant has been broken and there is nothing sensible to recover to.
func (b Board) holePosition() (int, int) {
	for i := 0; i < len(b.cells); i++ {
		if b.cells[i] == 0 {
			return i % b.side, i / b.side
		}
	}
	panic("board: validated board has no hole")
}

// tilePosition finds the grid coordinates of the given tile value,
// panicking if the tile is absent. Like holePosition, a miss is an
// invariant violation, not a recoverable condition.
func (b Board) tilePosition(tile uint8) (int, int) {
	for i := 0; i < len(b.cells); i++ {
		if b.cells[i] == tile {
			return i % b.side, i / b.side
		}
	}
	panic(fmt.Sprintf("board: validated board has no %d tile", tile))
}

// Update returns a new board with the hole moved in the given direction.
// If that would take the hole off the grid it reports false and no board
// is produced; the receiver is never modified.
func (b Board) Update(m Move) (Board, bool) {
	hx, hy := b.holePosition()
	tx, ty := hx, hy

	switch m {
	case Left:
		tx--
	case Right:
		tx++
	case Up:
		ty--
	case Down:
		ty++
	}

	if tx < 0 || tx >= b.side || ty < 0 || ty >= b.side {
		return Board{}, false
	}

	cells := []byte(b.cells)
	hole, target := hy*b.side+hx, ty*b.side+tx
	cells[hole], cells[target] = cells[target], cells[hole]

	return Board{cells: string(cells), side: b.side}, true
}

// EstimateCost estimates the number of moves needed to transform b into
// goal by summing each tile's Manhattan distance from its goal position.
// Every move relocates exactly one tile by one grid step, so the estimate
// never overshoots the true cost; that admissibility is what lets the
// solver trust it. Both boards must hold the same tile set — comparing
// mismatched boards is undefined and will panic on the missing tile.
func (b Board) EstimateCost(goal Board) int {
	cost := 0
	for tile := 1; tile < len(b.cells); tile++ {
		sx, sy := b.tilePosition(uint8(tile))
		gx, gy := goal.tilePosition(uint8(tile))
		cost += abs(sx-gx) + abs(sy-gy)
	}
	return cost
}

// Verify replays moves against b and reports whether they transform it
// into target. It fails immediately if any move is inapplicable.
func (b Board) Verify(target Board, moves []Move) bool {
	current := b
	for _, m := range moves {
		next, ok := current.Update(m)
		if !ok {
			return false
		}
		current = next
	}
	return current == target
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
