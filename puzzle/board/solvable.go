package board

// SolvableInto reports whether the goal board is reachable from b.
//
// Every move swaps the hole with an adjacent tile, flipping both the
// permutation parity and the parity of the hole's taxicab distance to
// its goal position. The two parities therefore stay equal on every
// reachable board, and checking them decides reachability without
// searching. Panics if the boards have different sides.
func (b Board) SolvableInto(goal Board) bool {
	if b.side != goal.side {
		panic("board: solvability check requires boards of the same size")
	}

	// Position of each cell value in the goal
	goalIndex := make([]int, len(goal.cells))
	for i := 0; i < len(goal.cells); i++ {
		goalIndex[goal.cells[i]] = i
	}

	// Permutation taking each start index to its goal index
	perm := make([]int, len(b.cells))
	for i := 0; i < len(b.cells); i++ {
		perm[i] = goalIndex[b.cells[i]]
	}

	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}

	sx, sy := b.holePosition()
	gx, gy := goal.holePosition()
	holeDistance := abs(sx-gx) + abs(sy-gy)

	return inversions%2 == holeDistance%2
}
