// Package board provides the core model for sliding-tile puzzles.
//
// The board package implements:
//   - Immutable square boards of distinct tiles with a single hole
//   - Validated construction from arbitrary cell sequences
//   - Functional move application (a move never mutates its receiver)
//   - The Manhattan-distance heuristic used by the solver
//   - Solution replay and verification
//
// Core Types:
//
// Board is an immutable value type representing one puzzle configuration.
// Because it is comparable, a Board can be used directly as a map key,
// which the solver relies on for deduplication. Move is the closed set of
// four hole directions (Left, Right, Up, Down).
//
// Representation:
//
// Cells are stored row-major with the hole as value 0, so the solved 3x3
// board is 1 2 3 / 4 5 6 / 7 8 0. Boards up to 16x16 are supported; beyond
// that the tile values no longer fit a byte and construction fails.
//
// Usage:
//
//	b, err := board.New([]uint8{1, 2, 3, 4, 0, 5, 7, 8, 6})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	next, ok := b.Update(board.Right)
//	cost := b.EstimateCost(goal)
//
// Failure Model:
//
// Recoverable failures (bad cell sequences, moves that would push the hole
// off the grid) are reported through error or bool returns. A validated
// board later found to be missing its hole or an expected tile indicates
// corruption of an invariant the rest of the system assumes; those cases
// panic rather than propagate.
package board
