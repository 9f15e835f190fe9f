// Package solver finds optimal move sequences for sliding-tile puzzles.
//
// The solver runs A* best-first search over board states. Each frontier
// entry is ordered by f = g + h, where g is the number of moves taken from
// the start and h is the board's Manhattan-distance estimate to the goal.
// A visited map keyed by board doubles as the seen-set and as the
// back-pointer structure used to rebuild the path once the goal is found.
//
// The search discards rediscovered boards without re-examining them. That
// is only optimal because the Manhattan heuristic is consistent for the
// sliding-tile move set, so the first discovery of a board is always along
// a shortest path. The assumption is load-bearing: swapping in a different
// heuristic or move semantics would require revisiting this policy.
//
// Usage:
//
//	moves, found := solver.Solve(start, goal)
//	if !found {
//		// the goal is unreachable (opposite permutation parity)
//	}
//
// The search is synchronous and unbounded: an unsolvable or very large
// puzzle can run for a long time and hold memory proportional to the
// number of distinct boards discovered.
package solver
