package solver

import (
	"container/heap"

	"github.com/tilegame/slidesolver/puzzle/board"
)

// Result contains the outcome of a search.
type Result struct {
	// Moves is the optimal move sequence when Found is true. It is empty
	// (not nil) when the start already equals the goal.
	Moves []board.Move

	// Expanded counts the boards popped from the frontier, useful for
	// reporting search effort.
	Expanded int

	// Found reports whether the goal was reached at all. False means the
	// goal is unreachable from the start with the given move set.
	Found bool
}

// origin records how a board was first discovered: the move that produced
// it, or the fact that it is the start board.
type origin struct {
	move  board.Move
	start bool
}

// Solve searches with the full move set and returns the optimal move
// sequence, or false when the goal is unreachable.
func Solve(start, goal board.Board) ([]board.Move, bool) {
	result := Search(start, goal, board.AllMoves())
	return result.Moves, result.Found
}

// Search runs A* from start to goal using the supplied move set.
//
// Boards are expanded in order of f = g + h. A board seen before is
// discarded on rediscovery rather than relaxed; with the Manhattan
// heuristic and the sliding-tile moves the first discovery is already on
// a shortest path, so the returned sequence is optimal.
func Search(start, goal board.Board, moves []board.Move) Result {
	if start == goal {
		return Result{Moves: []board.Move{}, Found: true}
	}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierNode{board: start, f: start.EstimateCost(goal)})

	visited := map[board.Board]origin{start: {start: true}}
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierNode)
		expanded++
		depth := current.g + 1

		for _, m := range moves {
			next, ok := current.board.Update(m)
			if !ok {
				continue
			}

			if next == goal {
				visited[next] = origin{move: m}
				return Result{
					Moves:    rebuildPath(visited, start, goal, depth),
					Expanded: expanded,
					Found:    true,
				}
			}

			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = origin{move: m}
			heap.Push(open, &frontierNode{
				board: next,
				g:     depth,
				f:     depth + next.EstimateCost(goal),
			})
		}
	}

	return Result{Expanded: expanded, Found: false}
}

// rebuildPath walks backward from the goal through the visited map,
// undoing each recorded move to find its predecessor board, then reverses
// the accumulated sequence into forward order. It never re-runs the
// search: the recorded moves and board arithmetic are enough.
func rebuildPath(visited map[board.Board]origin, start, goal board.Board, length int) []board.Move {
	path := make([]board.Move, 0, length)

	cursor := goal
	for cursor != start {
		from, ok := visited[cursor]
		if !ok {
			panic("solver: discovered board missing from visited map")
		}
		path = append(path, from.move)

		prev, ok := cursor.Update(from.move.Reverse())
		if !ok {
			panic("solver: recorded path cannot be walked backward")
		}
		cursor = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
