package solver

import "github.com/tilegame/slidesolver/puzzle/board"

// frontierNode is one discovered-but-unexpanded board. g counts the moves
// from the start; f is g plus the heuristic estimate to the goal.
type frontierNode struct {
	board board.Board
	g     int
	f     int
	index int
}

// frontier is a min-heap of nodes ordered by f, implementing
// container/heap.Interface.
type frontier []*frontierNode

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool { return q[i].f < q[j].f }

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	node := x.(*frontierNode)
	node.index = len(*q)
	*q = append(*q, node)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*q = old[:n-1]
	return node
}
