package service

import (
	"time"

	"github.com/tilegame/slidesolver/puzzle/board"
)

// Puzzle is a named puzzle definition as stored in the library directory.
// Cells are row-major with 0 as the hole. An empty Goal means the
// canonical solved board for the puzzle's side.
type Puzzle struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Side        int    `json:"side"`
	Start       []int  `json:"start"`
	Goal        []int  `json:"goal,omitempty"`
}

// PuzzleInfo summarizes a puzzle definition for listings.
type PuzzleInfo struct {
	Filename    string `json:"filename"`
	PuzzleID    string `json:"puzzle_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Side        int    `json:"side"`
}

// SolveRequest identifies the boards to solve: either a named puzzle from
// the library, or explicit start (and optionally goal) cell sequences.
// When Goal is empty the canonical solved board is used.
type SolveRequest struct {
	Puzzle string `json:"puzzle,omitempty"`
	Start  []int  `json:"start,omitempty"`
	Goal   []int  `json:"goal,omitempty"`
}

// SolveResult is the outcome of one search.
type SolveResult struct {
	Found      bool     `json:"found"`
	Moves      []string `json:"moves,omitempty"`
	Length     int      `json:"length"`
	Expanded   int      `json:"expanded"`
	DurationMS int64    `json:"duration_ms"`
}

// SessionInfo is the transport-facing view of a session.
type SessionInfo struct {
	ID             string       `json:"id"`
	Side           int          `json:"side"`
	Start          []int        `json:"start"`
	Goal           []int        `json:"goal"`
	Result         *SolveResult `json:"result,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	LastAccessedAt time.Time    `json:"last_accessed_at"`
}

// Session is an active solve session: the submitted boards plus, once
// solved, the outcome.
type Session struct {
	ID             string
	Start          board.Board
	Goal           board.Board
	Result         *SolveResult
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// CellInts converts a board's cells to the wire form used in JSON bodies.
func CellInts(b board.Board) []int {
	cells := b.Cells()
	values := make([]int, len(cells))
	for i, c := range cells {
		values[i] = int(c)
	}
	return values
}
