package service

import (
	"context"

	"github.com/tilegame/slidesolver/puzzle/board"
)

// SolverService defines all solver-related operations exposed to the
// transports.
type SolverService interface {
	// Session Management
	CreateSession(ctx context.Context, req SolveRequest) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Solving
	SolveSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	SolveBoard(ctx context.Context, req SolveRequest) (*SolveResult, error)

	// Puzzle Library
	ListPuzzles(ctx context.Context) ([]*PuzzleInfo, error)
	LoadPuzzle(ctx context.Context, name string) (*Puzzle, error)
	SavePuzzle(ctx context.Context, name string, p *Puzzle) error
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, start, goal board.Board) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// PuzzleManager handles puzzle definition loading.
type PuzzleManager interface {
	Load(name string) (*Puzzle, error)
	List() ([]*PuzzleInfo, error)
	Save(name string, p *Puzzle) error
	GetDefault() *Puzzle
}
