package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/parse"
	"github.com/tilegame/slidesolver/puzzle/solver"
)

// solverServiceImpl implements the SolverService interface
type solverServiceImpl struct {
	sessions SessionManager
	puzzles  PuzzleManager
	mu       sync.RWMutex
}

// NewSolverService creates a new solver service instance
func NewSolverService(sessions SessionManager, puzzles PuzzleManager) SolverService {
	return &solverServiceImpl{
		sessions: sessions,
		puzzles:  puzzles,
	}
}

// CreateSession validates the requested boards and creates a new session.
// The session starts unsolved; SolveSession runs the search.
func (s *solverServiceImpl) CreateSession(ctx context.Context, req SolveRequest) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, goal, err := s.resolveBoards(req)
	if err != nil {
		return nil, err
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", start, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *solverServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *solverServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *solverServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// SolveSession runs the search for a session's boards and stores the
// outcome on the session. Solving an already-solved session returns the
// stored result without searching again.
func (s *solverServiceImpl) SolveSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if session.Result == nil {
		session.Result = runSearch(session.Start, session.Goal)
		if err := s.sessions.Save(sessionID); err != nil {
			return nil, fmt.Errorf("failed to persist solved session: %w", err)
		}
	}

	return sessionInfo(session), nil
}

// SolveBoard solves the requested boards without creating a session.
func (s *solverServiceImpl) SolveBoard(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, goal, err := s.resolveBoards(req)
	if err != nil {
		return nil, err
	}

	return runSearch(start, goal), nil
}

// ListPuzzles returns information about all library puzzles
func (s *solverServiceImpl) ListPuzzles(ctx context.Context) ([]*PuzzleInfo, error) {
	return s.puzzles.List()
}

// LoadPuzzle returns a puzzle definition by name
func (s *solverServiceImpl) LoadPuzzle(ctx context.Context, name string) (*Puzzle, error) {
	return s.puzzles.Load(name)
}

// SavePuzzle stores a puzzle definition under the given name
func (s *solverServiceImpl) SavePuzzle(ctx context.Context, name string, p *Puzzle) error {
	return s.puzzles.Save(name, p)
}

// resolveBoards turns a SolveRequest into validated start and goal boards.
// A named puzzle takes precedence over explicit cells; a missing goal
// means the canonical solved board. An empty request resolves to the
// library's default puzzle.
func (s *solverServiceImpl) resolveBoards(req SolveRequest) (board.Board, board.Board, error) {
	startCells, goalCells := req.Start, req.Goal

	if req.Puzzle == "" && len(startCells) == 0 {
		if p := s.puzzles.GetDefault(); p != nil {
			startCells, goalCells = p.Start, p.Goal
		}
	}

	if req.Puzzle != "" {
		p, err := s.puzzles.Load(req.Puzzle)
		if err != nil {
			// Provide a helpful error message with available options
			if available, listErr := s.puzzles.List(); listErr == nil && len(available) > 0 {
				ids := make([]string, 0, len(available))
				for _, info := range available {
					ids = append(ids, info.PuzzleID)
				}
				return board.Board{}, board.Board{}, fmt.Errorf("puzzle %q not found, available puzzles: %v", req.Puzzle, ids)
			}
			return board.Board{}, board.Board{}, fmt.Errorf("failed to load puzzle %q: %w", req.Puzzle, err)
		}
		startCells, goalCells = p.Start, p.Goal
	}

	start, err := boardFromInts(startCells)
	if err != nil {
		return board.Board{}, board.Board{}, fmt.Errorf("invalid start board: %w", err)
	}

	if len(goalCells) == 0 {
		goal, err := board.Solved(start.Side())
		if err != nil {
			return board.Board{}, board.Board{}, fmt.Errorf("invalid goal board: %w", err)
		}
		return start, goal, nil
	}

	goal, err := boardFromInts(goalCells)
	if err != nil {
		return board.Board{}, board.Board{}, fmt.Errorf("invalid goal board: %w", err)
	}
	if goal.Side() != start.Side() {
		return board.Board{}, board.Board{}, fmt.Errorf("goal board is %dx%d but start board is %dx%d",
			goal.Side(), goal.Side(), start.Side(), start.Side())
	}

	return start, goal, nil
}

// runSearch executes the A* search and packages the outcome.
func runSearch(start, goal board.Board) *SolveResult {
	began := time.Now()
	result := solver.Search(start, goal, board.AllMoves())

	return &SolveResult{
		Found:      result.Found,
		Moves:      board.MoveNames(result.Moves),
		Length:     len(result.Moves),
		Expanded:   result.Expanded,
		DurationMS: time.Since(began).Milliseconds(),
	}
}

func boardFromInts(values []int) (board.Board, error) {
	cells, err := parse.Cells(values)
	if err != nil {
		return board.Board{}, err
	}
	return board.New(cells)
}

func sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		Side:           session.Start.Side(),
		Start:          CellInts(session.Start),
		Goal:           CellInts(session.Goal),
		Result:         session.Result,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
	}
}
