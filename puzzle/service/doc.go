// Package service provides the business logic layer for the puzzle solver.
//
// The service package implements:
//   - One-shot solving of submitted boards
//   - Session management for puzzles and their solve outcomes
//   - Puzzle library access (named puzzle definitions on disk)
//   - Conversion between wire formats and the core board types
//
// Core Interfaces:
//
// SolverService is the main interface used by every transport (HTTP,
// WebSocket events, MCP, CLI). SessionManager handles session storage and
// lifecycle. PuzzleManager loads and saves named puzzle definitions.
//
// Architecture:
//
// The service layer sits between the transports and the solver core,
// providing validation, session isolation, and persistence orchestration.
// Solving is synchronous: SolveSession and SolveBoard run the A* search to
// completion before returning, and the caller owns the resulting move
// sequence.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	puzzleMgr, _ := library.NewManager("puzzles")
//	svc := service.NewSolverService(sessionMgr, puzzleMgr)
//
//	info, err := svc.CreateSession(ctx, service.SolveRequest{Puzzle: "classic"})
//	result, err := svc.SolveSession(ctx, info.ID)
//
// Sessions are identified by unique 4-character IDs and keep both the
// submitted boards and, once solved, the solution.
package service
