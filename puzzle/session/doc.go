// Package session provides solve-session management for the puzzle solver.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management and expiration cleanup
//   - Optional JSON file persistence
//
// Core Types:
//
// Manager is the main session manager. A session pairs a submitted puzzle
// (start and goal boards) with its solve outcome once the solver has run.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs generated from cryptographic
// randomness, matching them case-insensitively on lookup.
//
// Concurrency:
//
// The manager is safe for concurrent use; internal locking keeps the
// session map consistent while transports create, solve, and delete
// sessions simultaneously.
//
// Usage:
//
//	manager := session.NewManager()
//	sess, err := manager.Create("", start, goal)
//
// With persistence enabled, sessions are written through to JSON files on
// creation and update, and can be reloaded across process restarts.
package session
