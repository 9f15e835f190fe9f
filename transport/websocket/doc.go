// Package websocket provides WebSocket transport for the puzzle solver.
//
// The websocket package implements:
//   - Real-time solve notifications
//   - Session-aware WebSocket connections
//   - Connection lifecycle management
//   - Message routing and handling
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded: when a session's search finishes,
// clients watching that session receive a "solved" event carrying the
// solve result (moves, expansion count, timing). Clients do not send
// application messages; the connection is kept alive with pings.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session
// ID via query parameter (?session=abc1) when establishing the
// connection. Events are broadcast only to clients connected to the same
// session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	hub.BroadcastSolved(sessionID, result)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive events
// simultaneously without blocking each other.
package websocket
