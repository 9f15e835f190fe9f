// Package mcp provides Model Context Protocol server implementation for the puzzle solver.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for solver operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - solve_puzzle: Solve a board immediately
//   - create_session: Create a solve session for a board or library puzzle
//   - solve_session: Run the search for an existing session
//   - get_session: Get session details including any stored solution
//   - list_sessions: List all active sessions
//   - delete_session: Remove a session
//   - list_puzzles: List puzzles available in the library
//   - solver_instructions: Get detailed usage instructions
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Architecture:
//
// The Client is a thin proxy: every tool call translates into an HTTP
// request against the REST API and formats the JSON response as text.
// This keeps the MCP surface and the HTTP surface behaviorally
// identical.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
