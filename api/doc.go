// Package api provides HTTP REST API handlers for the puzzle solver.
//
// The api package implements:
//   - RESTful endpoints for solving boards
//   - Session management endpoints
//   - Puzzle library listing and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Solving:
//   - POST /api/solve - Solve a board without creating a session
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (supports sort, order, limit)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//   - POST /api/sessions/{id}/solve - Run the search for a session
//
// Puzzle Library:
//   - GET /api/puzzles - List available puzzles
//   - GET /api/puzzles/{name} - Get a puzzle definition
//   - POST /api/puzzles - Save a new puzzle definition
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Solve requests identify boards by
// library name or explicit cells:
//
//	{
//	  "puzzle": "classic",            // named puzzle, or
//	  "start": [1,2,3,4,0,5,7,8,6],   // explicit start cells
//	  "goal": [1,2,3,4,5,6,7,8,0]     // optional, default is solved board
//	}
//
// Usage:
//
//	server := api.NewServer(solverService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
