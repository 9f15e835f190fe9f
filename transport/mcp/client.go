package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tilegame/slidesolver/puzzle/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sliding Tile Solver",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sliding Tile Solver - MCP Interface

This is a thin client that proxies all requests to the REST API server.

Boards are square sliding-tile puzzles (8-puzzle, 15-puzzle and larger).
Cells are listed row by row with 0 marking the hole. A move names the
direction the hole travels, so "right" slides the tile right of the hole
into the hole's place.

AVAILABLE TOOLS:
- solve_puzzle: Solve a board immediately without creating a session
- create_session: Create a solve session for a board or library puzzle
- solve_session: Run the search for an existing session
- get_session: Get session details including any stored solution
- list_sessions: List all active sessions
- delete_session: Remove a session
- list_puzzles: List puzzles available in the library
- solver_instructions: Get detailed usage instructions

Not every board is solvable: exactly half of all tile arrangements can
reach a given goal. An unsolvable board returns found=false rather than
an error.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve a sliding-tile board immediately. Provide either a library puzzle name or explicit start cells.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"puzzle": map[string]interface{}{
					"type":        "string",
					"description": "Name of a library puzzle to solve (optional)",
				},
				"start": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Start cells row by row, 0 for the hole (used when no puzzle name is given)",
				},
				"goal": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Goal cells row by row (optional, defaults to the solved board)",
				},
			},
		},
	}, c.handleSolvePuzzle)

	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new solve session for a board or library puzzle",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"puzzle": map[string]interface{}{
					"type":        "string",
					"description": "Name of a library puzzle (optional)",
				},
				"start": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Start cells row by row, 0 for the hole",
				},
				"goal": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Goal cells row by row (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_session",
		Description: "Run the search for an existing session and store the result",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to solve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolveSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active solve sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a solve session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to delete",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleDeleteSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_puzzles",
		Description: "List puzzles available in the library",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListPuzzles)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solver_instructions",
		Description: "Get detailed instructions for using the solver",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleSolverInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// solveRequestFromArgs extracts a SolveRequest from tool arguments
func solveRequestFromArgs(args map[string]interface{}) service.SolveRequest {
	req := service.SolveRequest{}
	req.Puzzle, _ = args["puzzle"].(string)
	req.Start = intSliceArg(args, "start")
	req.Goal = intSliceArg(args, "goal")
	return req
}

func intSliceArg(args map[string]interface{}, key string) []int {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]int, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			values = append(values, int(f))
		}
	}
	return values
}

// Tool handlers

func (c *Client) handleSolvePuzzle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	req := solveRequestFromArgs(args)

	var result service.SolveResult
	err := c.apiCall("POST", "/api/solve", req, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSolveResult(&result)), nil
}

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	req := solveRequestFromArgs(args)

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", req, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\n\n%s", session.ID, formatSessionInfo(&session))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSolveSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/solve", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "unsolved"
		if s.Result != nil {
			if s.Result.Found {
				status = fmt.Sprintf("solved in %d moves", s.Result.Length)
			} else {
				status = "unsolvable"
			}
		}
		result += fmt.Sprintf("- %s (%dx%d, %s, Created: %s)\n",
			s.ID, s.Side, s.Side, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	err := c.apiCall("DELETE", fmt.Sprintf("/api/sessions/%s", sessionID), nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Session %s deleted", sessionID)), nil
}

func (c *Client) handleListPuzzles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var puzzles []service.PuzzleInfo
	err := c.apiCall("GET", "/api/puzzles", nil, &puzzles)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Puzzles:\n\n"
	for _, p := range puzzles {
		result += fmt.Sprintf("• %s (%dx%d)\n  %s\n\n",
			p.PuzzleID, p.Side, p.Side, p.Description)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSolverInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Sliding Tile Solver - Complete Instructions

BOARD MODEL:
A board is a square grid of numbered tiles with one hole. Cells are
listed row by row; 0 marks the hole. A 3x3 board uses tiles 1-8, a 4x4
board uses tiles 1-15, and so on.

Example 3x3 start board, two moves from solved:

  1 2 3
  4 _ 5
  7 8 6

is written as [1,2,3,4,0,5,7,8,6].

MOVES:
A move names the direction the hole travels:
- left:  the tile left of the hole slides right into the hole
- right: the tile right of the hole slides left into the hole
- up:    the tile above the hole slides down into the hole
- down:  the tile below the hole slides up into the hole

Moves that would push the hole past the grid edge are impossible.

SOLVING:
The solver runs A* search with a Manhattan-distance heuristic, so
returned solutions are optimal (shortest possible). The result reports:
- found: whether the goal is reachable
- moves: the move sequence, in order, applied to the start board
- length: number of moves
- expanded: how many boards the search expanded
- duration_ms: search time

SOLVABILITY:
Exactly half of all tile arrangements can reach a given goal. Swapping
any two tiles flips solvability. An unsolvable board is a normal
outcome (found=false), not an error.

SESSIONS:
Sessions let you submit a board once and retrieve the solution later:
1. create_session with a board or library puzzle name
2. solve_session to run the search (the result is stored)
3. get_session to re-read the stored result at any time
Each session has a unique 4-character ID.

PUZZLE LIBRARY:
Named puzzle definitions can be listed with list_puzzles and referenced
by name in solve_puzzle and create_session.

PERFORMANCE NOTES:
3x3 boards solve in milliseconds. 4x4 boards are fast for shallow
scrambles but can take a long time for hard ones, since optimal
15-puzzle solving is expensive. Prefer sessions for boards that may
take a while.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSolveResult(result *service.SolveResult) string {
	if !result.Found {
		return fmt.Sprintf("No solution exists for this board.\nBoards expanded: %d", result.Expanded)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Solved in %d moves (expanded %d boards, %d ms)\n\n",
		result.Length, result.Expanded, result.DurationMS))
	if len(result.Moves) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(strings.Join(result.Moves, ", "))
	} else {
		b.WriteString("The board is already solved.")
	}
	return b.String()
}

func formatSessionInfo(session *service.SessionInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Session: %s\nSize: %dx%d\nCreated: %s\n",
		session.ID, session.Side, session.Side,
		session.CreatedAt.Format("2006-01-02 15:04:05")))

	b.WriteString("\nStart:\n")
	b.WriteString(formatCells(session.Start, session.Side))
	b.WriteString("\nGoal:\n")
	b.WriteString(formatCells(session.Goal, session.Side))

	b.WriteString("\n")
	if session.Result == nil {
		b.WriteString("Status: unsolved (use solve_session to run the search)")
	} else {
		b.WriteString(formatSolveResult(session.Result))
	}

	return b.String()
}

// formatCells renders a flat cell slice as a grid, _ for the hole
func formatCells(cells []int, side int) string {
	if side <= 0 || len(cells) != side*side {
		return fmt.Sprintf("%v\n", cells)
	}

	var b strings.Builder
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			cell := cells[row*side+col]
			if cell == 0 {
				b.WriteString("_")
			} else {
				b.WriteString(fmt.Sprintf("%d", cell))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
