package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tilegame/slidesolver/puzzle/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"found":  true,
		"length": float64(2),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/solve", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["found"] != expectedResponse["found"] {
		t.Errorf("Expected found %v, got %v", expectedResponse["found"], response["found"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api/solve", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/solve", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid start board"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("POST", "/api/solve", map[string]string{}, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 400 response")
	}

	if err.Error() != "invalid start board" {
		t.Errorf("Expected API error message to surface, got: %v", err)
	}
}

func TestClient_handleSolvePuzzle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/solve" {
			t.Errorf("Expected POST /api/solve, got %s %s", r.Method, r.URL.Path)
		}

		var req service.SolveRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Start) != 9 {
			t.Errorf("Expected 9 start cells, got %d", len(req.Start))
		}

		resp := service.SolveResult{
			Found:    true,
			Moves:    []string{"right", "down"},
			Length:   2,
			Expanded: 7,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "solve_puzzle",
			Arguments: map[string]interface{}{
				"start": []interface{}{
					float64(1), float64(2), float64(3),
					float64(4), float64(0), float64(5),
					float64(7), float64(8), float64(6),
				},
			},
		},
	}

	result, err := client.handleSolvePuzzle(ctx, request)
	if err != nil {
		t.Fatalf("handleSolvePuzzle failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "Solved in 2 moves") {
		t.Errorf("Expected solution summary in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "right, down") {
		t.Errorf("Expected move list in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:        "ab12",
			Side:      3,
			Start:     []int{1, 2, 3, 4, 0, 5, 7, 8, 6},
			Goal:      []int{1, 2, 3, 4, 5, 6, 7, 8, 0},
			CreatedAt: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "create_session",
			Arguments: map[string]interface{}{
				"puzzle": "classic",
			},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("handleCreateSession failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "unsolved") {
		t.Errorf("Expected unsolved status in result, got: %s", resultStr.Text)
	}
}

func TestFormatSolveResult(t *testing.T) {
	t.Run("solved", func(t *testing.T) {
		result := formatSolveResult(&service.SolveResult{
			Found:      true,
			Moves:      []string{"left", "up"},
			Length:     2,
			Expanded:   10,
			DurationMS: 3,
		})

		for _, field := range []string{"Solved in 2 moves", "expanded 10 boards", "left, up"} {
			if !strings.Contains(result, field) {
				t.Errorf("Expected %q in formatted output, got: %s", field, result)
			}
		}
	})

	t.Run("already solved", func(t *testing.T) {
		result := formatSolveResult(&service.SolveResult{Found: true})
		if !strings.Contains(result, "already solved") {
			t.Errorf("Expected already-solved note, got: %s", result)
		}
	})

	t.Run("unsolvable", func(t *testing.T) {
		result := formatSolveResult(&service.SolveResult{Found: false, Expanded: 181440})
		if !strings.Contains(result, "No solution exists") {
			t.Errorf("Expected no-solution note, got: %s", result)
		}
	})
}

func TestFormatCells(t *testing.T) {
	result := formatCells([]int{1, 2, 3, 4, 0, 5, 7, 8, 6}, 3)

	expected := "1 2 3\n4 _ 5\n7 8 6\n"
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestClient_handleSolverInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "solver_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleSolverInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleSolverInstructions failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"BOARD MODEL:",
		"MOVES:",
		"SOLVING:",
		"SOLVABILITY:",
		"SESSIONS:",
		"PUZZLE LIBRARY:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected %q in instructions", content)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
