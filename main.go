// Command slidesolver solves sliding-tile puzzles and serves the solver
// over HTTP, WebSocket, and MCP.
//
// It supports three commands:
//  1. "solve" – solve a board from the command line or stdin
//  2. "serve" – run the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  3. "mcp" – run an MCP stdio server, reusing an external API server when one is running
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	"github.com/tilegame/slidesolver/api"
	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/library"
	"github.com/tilegame/slidesolver/puzzle/parse"
	"github.com/tilegame/slidesolver/puzzle/service"
	"github.com/tilegame/slidesolver/puzzle/session"
	"github.com/tilegame/slidesolver/puzzle/solver"
	"github.com/tilegame/slidesolver/transport/mcp"
	"github.com/tilegame/slidesolver/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Sliding Tile Solver"
)

// getPuzzleDirDefault returns the default puzzle library directory.
// It first honors the PUZZLE_DIR environment variable, then falls back to "puzzles".
func getPuzzleDirDefault() string {
	if dir := os.Getenv("PUZZLE_DIR"); dir != "" {
		return dir
	}
	return "puzzles"
}

// getSessionsDirDefault returns the default session storage directory.
func getSessionsDirDefault() string {
	if dir := os.Getenv("SESSIONS_DIR"); dir != "" {
		return dir
	}
	return "sessions"
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "slidesolver",
		Usage:   "solve sliding-tile puzzles from the command line or over HTTP and MCP",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "solve a board given as a digit string, from stdin, or from the puzzle library",
				ArgsUsage: "[BOARD]",
				Description: `Solves a sliding-tile board and prints the optimal move sequence.

The board can be given three ways:
  - as a positional argument: a digit string listing cells row by row,
    0 for the hole (e.g. "120345678" for a 3x3 board)
  - on stdin with --lines: one number per line, terminated by a blank
    line or end of input
  - by name with --puzzle: a definition from the puzzle library

Moves name the direction the hole travels.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "lines",
						Usage: "Read the board from stdin, one number per line",
					},
					&cli.StringFlag{
						Name:  "puzzle",
						Usage: "Solve a named puzzle from the library",
					},
					&cli.StringFlag{
						Name:  "goal",
						Usage: "Goal board as a digit string (default: solved board)",
					},
					&cli.StringFlag{
						Name:  "puzzle-dir",
						Value: getPuzzleDirDefault(),
						Usage: "Directory containing puzzle definitions",
					},
				},
				Action: runSolve,
			},
			{
				Name:  "serve",
				Usage: "run the HTTP server with REST API, WebSocket, and MCP endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "host",
						Value: "localhost",
						Usage: "HTTP server host",
					},
					&cli.IntFlag{
						Name:  "port",
						Value: 8080,
						Usage: "HTTP server port",
					},
					&cli.StringFlag{
						Name:  "puzzle-dir",
						Value: getPuzzleDirDefault(),
						Usage: "Directory containing puzzle definitions",
					},
					&cli.StringFlag{
						Name:  "sessions-dir",
						Value: getSessionsDirDefault(),
						Usage: "Directory for persisted sessions",
					},
				},
				Action: runServe,
			},
			{
				Name:  "mcp",
				Usage: "run an MCP stdio server, starting an internal HTTP server if none is available",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Value: 8080,
						Usage: "Port where an external API server may be running",
					},
					&cli.StringFlag{
						Name:  "puzzle-dir",
						Value: getPuzzleDirDefault(),
						Usage: "Directory containing puzzle definitions",
					},
					&cli.StringFlag{
						Name:  "sessions-dir",
						Value: getSessionsDirDefault(),
						Usage: "Directory for persisted sessions",
					},
				},
				Action: runStdioMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// runSolve solves a single board and prints the result.
func runSolve(ctx context.Context, cmd *cli.Command) error {
	start, err := readStartBoard(cmd)
	if err != nil {
		return err
	}

	goal, err := readGoalBoard(cmd, start)
	if err != nil {
		return err
	}

	began := time.Now()
	result := solver.Search(start, goal, board.AllMoves())
	elapsed := time.Since(began)

	if !result.Found {
		fmt.Println("No solution exists for this board.")
		fmt.Printf("Boards expanded: %d\n", result.Expanded)
		os.Exit(1)
	}

	if len(result.Moves) == 0 {
		fmt.Println("The board is already solved.")
		return nil
	}

	fmt.Printf("Solved in %d moves (expanded %d boards, %s):\n",
		len(result.Moves), result.Expanded, elapsed.Round(time.Millisecond))
	for _, move := range result.Moves {
		fmt.Printf("  %s\n", move)
	}

	return nil
}

// readStartBoard resolves the start board from the puzzle library, the
// positional argument, or stdin.
func readStartBoard(cmd *cli.Command) (board.Board, error) {
	if name := cmd.String("puzzle"); name != "" {
		manager, err := library.NewManager(cmd.String("puzzle-dir"))
		if err != nil {
			return board.Board{}, err
		}
		p, err := manager.Load(name)
		if err != nil {
			return board.Board{}, fmt.Errorf("failed to load puzzle %q: %w", name, err)
		}
		cells, err := parse.Cells(p.Start)
		if err != nil {
			return board.Board{}, err
		}
		return board.New(cells)
	}

	if cmd.Bool("lines") {
		return parse.Lines(os.Stdin)
	}

	digits := cmd.Args().First()
	if digits == "" {
		return board.Board{}, fmt.Errorf("no board given: pass a digit string, --lines, or --puzzle")
	}
	return parse.Digits(digits)
}

// readGoalBoard resolves the goal board, defaulting to the solved board
// for the start board's size.
func readGoalBoard(cmd *cli.Command, start board.Board) (board.Board, error) {
	if digits := cmd.String("goal"); digits != "" {
		goal, err := parse.Digits(digits)
		if err != nil {
			return board.Board{}, fmt.Errorf("invalid goal board: %w", err)
		}
		if goal.Side() != start.Side() {
			return board.Board{}, fmt.Errorf("goal board is %dx%d but start board is %dx%d",
				goal.Side(), goal.Side(), start.Side(), start.Side())
		}
		return goal, nil
	}

	return board.Solved(start.Side())
}

// runServe starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
func runServe(ctx context.Context, cmd *cli.Command) error {
	solverService, err := initializeServices(cmd.String("puzzle-dir"), cmd.String("sessions-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Create WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Create API server
	apiServer := api.NewServer(solverService, hub)

	// Setup HTTP server address
	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))

	// Create MCP client for /mcp endpoint
	baseURL := fmt.Sprintf("http://%s", addr)
	mcpClient := mcp.NewClient(baseURL)

	// Create main router that combines API and MCP
	mainRouter := http.NewServeMux()

	// Mount API server at root
	mainRouter.Handle("/", apiServer)

	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Handle shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
	return nil
}

// initializeServices wires the session and puzzle managers and the solver service.
// It also starts background routines to prune stale sessions and sync with the
// session files on disk.
func initializeServices(puzzleDir, sessionsDir string) (service.SolverService, error) {
	puzzleManager, err := library.NewManager(puzzleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle library manager: %w", err)
	}

	// Create session persistence
	persistence, err := session.NewFilePersistence(sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	// Create session manager with persistence
	sessionManager := session.NewManagerWithPersistence(persistence)

	// Load persisted sessions on startup
	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Printf("Warning: Failed to load persisted sessions: %v", err)
	}

	solverService := service.NewSolverService(sessionManager, puzzleManager)

	// Start session cleanup routine
	go sessionCleanupRoutine(sessionManager)

	// Start filesystem sync routine
	go filesystemSyncRoutine(sessionManager, persistence)

	return solverService, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// filesystemSyncRoutine periodically syncs in-memory sessions with filesystem state.
// It removes sessions from memory when their corresponding files are deleted.
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		memorySessions := manager.List()

		pruned := 0
		for _, sess := range memorySessions {
			if !persistence.Exists(sess.ID) {
				// File deleted, remove from memory
				if err := manager.DeleteFromMemory(sess.ID); err == nil {
					pruned++
					log.Printf("Pruned session %s from memory (file deleted)", sess.ID)
				}
			}
		}

		if pruned > 0 {
			log.Printf("Filesystem sync: pruned %d orphaned sessions from memory", pruned)
		}
	}
}

// runStdioMCP runs an MCP stdio server.
// It tries to reuse an external API server first; if unavailable, it starts a
// minimal internal HTTP API bound to a random loopback port and targets that.
func runStdioMCP(ctx context.Context, cmd *cli.Command) error {
	var baseURL string

	// First, try to connect to an external API server
	externalURL := fmt.Sprintf("http://localhost:%d", cmd.Int("port"))
	log.Printf("Checking for external API server at %s...", externalURL)

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		// No external server found, start internal one
		log.Printf("No external API server found, starting internal HTTP server")

		solverService, err := initializeServices(cmd.String("puzzle-dir"), cmd.String("sessions-dir"))
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		apiServer := api.NewServer(solverService, hub)
		httpServer := &http.Server{
			Handler: apiServer,
		}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Wait a moment for the server to be ready
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	if baseURL == externalURL {
		log.Println("MCP stdio server ready (using external HTTP server)")
	} else {
		log.Println("MCP stdio server ready (using internal HTTP server)")
	}

	if err := mcpserver.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}

	return nil
}
