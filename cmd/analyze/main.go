// Command analyze prints quick, human-readable heuristics about puzzle
// definition files in a library directory. It summarizes board size,
// solvability, the Manhattan-distance lower bound on solution length, and
// the hole's start position.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/parse"
	"github.com/tilegame/slidesolver/puzzle/service"
)

func main() {
	puzzleDir := "puzzles"
	if len(os.Args) > 1 {
		puzzleDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(puzzleDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding puzzle files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No puzzle files found in %s\n", puzzleDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzePuzzle(file)
	}
}

func analyzePuzzle(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var p service.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	start, goal, err := boards(&p)
	if err != nil {
		fmt.Printf("Error building boards: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", p.Name)
	if p.Description != "" {
		fmt.Printf("Description: %s\n", p.Description)
	}
	fmt.Printf("Board: %dx%d\n", start.Side(), start.Side())

	lowerBound := start.EstimateCost(goal)
	fmt.Printf("Heuristic lower bound: %d moves\n", lowerBound)

	if lowerBound == 0 {
		fmt.Println("ℹ️  Start board already matches the goal")
	}

	if start.SolvableInto(goal) {
		fmt.Println("✅ Solvable: goal reachable from start")
	} else {
		fmt.Println("⚠️  CRITICAL: goal is NOT reachable from the start board!")
	}

	fmt.Println("Start board:")
	fmt.Print(start.String())
}

// boards builds the start and goal boards from a puzzle definition.
func boards(p *service.Puzzle) (board.Board, board.Board, error) {
	startCells, err := parse.Cells(p.Start)
	if err != nil {
		return board.Board{}, board.Board{}, err
	}
	start, err := board.New(startCells)
	if err != nil {
		return board.Board{}, board.Board{}, err
	}

	if len(p.Goal) == 0 {
		goal, err := board.Solved(start.Side())
		return start, goal, err
	}

	goalCells, err := parse.Cells(p.Goal)
	if err != nil {
		return board.Board{}, board.Board{}, err
	}
	goal, err := board.New(goalCells)
	return start, goal, err
}
