// Command validate provides a small CLI that validates puzzle definition
// JSON files in a library directory. It checks:
//   - JSON structure and required fields
//   - Board shape: square grid, every tile present exactly once, one hole
//   - Side consistency between the declared side and the cell count
//   - Goal shape matching the start board when a goal is given
//   - Solvability: the goal must be reachable from the start board
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilegame/slidesolver/puzzle/board"
	"github.com/tilegame/slidesolver/puzzle/library"
	"github.com/tilegame/slidesolver/puzzle/parse"
	"github.com/tilegame/slidesolver/puzzle/service"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePuzzle loads and validates a single puzzle definition file.
// It performs structural checks through the library validator and then
// a solvability check.
func validatePuzzle(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var p service.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := library.Validate(&p); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	start, goal, err := boards(&p)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if !start.SolvableInto(goal) {
		result.Valid = false
		result.Errors = append(result.Errors, "Goal is not reachable from the start board (parity mismatch)")
		return result
	}

	// Add informational data
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", p.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d", start.Side(), start.Side()))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Heuristic lower bound: %d moves", start.EstimateCost(goal)))
	result.Errors = append(result.Errors, "✓ Solvable: goal reachable from start")

	return result
}

// boards builds the start and goal boards from a validated definition.
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

// main scans the puzzle directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
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

	allValid := true
	for _, file := range files {
		result := validatePuzzle(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All puzzle definitions are valid!")
	} else {
		fmt.Println("❌ Some puzzle definitions have errors")
		os.Exit(1)
	}
}
