package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tilegame/slidesolver/puzzle/service"
)

func writePuzzle(t *testing.T, dir, name string, p *service.Puzzle) string {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal puzzle: %v", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write puzzle file: %v", err)
	}
	return path
}

func TestBoards_DefaultGoal(t *testing.T) {
	start, goal, err := boards(&service.Puzzle{
		Name:  "Classic",
		Side:  3,
		Start: []int{1, 2, 3, 4, 0, 5, 7, 8, 6},
	})
	if err != nil {
		t.Fatalf("boards: %v", err)
	}

	if start.Side() != 3 || goal.Side() != 3 {
		t.Errorf("unexpected sides: start %d, goal %d", start.Side(), goal.Side())
	}
	if start.EstimateCost(goal) != 2 {
		t.Errorf("expected lower bound 2, got %d", start.EstimateCost(goal))
	}
}

func TestBoards_ExplicitGoal(t *testing.T) {
	start, goal, err := boards(&service.Puzzle{
		Name:  "Fifteen",
		Side:  4,
		Start: []int{1, 2, 0, 3, 4, 9, 6, 7, 8, 10, 5, 11, 12, 13, 14, 15},
		Goal:  []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	})
	if err != nil {
		t.Fatalf("boards: %v", err)
	}

	if !start.SolvableInto(goal) {
		t.Error("expected scramble to be solvable into its goal")
	}
}

func TestBoards_InvalidStart(t *testing.T) {
	if _, _, err := boards(&service.Puzzle{Name: "Bad", Start: []int{1, 2, 3}}); err == nil {
		t.Error("expected error for non-square start")
	}
}

func TestAnalyzePuzzle_DoesNotPanic(t *testing.T) {
	path := writePuzzle(t, t.TempDir(), "classic", &service.Puzzle{
		Name:  "Classic",
		Side:  3,
		Start: []int{1, 2, 3, 4, 0, 5, 7, 8, 6},
	})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzePuzzle panicked: %v", r)
		}
	}()

	analyzePuzzle(path)
	analyzePuzzle(filepath.Join(t.TempDir(), "missing.json"))
}
